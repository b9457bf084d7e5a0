package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `api:
  environment: "test"
  base_url: "localhost:8080"
  port: "8080"
  jwt_signing_key: "test-key"
  session_ttl_minutes: 60
  allowed_cors_domains:
    - "http://localhost:4200"
gin:
  mode: "test"
postgres:
  host: "localhost"
  port: "5432"
  user: "gateway"
  password: "gateway"
  db_name: "gateway"
  ssl_mode: "disable"
upstream:
  base_url: "http://localhost:9000/api/v1"
  user_agent: "campus-gateway/1.0"
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, testYAML)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, 60, conf.API.SessionTTLMinutes)
	assert.Equal(t, []string{"http://localhost:4200"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "gateway", conf.Postgres.DBName)
	assert.Equal(t, "http://localhost:9000/api/v1", conf.Upstream.BaseURL)
	assert.Equal(t, "campus-gateway/1.0", conf.Upstream.UserAgent)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_FileChangeDoesNotMutateLoadedConfig(t *testing.T) {
	path := writeConfigFile(t, testYAML)

	conf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "8080", conf.API.Port)

	changed := strings.Replace(testYAML, `port: "8080"`, `port: "9999"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(changed), 0o600))

	// Give the watcher time to observe the rewrite; the struct handed to
	// the server must stay as loaded.
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, "8080", conf.API.Port)
}
