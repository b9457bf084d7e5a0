package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/service"
	"github.com/campus-events/gateway/internal/upstream"
)

type fakeSessionLoader struct {
	session domain.Session
	err     error

	gotCookie    string
	gotUserAgent string
}

func (f *fakeSessionLoader) SessionFromCookie(ctx context.Context, cookie, userAgent string) (domain.Session, error) {
	f.gotCookie = cookie
	f.gotUserAgent = userAgent

	return f.session, f.err
}

type loadedState struct {
	session *domain.Session
	token   string
	sid     string
}

func runLoadSession(t *testing.T, loader SessionLoader, cookie string) loadedState {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var state loadedState
	router := gin.New()
	router.GET("/", LoadSession(loader), func(ctx *gin.Context) {
		state.session = SessionFrom(ctx)
		state.token = upstream.TokenFromContext(ctx.Request.Context())
		state.sid = upstream.SIDFromContext(ctx.Request.Context())
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "browser/1.0")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	return state
}

func TestLoadSession(t *testing.T) {
	t.Run("no cookie passes through anonymously", func(t *testing.T) {
		state := runLoadSession(t, &fakeSessionLoader{}, "")

		assert.Nil(t, state.session)
		assert.Empty(t, state.token)
		assert.Empty(t, state.sid)
	})

	t.Run("a valid cookie loads the session and stamps the context", func(t *testing.T) {
		loader := &fakeSessionLoader{
			session: domain.Session{
				ID:    "sid-1",
				Token: "upstream-token",
				User:  domain.User{ID: "u1"},
			},
		}

		state := runLoadSession(t, loader, "signed-cookie")

		require.NotNil(t, state.session)
		assert.Equal(t, "u1", state.session.User.ID)
		assert.Equal(t, "upstream-token", state.token)
		assert.Equal(t, "sid-1", state.sid)
		assert.Equal(t, "signed-cookie", loader.gotCookie)
		assert.Equal(t, "browser/1.0", loader.gotUserAgent)
	})

	t.Run("an unresolvable cookie reads as anonymous", func(t *testing.T) {
		state := runLoadSession(t, &fakeSessionLoader{err: service.ErrNoSession}, "stale-cookie")

		assert.Nil(t, state.session)
		assert.Empty(t, state.token)
	})

	t.Run("a wrapped missing-session error still reads as anonymous", func(t *testing.T) {
		wrapped := fmt.Errorf("s.sessions.Find -> %w", service.ErrNoSession)
		state := runLoadSession(t, &fakeSessionLoader{err: wrapped}, "stale-cookie")

		assert.Nil(t, state.session)
		assert.Empty(t, state.token)
	})

	t.Run("a store failure also reads as anonymous", func(t *testing.T) {
		state := runLoadSession(t, &fakeSessionLoader{err: errors.New("db down")}, "cookie")

		assert.Nil(t, state.session)
	})
}
