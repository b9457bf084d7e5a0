package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-events/gateway/internal/config"
	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/pkg/jwthelper"
	"github.com/campus-events/gateway/internal/repository"
	"github.com/campus-events/gateway/internal/upstream"
)

type fakeAuthAPI struct {
	result upstream.LoginResult
	err    error
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds upstream.Credentials) (upstream.LoginResult, error) {
	return f.result, f.err
}

func (f *fakeAuthAPI) Register(ctx context.Context, payload upstream.RegisterPayload) (upstream.LoginResult, error) {
	return f.result, f.err
}

type memorySessionStore struct {
	sessions map[string]domain.Session
	saveErr  error
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]domain.Session)}
}

func (m *memorySessionStore) Save(ctx context.Context, session domain.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[session.ID] = session

	return nil
}

func (m *memorySessionStore) Find(ctx context.Context, sid string) (domain.Session, error) {
	session, ok := m.sessions[sid]
	if !ok {
		return domain.Session{}, repository.ErrSessionNotFound
	}

	return session, nil
}

func (m *memorySessionStore) Delete(ctx context.Context, sid string) error {
	delete(m.sessions, sid)
	return nil
}

func testAuthConfig() *config.APIConfig {
	return &config.APIConfig{
		JWTSigningKey:     "test-signing-key",
		SessionTTLMinutes: 60,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userAgent := "test-agent/1.0"

	t.Run("opens a session and issues a cookie bound to the user agent", func(t *testing.T) {
		api := &fakeAuthAPI{
			result: upstream.LoginResult{
				Token: "upstream-token",
				User:  domain.User{ID: "u1", Email: "jane@campus.edu", Role: domain.RoleEndUser},
			},
		}
		store := newMemorySessionStore()
		svc := NewAuthService(testAuthConfig(), api, store)

		session, cookie, err := svc.Login(ctx, "jane@campus.edu", "secret1234", userAgent)
		require.NoError(t, err)

		assert.NotEmpty(t, session.ID)
		assert.Equal(t, "upstream-token", session.Token)
		assert.Equal(t, "u1", session.User.ID)
		assert.True(t, session.ExpiresAt.After(time.Now()))

		stored, ok := store.sessions[session.ID]
		require.True(t, ok, "the session must be persisted before the cookie exists")
		assert.Equal(t, session.Token, stored.Token)
		assert.Equal(t, session.User, stored.User)

		sid, err := jwthelper.ParseToken([]byte("test-signing-key"), cookie, userAgent)
		require.NoError(t, err)
		assert.Equal(t, session.ID, sid)
	})

	t.Run("upstream rejection opens no session", func(t *testing.T) {
		api := &fakeAuthAPI{err: errors.New("invalid credentials")}
		store := newMemorySessionStore()
		svc := NewAuthService(testAuthConfig(), api, store)

		_, _, err := svc.Login(ctx, "jane@campus.edu", "wrong", userAgent)

		require.Error(t, err)
		assert.Empty(t, store.sessions)
	})

	t.Run("a failed save issues no cookie", func(t *testing.T) {
		api := &fakeAuthAPI{result: upstream.LoginResult{Token: "t", User: domain.User{ID: "u1"}}}
		store := newMemorySessionStore()
		store.saveErr = errors.New("db down")
		svc := NewAuthService(testAuthConfig(), api, store)

		_, cookie, err := svc.Login(ctx, "jane@campus.edu", "secret1234", userAgent)

		require.Error(t, err)
		assert.Empty(t, cookie)
	})
}

func TestAuthService_SessionFromCookie(t *testing.T) {
	ctx := context.Background()
	userAgent := "test-agent/1.0"

	setup := func(t *testing.T) (*AuthService, *memorySessionStore, string) {
		t.Helper()

		api := &fakeAuthAPI{
			result: upstream.LoginResult{Token: "upstream-token", User: domain.User{ID: "u1"}},
		}
		store := newMemorySessionStore()
		svc := NewAuthService(testAuthConfig(), api, store)

		_, cookie, err := svc.Login(ctx, "jane@campus.edu", "secret1234", userAgent)
		require.NoError(t, err)

		return svc, store, cookie
	}

	t.Run("round trip", func(t *testing.T) {
		svc, _, cookie := setup(t)

		session, err := svc.SessionFromCookie(ctx, cookie, userAgent)

		require.NoError(t, err)
		assert.Equal(t, "upstream-token", session.Token)
		assert.Equal(t, "u1", session.User.ID)
	})

	t.Run("a different user agent reads as logged out", func(t *testing.T) {
		svc, _, cookie := setup(t)

		_, err := svc.SessionFromCookie(ctx, cookie, "other-agent/2.0")

		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("a garbage cookie reads as logged out", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.SessionFromCookie(ctx, "not-a-jwt", userAgent)

		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("logout then lookup reads as logged out", func(t *testing.T) {
		svc, store, cookie := setup(t)

		session, err := svc.SessionFromCookie(ctx, cookie, userAgent)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, session.ID))
		assert.Empty(t, store.sessions)

		_, err = svc.SessionFromCookie(ctx, cookie, userAgent)
		assert.ErrorIs(t, err, ErrNoSession)

		// Logging out again is a no-op, not an error.
		assert.NoError(t, svc.Logout(ctx, session.ID))
	})
}
