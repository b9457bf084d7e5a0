package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/campus-events/gateway/internal/config"
	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/pkg/jwthelper"
	"github.com/campus-events/gateway/internal/repository"
	"github.com/campus-events/gateway/internal/upstream"
)

var ErrNoSession = errors.New("no active session")

type AuthAPI interface {
	Login(ctx context.Context, creds upstream.Credentials) (upstream.LoginResult, error)
	Register(ctx context.Context, payload upstream.RegisterPayload) (upstream.LoginResult, error)
}

type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Find(ctx context.Context, sid string) (domain.Session, error)
	Delete(ctx context.Context, sid string) error
}

type AuthService struct {
	api        AuthAPI
	sessions   SessionStore
	signingKey []byte
	sessionTTL time.Duration
}

func NewAuthService(conf *config.APIConfig, api AuthAPI, sessions SessionStore) *AuthService {
	ttl := time.Duration(conf.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &AuthService{
		api:        api,
		sessions:   sessions,
		signingKey: []byte(conf.JWTSigningKey),
		sessionTTL: ttl,
	}
}

// Login exchanges credentials at the upstream, persists the issued token and
// user as one session row, and returns the signed cookie value for it.
func (s *AuthService) Login(ctx context.Context, email, password, userAgent string) (domain.Session, string, error) {
	result, err := s.api.Login(ctx, upstream.Credentials{Email: email, Password: password})
	if err != nil {
		return domain.Session{}, "", fmt.Errorf("s.api.Login -> %w", err)
	}

	return s.issueSession(ctx, result, userAgent)
}

func (s *AuthService) Register(ctx context.Context, payload upstream.RegisterPayload, userAgent string) (domain.Session, string, error) {
	result, err := s.api.Register(ctx, payload)
	if err != nil {
		return domain.Session{}, "", fmt.Errorf("s.api.Register -> %w", err)
	}

	return s.issueSession(ctx, result, userAgent)
}

func (s *AuthService) issueSession(ctx context.Context, result upstream.LoginResult, userAgent string) (domain.Session, string, error) {
	sid, err := newSessionID()
	if err != nil {
		return domain.Session{}, "", fmt.Errorf("newSessionID -> %w", err)
	}

	now := time.Now()
	session := domain.Session{
		ID:        sid,
		Token:     result.Token,
		User:      result.User,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err = s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, "", fmt.Errorf("s.sessions.Save -> %w", err)
	}

	cookie, err := jwthelper.GenerateToken(s.signingKey, sid, userAgent, s.sessionTTL)
	if err != nil {
		return domain.Session{}, "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	return session, cookie, nil
}

// Logout clears the session unconditionally; logging out an already-cleared
// session succeeds.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return fmt.Errorf("s.sessions.Delete -> %w", err)
	}

	return nil
}

// SessionFromCookie resolves the signed cookie back to a stored session.
// Any failure along the way reads as "not logged in".
func (s *AuthService) SessionFromCookie(ctx context.Context, cookie, userAgent string) (domain.Session, error) {
	sid, err := jwthelper.ParseToken(s.signingKey, cookie, userAgent)
	if err != nil {
		return domain.Session{}, ErrNoSession
	}

	session, err := s.sessions.Find(ctx, sid)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Session{}, ErrNoSession
		}

		return domain.Session{}, fmt.Errorf("s.sessions.Find -> %w", err)
	}

	if !session.IsLoggedIn() {
		return domain.Session{}, ErrNoSession
	}

	return session, nil
}

func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
