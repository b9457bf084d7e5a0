package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/service"
	"github.com/campus-events/gateway/internal/upstream"
)

// SessionCookieName is the cookie carrying the signed session reference.
const SessionCookieName = "campus_session"

const sessionContextKey = "session"

type SessionLoader interface {
	SessionFromCookie(ctx context.Context, cookie, userAgent string) (domain.Session, error)
}

// LoadSession resolves the session cookie, if any, and stamps the request
// context with the session's bearer token so outbound upstream calls carry
// it. Anonymous requests pass through untouched; the gates downstream decide
// whether that is acceptable.
func LoadSession(auth SessionLoader) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, err := ctx.Cookie(SessionCookieName)
		if err != nil || cookie == "" {
			ctx.Next()
			return
		}

		session, err := auth.SessionFromCookie(ctx.Request.Context(), cookie, ctx.Request.UserAgent())
		if err != nil {
			if !errors.Is(err, service.ErrNoSession) {
				zap.L().Warn("session lookup failed", zap.Error(err))
			}

			ctx.Next()
			return
		}

		ctx.Set(sessionContextKey, &session)
		ctx.Request = ctx.Request.WithContext(
			upstream.WithSession(ctx.Request.Context(), session.ID, session.Token))

		ctx.Next()
	}
}

// SessionFrom returns the session loaded for this request, or nil when the
// caller is anonymous.
func SessionFrom(ctx *gin.Context) *domain.Session {
	value, ok := ctx.Get(sessionContextKey)
	if !ok {
		return nil
	}

	session, ok := value.(*domain.Session)
	if !ok {
		return nil
	}

	return session
}
