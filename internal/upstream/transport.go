package upstream

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type contextKey int

const (
	tokenKey contextKey = iota
	sidKey
)

// WithSession stamps the outgoing context with the caller's session, so the
// transport can attach the bearer token and tear the right session down on
// a 401.
func WithSession(ctx context.Context, sid, token string) context.Context {
	ctx = context.WithValue(ctx, sidKey, sid)
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func SIDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(sidKey).(string)
	return sid
}

// TeardownFunc clears the session identified by the request context. It must
// be safe to call repeatedly for the same session.
type TeardownFunc func(ctx context.Context)

// authTransport attaches the bearer token carried by the request context and
// reacts to authentication failures. Requests without a token pass through
// untouched: anonymous calls such as login and register must still succeed.
type authTransport struct {
	base           http.RoundTripper
	onUnauthorized TeardownFunc
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if token := TokenFromContext(ctx); token != "" {
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// Session-level failure: tear down, then let the error reach the
		// caller so page-level handling can react as well.
		zap.L().Warn("upstream rejected the session token",
			zap.String("path", req.URL.Path))
		if t.onUnauthorized != nil {
			t.onUnauthorized(ctx)
		}
	case http.StatusForbidden:
		zap.L().Warn("upstream denied access",
			zap.String("path", req.URL.Path))
	}

	return resp, nil
}
