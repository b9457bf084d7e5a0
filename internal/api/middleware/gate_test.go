package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/service"
)

type fakeGate struct {
	decision service.Decision
}

func (f *fakeGate) CanAccessUserSurface(session *domain.Session) service.Decision {
	return f.decision
}

func (f *fakeGate) CanAccessAdminSurface(ctx context.Context, session *domain.Session) service.Decision {
	return f.decision
}

func (f *fakeGate) CanAccessOrganizerSurface(session *domain.Session) service.Decision {
	return f.decision
}

func gateResponse(t *testing.T, decision service.Decision) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAdminSurface(&fakeGate{decision: decision}), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "reached")
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestGates(t *testing.T) {
	t.Run("allowed requests reach the handler", func(t *testing.T) {
		recorder := gateResponse(t, service.DecisionAllowed)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "reached", recorder.Body.String())
	})

	t.Run("denied to login gets exactly one redirect", func(t *testing.T) {
		recorder := gateResponse(t, service.DecisionDeniedToLogin)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var body struct {
			Success  bool   `json:"success"`
			Redirect string `json:"redirect"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "/login", body.Redirect)
		assert.NotContains(t, recorder.Body.String(), "reached")
	})

	t.Run("denied to home gets exactly one redirect", func(t *testing.T) {
		recorder := gateResponse(t, service.DecisionDeniedToHome)

		assert.Equal(t, http.StatusForbidden, recorder.Code)

		var body struct {
			Redirect string `json:"redirect"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "/home", body.Redirect)
	})
}
