package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/gateway/internal/api/handler/v1/response"
	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/service"
)

// Gate evaluates access for the loaded session. Implemented by
// service.AccessService.
type Gate interface {
	CanAccessUserSurface(session *domain.Session) service.Decision
	CanAccessAdminSurface(ctx context.Context, session *domain.Session) service.Decision
	CanAccessOrganizerSurface(session *domain.Session) service.Decision
}

// RequireUser admits any authenticated caller.
func RequireUser(gate Gate) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		render(ctx, gate.CanAccessUserSurface(SessionFrom(ctx)))
	}
}

// RequireAdminSurface admits admins and approved organizers, checking the
// approval upstream on every request.
func RequireAdminSurface(gate Gate) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		render(ctx, gate.CanAccessAdminSurface(ctx.Request.Context(), SessionFrom(ctx)))
	}
}

// RequireOrganizerSurface admits admins and organizers whose session already
// carries the approval flag.
func RequireOrganizerSurface(gate Gate) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		render(ctx, gate.CanAccessOrganizerSurface(SessionFrom(ctx)))
	}
}

// render turns a decision into at most one response: allowed requests
// continue the chain, denied ones get exactly one redirect and stop.
func render(ctx *gin.Context, decision service.Decision) {
	switch decision {
	case service.DecisionAllowed:
		ctx.Next()
	case service.DecisionDeniedToLogin:
		response.RenderErr(ctx, response.ErrUnauthorized("Please log in to continue."))
	default:
		response.RenderErr(ctx, response.ErrForbidden("You do not have access to this page."))
	}
}
