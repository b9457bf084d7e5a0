package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/gateway/internal/api/handler/v1/response"
	"github.com/campus-events/gateway/internal/upstream"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (upstream.UserDetail, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetUser godoc
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Param        userID   path       string true "user ID"
// @Success      200      {object}   upstream.UserDetail
// @Failure      404      {object}   response.Err
// @Router       /users/{userID} [get]
// @Security     SessionAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	user, err := h.svc.GetUser(ctx.Request.Context(), ctx.Param("userID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, user)
}
