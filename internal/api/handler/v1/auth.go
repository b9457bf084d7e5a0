package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/gateway/internal/api/handler/v1/request"
	"github.com/campus-events/gateway/internal/api/handler/v1/response"
	"github.com/campus-events/gateway/internal/api/middleware"
	"github.com/campus-events/gateway/internal/config"
	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/upstream"
)

type AuthService interface {
	Login(ctx context.Context, email, password, userAgent string) (domain.Session, string, error)
	Register(ctx context.Context, payload upstream.RegisterPayload, userAgent string) (domain.Session, string, error)
	Logout(ctx context.Context, sid string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Log in against the upstream and open a session
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	session, cookie, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password, ctx.Request.UserAgent())
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	h.setSessionCookie(ctx, cookie)
	response.RenderData(ctx, http.StatusOK, session.User)
}

// HandleRegister godoc
// @Summary      Register against the upstream and open a session
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	payload := upstream.RegisterPayload{
		Email:       req.Email,
		FullName:    req.FullName,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	}

	session, cookie, err := h.svc.Register(ctx.Request.Context(), payload, ctx.Request.UserAgent())
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	h.setSessionCookie(ctx, cookie)
	response.RenderData(ctx, http.StatusCreated, session.User)
}

// HandleLogout godoc
// @Summary      Close the current session
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.Response
// @Failure      500      {object}   response.Err
// @Router       /auth/logout [post]
// @Security     SessionAuth
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	session := middleware.SessionFrom(ctx)
	if session != nil {
		if err := h.svc.Logout(ctx.Request.Context(), session.ID); err != nil {
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}
	}

	h.clearSessionCookie(ctx)
	response.RenderMessage(ctx, http.StatusOK, "Logged out.")
}

// HandleMe godoc
// @Summary      Return the user attached to the current session
// @Tags         auth
// @Produce      json
// @Success      200      {object}   domain.User
// @Failure      401      {object}   response.Err
// @Router       /auth/me [get]
// @Security     SessionAuth
func (h *AuthHandler) HandleMe(ctx *gin.Context) {
	session := middleware.SessionFrom(ctx)
	if session == nil {
		response.RenderErr(ctx, response.ErrUnauthorized("Please log in to continue."))
		return
	}

	response.RenderData(ctx, http.StatusOK, session.User)
}

func (h *AuthHandler) setSessionCookie(ctx *gin.Context, cookie string) {
	maxAge := h.conf.SessionTTLMinutes * 60
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookieName, cookie, maxAge, "/", "", h.conf.Environment == "production", true)
}

func (h *AuthHandler) clearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.conf.Environment == "production", true)
}
