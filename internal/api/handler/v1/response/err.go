package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campus-events/gateway/internal/upstream"
)

const (
	RedirectLogin = "/login"
	RedirectHome  = "/home"
)

type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Redirect   string `json:"redirect,omitempty"`
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

func ErrUnauthorized(message string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		Redirect:   RedirectLogin,
	}
}

func ErrForbidden(message string) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Message:    message,
		Redirect:   RedirectHome,
	}
}

func ErrNotFound(message string) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "Something went wrong. Please try again later.",
	}
}

// ErrUpstream maps an upstream failure onto the gateway response, reusing
// the upstream's status and user-facing message. A 401 carries the
// redirect-to-login signal; the session itself was already torn down by the
// transport.
func ErrUpstream(err error) *Err {
	status := upstream.StatusCode(err)
	if status == 0 {
		zap.L().Error("upstream unreachable", zap.Error(err))
		status = http.StatusBadGateway
	}

	e := &Err{
		StatusCode: status,
		Message:    upstream.ErrorMessage(err),
	}
	if status == http.StatusUnauthorized {
		e.Redirect = RedirectLogin
	}

	return e
}

func RenderErr(ctx *gin.Context, e *Err) {
	ctx.AbortWithStatusJSON(e.StatusCode, Response{
		Success:  false,
		Message:  e.Message,
		Redirect: e.Redirect,
	})
}
