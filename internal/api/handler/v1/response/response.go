package response

import "github.com/gin-gonic/gin"

// Response is the gateway's envelope, mirroring the upstream contract so
// browser code handles both identically.
type Response struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Data     any    `json:"data,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func RenderData(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, Response{
		Success: true,
		Data:    data,
	})
}

func RenderMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, Response{
		Success: true,
		Message: message,
	})
}
