package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
// @Summary      Check if the API is up and running
// @Tags         healthcheck
// @Produce      plain
// @Success      200 {string} string "OK"
// @Router       /healthcheck [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
