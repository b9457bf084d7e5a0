package v1

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/gateway/internal/api/handler/v1/request"
	"github.com/campus-events/gateway/internal/api/handler/v1/response"
	"github.com/campus-events/gateway/internal/domain"
)

type WhitelistService interface {
	GetMyRequest(ctx context.Context) (domain.WhitelistRequest, bool, error)
	GetRequests(ctx context.Context, status string) ([]domain.WhitelistRequest, error)
	ReviewRequest(ctx context.Context, requestID string, approved bool, notes string) (domain.WhitelistRequest, error)
	SubmitRequest(ctx context.Context, organizationName, filename string, document io.Reader) (domain.WhitelistRequest, error)
	GetSummary(ctx context.Context) (domain.WhitelistSummary, error)
}

type WhitelistHandler struct {
	svc WhitelistService
}

func NewWhitelistHandler(svc WhitelistService) *WhitelistHandler {
	return &WhitelistHandler{
		svc: svc,
	}
}

// HandleSubmitRequest godoc
// @Summary      Submit an organizer whitelist request
// @Tags         whitelist
// @Accept       multipart/form-data
// @Produce      json
// @Param        organization_name formData string true "organization name"
// @Param        document          formData file   true "supporting PDF, max 5 MB"
// @Success      201      {object}   domain.WhitelistRequest
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /whitelist/request [post]
// @Security     SessionAuth
func (h *WhitelistHandler) HandleSubmitRequest(ctx *gin.Context) {
	header, _ := ctx.FormFile("document")
	req := request.SubmitWhitelistRequest{
		OrganizationName: ctx.PostForm("organization_name"),
		Document:         header,
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	defer file.Close()

	created, err := h.svc.SubmitRequest(ctx.Request.Context(), req.OrganizationName, header.Filename, file)
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusCreated, created)
}

// HandleMyRequest godoc
// @Summary      Get the caller's whitelist request, if any
// @Tags         whitelist
// @Produce      json
// @Success      200      {object}   domain.WhitelistRequest
// @Failure      404      {object}   response.Err
// @Router       /whitelist/my-request [get]
// @Security     SessionAuth
func (h *WhitelistHandler) HandleMyRequest(ctx *gin.Context) {
	myRequest, found, err := h.svc.GetMyRequest(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	if !found {
		response.RenderErr(ctx, response.ErrNotFound("You have not submitted a whitelist request."))
		return
	}

	response.RenderData(ctx, http.StatusOK, myRequest)
}

// HandleListRequests godoc
// @Summary      List whitelist requests, optionally by status
// @Tags         whitelist
// @Produce      json
// @Param        status   query      string false "pending | approved | rejected"
// @Success      200      {object}   []domain.WhitelistRequest
// @Failure      502      {object}   response.Err
// @Router       /whitelist/requests [get]
// @Security     SessionAuth
func (h *WhitelistHandler) HandleListRequests(ctx *gin.Context) {
	requests, err := h.svc.GetRequests(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, requests)
}

// HandleReviewRequest godoc
// @Summary      Approve or reject a whitelist request
// @Tags         whitelist
// @Produce      json
// @Param        requestID path      string true "request ID"
// @Param        request   body      request.ReviewWhitelistRequest true "request body"
// @Success      200      {object}   domain.WhitelistRequest
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /whitelist/requests/{requestID}/review [patch]
// @Security     SessionAuth
func (h *WhitelistHandler) HandleReviewRequest(ctx *gin.Context) {
	var req request.ReviewWhitelistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reviewed, err := h.svc.ReviewRequest(ctx.Request.Context(), ctx.Param("requestID"), *req.Approved, req.AdminNotes)
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, reviewed)
}

// HandleSummary godoc
// @Summary      Per-status whitelist request counts
// @Tags         whitelist
// @Produce      json
// @Success      200      {object}   domain.WhitelistSummary
// @Failure      502      {object}   response.Err
// @Router       /whitelist/summary [get]
// @Security     SessionAuth
func (h *WhitelistHandler) HandleSummary(ctx *gin.Context) {
	summary, err := h.svc.GetSummary(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, summary)
}
