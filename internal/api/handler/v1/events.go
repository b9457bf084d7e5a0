package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/gateway/internal/api/handler/v1/request"
	"github.com/campus-events/gateway/internal/api/handler/v1/response"
	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/upstream"
)

// MaxPosterSize caps event poster uploads at 5 MB.
const MaxPosterSize = 5 * 1024 * 1024

var posterExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type EventService interface {
	GetEvents(ctx context.Context, filters domain.EventFilters) ([]domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (domain.Event, error)
	GetMyEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, payload upstream.EventPayload) (domain.Event, error)
	UpdateEvent(ctx context.Context, eventID string, payload upstream.EventPayload) (domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	PublishEvent(ctx context.Context, eventID string) (domain.Event, error)
	UploadPoster(ctx context.Context, eventID, filename string, poster io.Reader) (domain.Event, error)
	RegisterToEvent(ctx context.Context, eventID string) (domain.Registration, error)
	GetMyRegistrations(ctx context.Context) ([]domain.Registration, error)
	CancelRegistration(ctx context.Context, registrationID string) error
	GetEventRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error)
	GetRegistrationSummary(ctx context.Context, eventID string) (domain.RegistrationSummary, error)
	GetEventAttendance(ctx context.Context, eventID string) ([]domain.Attendance, error)
	MarkAttendance(ctx context.Context, eventID, userID, status string) (domain.Attendance, error)
	MarkBulkAttendance(ctx context.Context, eventID string, userIDs []string, status string) (upstream.BulkAttendanceResult, error)
	GetAttendanceStats(ctx context.Context, eventID string) (domain.AttendanceStats, error)
	SendReminder(ctx context.Context, eventID, message string) error
	SetAutoReminder(ctx context.Context, reminderID string, active bool) error
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List events, optionally filtered
// @Tags         events
// @Produce      json
// @Param        category    query     string false "category filter"
// @Param        status      query     string false "status filter"
// @Param        event_type  query     string false "event type filter"
// @Param        search      query     string false "title search"
// @Success      200      {object}   []domain.Event
// @Failure      502      {object}   response.Err
// @Router       /events [get]
// @Security     SessionAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	filters := domain.EventFilters{
		Category:  ctx.Query("category"),
		Status:    ctx.Query("status"),
		EventType: ctx.Query("event_type"),
		Search:    ctx.Query("search"),
	}

	events, err := h.svc.GetEvents(ctx.Request.Context(), filters)
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get a single event
// @Tags         events
// @Produce      json
// @Param        eventID   path       string true "event ID"
// @Success      200      {object}   domain.Event
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID} [get]
// @Security     SessionAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	event, err := h.svc.GetEvent(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, event)
}

// HandleMyEvents godoc
// @Summary      List the events owned by the caller
// @Tags         events
// @Produce      json
// @Success      200      {object}   []domain.Event
// @Failure      502      {object}   response.Err
// @Router       /my-events [get]
// @Security     SessionAuth
func (h *EventHandler) HandleMyEvents(ctx *gin.Context) {
	events, err := h.svc.GetMyEvents(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, events)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Produce      json
// @Param        request   body      request.EventRequest true "request body"
// @Success      201      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /events [post]
// @Security     SessionAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	payload, ok := bindEventRequest(ctx)
	if !ok {
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), payload)
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusCreated, created)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Param        request   body      request.EventRequest true "request body"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID} [put]
// @Security     SessionAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	payload, ok := bindEventRequest(ctx)
	if !ok {
		return
	}

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), ctx.Param("eventID"), payload)
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      200      {object}   response.Response
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID} [delete]
// @Security     SessionAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	if err := h.svc.DeleteEvent(ctx.Request.Context(), ctx.Param("eventID")); err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderMessage(ctx, http.StatusOK, "Event deleted.")
}

// HandlePublishEvent godoc
// @Summary      Publish a draft event
// @Tags         events
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      200      {object}   domain.Event
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID}/publish [patch]
// @Security     SessionAuth
func (h *EventHandler) HandlePublishEvent(ctx *gin.Context) {
	published, err := h.svc.PublishEvent(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, published)
}

// HandleUploadPoster godoc
// @Summary      Upload an event poster image
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Param        poster    formData  file   true "poster image, max 5 MB"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /events/{eventID}/poster [post]
// @Security     SessionAuth
func (h *EventHandler) HandleUploadPoster(ctx *gin.Context) {
	header, err := ctx.FormFile("poster")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("a poster file is required")))
		return
	}

	if header.Size > MaxPosterSize {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("the poster must not exceed 5 MB")))
		return
	}

	if !posterExtensions[strings.ToLower(filepath.Ext(header.Filename))] {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("the poster must be a JPG, PNG or WebP image")))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	defer file.Close()

	updated, err := h.svc.UploadPoster(ctx.Request.Context(), ctx.Param("eventID"), header.Filename, file)
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, updated)
}

// HandleRegisterToEvent godoc
// @Summary      Register the caller to an event
// @Tags         registrations
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      201      {object}   domain.Registration
// @Failure      409      {object}   response.Err
// @Router       /events/{eventID}/register [post]
// @Security     SessionAuth
func (h *EventHandler) HandleRegisterToEvent(ctx *gin.Context) {
	registration, err := h.svc.RegisterToEvent(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusCreated, registration)
}

// HandleMyRegistrations godoc
// @Summary      List the caller's registrations
// @Tags         registrations
// @Produce      json
// @Success      200      {object}   []domain.Registration
// @Failure      502      {object}   response.Err
// @Router       /my-registrations [get]
// @Security     SessionAuth
func (h *EventHandler) HandleMyRegistrations(ctx *gin.Context) {
	registrations, err := h.svc.GetMyRegistrations(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, registrations)
}

// HandleCancelRegistration godoc
// @Summary      Cancel one of the caller's registrations
// @Tags         registrations
// @Produce      json
// @Param        registrationID   path   string true "registration ID"
// @Success      200      {object}   response.Response
// @Failure      404      {object}   response.Err
// @Router       /registrations/{registrationID} [delete]
// @Security     SessionAuth
func (h *EventHandler) HandleCancelRegistration(ctx *gin.Context) {
	if err := h.svc.CancelRegistration(ctx.Request.Context(), ctx.Param("registrationID")); err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderMessage(ctx, http.StatusOK, "Registration cancelled.")
}

// HandleEventRegistrations godoc
// @Summary      List registrations for an event
// @Tags         registrations
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      200      {object}   []domain.Registration
// @Failure      502      {object}   response.Err
// @Router       /events/{eventID}/registrations [get]
// @Security     SessionAuth
func (h *EventHandler) HandleEventRegistrations(ctx *gin.Context) {
	registrations, err := h.svc.GetEventRegistrations(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, registrations)
}

// HandleRegistrationSummary godoc
// @Summary      Per-status registration counts for an event
// @Tags         registrations
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      200      {object}   domain.RegistrationSummary
// @Failure      502      {object}   response.Err
// @Router       /events/{eventID}/registrations/summary [get]
// @Security     SessionAuth
func (h *EventHandler) HandleRegistrationSummary(ctx *gin.Context) {
	summary, err := h.svc.GetRegistrationSummary(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, summary)
}

// HandleEventAttendance godoc
// @Summary      List attendance records for an event
// @Tags         attendance
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      200      {object}   []domain.Attendance
// @Failure      502      {object}   response.Err
// @Router       /events/{eventID}/attendance [get]
// @Security     SessionAuth
func (h *EventHandler) HandleEventAttendance(ctx *gin.Context) {
	attendance, err := h.svc.GetEventAttendance(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, attendance)
}

// HandleMarkAttendance godoc
// @Summary      Mark one participant's attendance
// @Tags         attendance
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Param        request   body      request.MarkAttendanceRequest true "request body"
// @Success      200      {object}   domain.Attendance
// @Failure      400      {object}   response.Err
// @Router       /events/{eventID}/attendance [post]
// @Security     SessionAuth
func (h *EventHandler) HandleMarkAttendance(ctx *gin.Context) {
	var req request.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	marked, err := h.svc.MarkAttendance(ctx.Request.Context(), ctx.Param("eventID"), req.UserID, req.Status)
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, marked)
}

// HandleMarkBulkAttendance godoc
// @Summary      Mark attendance for several participants at once
// @Tags         attendance
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Param        request   body      request.BulkAttendanceRequest true "request body"
// @Success      200      {object}   upstream.BulkAttendanceResult
// @Failure      400      {object}   response.Err
// @Router       /events/{eventID}/attendance/bulk [post]
// @Security     SessionAuth
func (h *EventHandler) HandleMarkBulkAttendance(ctx *gin.Context) {
	var req request.BulkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.MarkBulkAttendance(ctx.Request.Context(), ctx.Param("eventID"), req.UserIDs, req.Status)
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, result)
}

// HandleAttendanceStats godoc
// @Summary      Attendance counts for an event
// @Tags         attendance
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      200      {object}   domain.AttendanceStats
// @Failure      502      {object}   response.Err
// @Router       /events/{eventID}/attendance/stats [get]
// @Security     SessionAuth
func (h *EventHandler) HandleAttendanceStats(ctx *gin.Context) {
	stats, err := h.svc.GetAttendanceStats(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, stats)
}

// HandleSendReminder godoc
// @Summary      Send a reminder to an event's participants
// @Tags         reminders
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Param        request   body      request.ReminderRequest true "request body"
// @Success      200      {object}   response.Response
// @Failure      400      {object}   response.Err
// @Router       /events/{eventID}/reminders [post]
// @Security     SessionAuth
func (h *EventHandler) HandleSendReminder(ctx *gin.Context) {
	var req request.ReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.SendReminder(ctx.Request.Context(), ctx.Param("eventID"), req.Message); err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderMessage(ctx, http.StatusOK, "Reminder sent.")
}

// HandleSetAutoReminder godoc
// @Summary      Toggle an automatic reminder
// @Tags         reminders
// @Produce      json
// @Param        reminderID   path   string true "reminder ID"
// @Param        request   body      request.AutoReminderRequest true "request body"
// @Success      200      {object}   response.Response
// @Failure      400      {object}   response.Err
// @Router       /reminders/auto/{reminderID} [put]
// @Security     SessionAuth
func (h *EventHandler) HandleSetAutoReminder(ctx *gin.Context) {
	var req request.AutoReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.SetAutoReminder(ctx.Request.Context(), ctx.Param("reminderID"), *req.Active); err != nil {
		response.RenderErr(ctx, response.ErrUpstream(err))
		return
	}

	response.RenderMessage(ctx, http.StatusOK, "Auto reminder updated.")
}

func bindEventRequest(ctx *gin.Context) (upstream.EventPayload, bool) {
	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return upstream.EventPayload{}, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return upstream.EventPayload{}, false
	}

	return upstream.EventPayload{
		Title:                req.Title,
		Description:          req.Description,
		Category:             req.Category,
		EventType:            req.EventType,
		Location:             req.Location,
		ZoomLink:             req.ZoomLink,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		MaxParticipants:      req.MaxParticipants,
		IsCampusOnly:         req.IsCampusOnly,
		Status:               req.Status,
	}, true
}
