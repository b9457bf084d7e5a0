package v1

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/gateway/internal/api/handler/v1/response"
	"github.com/campus-events/gateway/internal/api/middleware"
	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/service"
)

type ParticipantService interface {
	ListAllParticipants(ctx context.Context, session *domain.Session) (*service.ParticipantList, error)
	Cached(userID string) (*service.ParticipantList, bool)
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleListParticipants godoc
// @Summary      List participants across all of the caller's events
// @Tags         participants
// @Produce      json
// @Param        search   query      string false "filter by name, email or event title"
// @Param        refresh  query      bool   false "rebuild the list instead of serving the cached one"
// @Success      200      {object}   []domain.Participant
// @Failure      502      {object}   response.Err
// @Router       /participants [get]
// @Security     SessionAuth
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	session := middleware.SessionFrom(ctx)

	// Serve the cached list so user lookups finished after the
	// first build are visible on later reads.
	list, ok := h.svc.Cached(session.User.ID)
	if !ok || ctx.Query("refresh") != "" {
		var err error
		list, err = h.svc.ListAllParticipants(ctx.Request.Context(), session)
		if err != nil {
			response.RenderErr(ctx, response.ErrUpstream(err))
			return
		}
	}

	participants := list.Snapshot()
	if search := strings.TrimSpace(ctx.Query("search")); search != "" {
		participants = filterParticipants(participants, search)
	}

	response.RenderData(ctx, http.StatusOK, participants)
}

func filterParticipants(participants []domain.Participant, search string) []domain.Participant {
	search = strings.ToLower(search)

	filtered := make([]domain.Participant, 0, len(participants))
	for _, p := range participants {
		if strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Email), search) ||
			strings.Contains(strings.ToLower(p.EventTitle), search) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
