package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/campus-events/gateway/internal/domain"
)

type EventPayload struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	Category             string `json:"category"`
	EventType            string `json:"event_type"`
	Location             string `json:"location,omitempty"`
	ZoomLink             string `json:"zoom_link,omitempty"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	RegistrationDeadline string `json:"registration_deadline"`
	MaxParticipants      int    `json:"max_participants"`
	IsCampusOnly         bool   `json:"is_campus_only"`
	Status               string `json:"status"`
}

func (c *Client) Events(ctx context.Context, filters domain.EventFilters) ([]domain.Event, error) {
	query := url.Values{}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.EventType != "" {
		query.Set("event_type", filters.EventType)
	}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}

	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "/events", query, nil, &events); err != nil {
		return nil, fmt.Errorf("c.do -> %w", err)
	}

	return events, nil
}

func (c *Client) Event(ctx context.Context, eventID string) (domain.Event, error) {
	var event domain.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+eventID, nil, nil, &event); err != nil {
		return domain.Event{}, fmt.Errorf("c.do -> %w", err)
	}

	return event, nil
}

func (c *Client) MyEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "/events/my-events", nil, nil, &events); err != nil {
		return nil, fmt.Errorf("c.do -> %w", err)
	}

	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, payload EventPayload) (domain.Event, error) {
	var created domain.Event
	if err := c.do(ctx, http.MethodPost, "/events", nil, payload, &created); err != nil {
		return domain.Event{}, fmt.Errorf("c.do -> %w", err)
	}

	return created, nil
}

func (c *Client) UpdateEvent(ctx context.Context, eventID string, payload EventPayload) (domain.Event, error) {
	var updated domain.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+eventID, nil, payload, &updated); err != nil {
		return domain.Event{}, fmt.Errorf("c.do -> %w", err)
	}

	return updated, nil
}

func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.do(ctx, http.MethodDelete, "/events/"+eventID, nil, nil, nil); err != nil {
		return fmt.Errorf("c.do -> %w", err)
	}

	return nil
}

func (c *Client) PublishEvent(ctx context.Context, eventID string) (domain.Event, error) {
	var published domain.Event
	if err := c.do(ctx, http.MethodPost, "/events/"+eventID+"/publish", nil, struct{}{}, &published); err != nil {
		return domain.Event{}, fmt.Errorf("c.do -> %w", err)
	}

	return published, nil
}

func (c *Client) UploadPoster(ctx context.Context, eventID, filename string, poster io.Reader) (domain.Event, error) {
	var updated domain.Event
	err := c.doMultipart(ctx, http.MethodPost, "/events/"+eventID+"/poster", multipartForm{
		file: &multipartFile{field: "poster", filename: filename, content: poster},
	}, &updated)
	if err != nil {
		return domain.Event{}, fmt.Errorf("c.doMultipart -> %w", err)
	}

	return updated, nil
}

func (c *Client) RegisterToEvent(ctx context.Context, eventID string) (domain.Registration, error) {
	var registration domain.Registration
	err := c.do(ctx, http.MethodPost, "/events/"+eventID+"/register", nil, struct{}{}, &registration)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("c.do -> %w", err)
	}

	return registration, nil
}

func (c *Client) MyRegistrations(ctx context.Context) ([]domain.Registration, error) {
	var registrations []domain.Registration
	if err := c.do(ctx, http.MethodGet, "/registrations/my", nil, nil, &registrations); err != nil {
		return nil, fmt.Errorf("c.do -> %w", err)
	}

	return registrations, nil
}

func (c *Client) CancelRegistration(ctx context.Context, registrationID string) error {
	if err := c.do(ctx, http.MethodDelete, "/registrations/"+registrationID, nil, nil, nil); err != nil {
		return fmt.Errorf("c.do -> %w", err)
	}

	return nil
}

func (c *Client) EventRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	var registrations []domain.Registration
	err := c.do(ctx, http.MethodGet, "/events/"+eventID+"/registrations", nil, nil, &registrations)
	if err != nil {
		return nil, fmt.Errorf("c.do -> %w", err)
	}

	return registrations, nil
}

// RawEventRegistrations returns an event's registration records as loose
// maps for field probing. The backend has shipped this list bare, under
// data, and under data.registrations; all three are accepted. A payload
// matching none of them yields zero records rather than an error.
func (c *Client) RawEventRegistrations(ctx context.Context, eventID string) ([]map[string]any, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/events/"+eventID+"/registrations", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("c.doRaw -> %w", err)
	}

	return unwrapRegistrationList(raw), nil
}

func unwrapRegistrationList(raw []byte) []map[string]any {
	var direct []map[string]any
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil || len(wrapped.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(wrapped.Data, &direct); err == nil {
		return direct
	}

	var nested struct {
		Registrations []map[string]any `json:"registrations"`
	}
	if err := json.Unmarshal(wrapped.Data, &nested); err == nil {
		return nested.Registrations
	}

	return nil
}
