package service

import (
	"context"
	"fmt"
	"io"

	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/upstream"
)

type EventAPI interface {
	Events(ctx context.Context, filters domain.EventFilters) ([]domain.Event, error)
	Event(ctx context.Context, eventID string) (domain.Event, error)
	MyEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, payload upstream.EventPayload) (domain.Event, error)
	UpdateEvent(ctx context.Context, eventID string, payload upstream.EventPayload) (domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	PublishEvent(ctx context.Context, eventID string) (domain.Event, error)
	UploadPoster(ctx context.Context, eventID, filename string, poster io.Reader) (domain.Event, error)
	RegisterToEvent(ctx context.Context, eventID string) (domain.Registration, error)
	MyRegistrations(ctx context.Context) ([]domain.Registration, error)
	CancelRegistration(ctx context.Context, registrationID string) error
	EventRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error)
	EventAttendance(ctx context.Context, eventID string) ([]domain.Attendance, error)
	MarkAttendance(ctx context.Context, eventID, userID, status string) (domain.Attendance, error)
	MarkBulkAttendance(ctx context.Context, eventID string, userIDs []string, status string) (upstream.BulkAttendanceResult, error)
	SendEventReminder(ctx context.Context, eventID, message string) error
	SetAutoReminder(ctx context.Context, reminderID string, active bool) error
}

// EventService fronts the upstream event endpoints and computes the derived
// views the upstream does not provide.
type EventService struct {
	api EventAPI
}

func NewEventService(api EventAPI) *EventService {
	return &EventService{
		api: api,
	}
}

func (s *EventService) GetEvents(ctx context.Context, filters domain.EventFilters) ([]domain.Event, error) {
	events, err := s.api.Events(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("s.api.Events -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	event, err := s.api.Event(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.api.Event -> %w", err)
	}

	return event, nil
}

func (s *EventService) GetMyEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.api.MyEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.MyEvents -> %w", err)
	}

	return events, nil
}

func (s *EventService) CreateEvent(ctx context.Context, payload upstream.EventPayload) (domain.Event, error) {
	created, err := s.api.CreateEvent(ctx, payload)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.api.CreateEvent -> %w", err)
	}

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, eventID string, payload upstream.EventPayload) (domain.Event, error) {
	updated, err := s.api.UpdateEvent(ctx, eventID, payload)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.api.UpdateEvent -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.api.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("s.api.DeleteEvent -> %w", err)
	}

	return nil
}

func (s *EventService) PublishEvent(ctx context.Context, eventID string) (domain.Event, error) {
	published, err := s.api.PublishEvent(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.api.PublishEvent -> %w", err)
	}

	return published, nil
}

func (s *EventService) UploadPoster(ctx context.Context, eventID, filename string, poster io.Reader) (domain.Event, error) {
	updated, err := s.api.UploadPoster(ctx, eventID, filename, poster)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.api.UploadPoster -> %w", err)
	}

	return updated, nil
}

func (s *EventService) RegisterToEvent(ctx context.Context, eventID string) (domain.Registration, error) {
	registration, err := s.api.RegisterToEvent(ctx, eventID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.api.RegisterToEvent -> %w", err)
	}

	return registration, nil
}

func (s *EventService) GetMyRegistrations(ctx context.Context) ([]domain.Registration, error) {
	registrations, err := s.api.MyRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.MyRegistrations -> %w", err)
	}

	return registrations, nil
}

func (s *EventService) CancelRegistration(ctx context.Context, registrationID string) error {
	if err := s.api.CancelRegistration(ctx, registrationID); err != nil {
		return fmt.Errorf("s.api.CancelRegistration -> %w", err)
	}

	return nil
}

func (s *EventService) GetEventRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	registrations, err := s.api.EventRegistrations(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.api.EventRegistrations -> %w", err)
	}

	return registrations, nil
}

// GetRegistrationSummary tallies an event's registrations by status.
func (s *EventService) GetRegistrationSummary(ctx context.Context, eventID string) (domain.RegistrationSummary, error) {
	registrations, err := s.api.EventRegistrations(ctx, eventID)
	if err != nil {
		return domain.RegistrationSummary{}, fmt.Errorf("s.api.EventRegistrations -> %w", err)
	}

	summary := domain.RegistrationSummary{
		EventID: eventID,
		Total:   len(registrations),
	}
	for _, r := range registrations {
		switch r.Status {
		case domain.RegistrationConfirmed:
			summary.Confirmed++
		case domain.RegistrationAttended:
			summary.Attended++
		case domain.RegistrationCancelled:
			summary.Cancelled++
		case domain.RegistrationPending:
			summary.Pending++
		}
	}

	return summary, nil
}

func (s *EventService) GetEventAttendance(ctx context.Context, eventID string) ([]domain.Attendance, error) {
	attendance, err := s.api.EventAttendance(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.api.EventAttendance -> %w", err)
	}

	return attendance, nil
}

func (s *EventService) MarkAttendance(ctx context.Context, eventID, userID, status string) (domain.Attendance, error) {
	marked, err := s.api.MarkAttendance(ctx, eventID, userID, status)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.api.MarkAttendance -> %w", err)
	}

	return marked, nil
}

func (s *EventService) MarkBulkAttendance(ctx context.Context, eventID string, userIDs []string, status string) (upstream.BulkAttendanceResult, error) {
	result, err := s.api.MarkBulkAttendance(ctx, eventID, userIDs, status)
	if err != nil {
		return upstream.BulkAttendanceResult{}, fmt.Errorf("s.api.MarkBulkAttendance -> %w", err)
	}

	return result, nil
}

// GetAttendanceStats is computed from the attendance list; the upstream has
// no dedicated stats endpoint.
func (s *EventService) GetAttendanceStats(ctx context.Context, eventID string) (domain.AttendanceStats, error) {
	attendance, err := s.api.EventAttendance(ctx, eventID)
	if err != nil {
		return domain.AttendanceStats{}, fmt.Errorf("s.api.EventAttendance -> %w", err)
	}

	stats := domain.AttendanceStats{
		EventID: eventID,
		Total:   len(attendance),
	}
	for _, a := range attendance {
		switch a.Status {
		case "present":
			stats.Present++
		case "absent":
			stats.Absent++
		case "excused":
			stats.Excused++
		default:
			stats.Unmarked++
		}
	}

	return stats, nil
}

func (s *EventService) SendReminder(ctx context.Context, eventID, message string) error {
	if err := s.api.SendEventReminder(ctx, eventID, message); err != nil {
		return fmt.Errorf("s.api.SendEventReminder -> %w", err)
	}

	return nil
}

func (s *EventService) SetAutoReminder(ctx context.Context, reminderID string, active bool) error {
	if err := s.api.SetAutoReminder(ctx, reminderID, active); err != nil {
		return fmt.Errorf("s.api.SetAutoReminder -> %w", err)
	}

	return nil
}
