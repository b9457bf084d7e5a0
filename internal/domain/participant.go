package domain

type ParticipantStatus string

const (
	ParticipantConfirmed ParticipantStatus = "confirmed"
	ParticipantPending   ParticipantStatus = "pending"
)

// Participant is derived from registrations across an organizer's events.
// It is never persisted; identity fields may start as placeholders and be
// refined by a later per-user lookup.
type Participant struct {
	RegistrationID string            `json:"registration_id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	EventTitle     string            `json:"event_title"`
	EventOrganizer string            `json:"event_organizer"`
	Status         ParticipantStatus `json:"status"`
}
