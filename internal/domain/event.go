package domain

import "time"

type EventCategory string

const (
	CategorySeminar     EventCategory = "seminar"
	CategoryWorkshop    EventCategory = "workshop"
	CategoryCompetition EventCategory = "competition"
	CategoryConcert     EventCategory = "concert"
)

type EventType string

const (
	EventOnline  EventType = "online"
	EventOffline EventType = "offline"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Event is consumed from the upstream backend, never owned by the gateway.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Category    EventCategory `json:"category"`
	EventType   EventType     `json:"event_type"`
	Status      EventStatus   `json:"status"`

	Location  string `json:"location,omitempty"`
	ZoomLink  string `json:"zoom_link,omitempty"`
	PosterURL string `json:"poster_url,omitempty"`

	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`

	MaxParticipants     int  `json:"max_participants"`
	CurrentParticipants int  `json:"current_participants,omitempty"`
	IsCampusOnly        bool `json:"is_campus_only"`

	OrganizerID      string `json:"organizer_id"`
	OrganizerName    string `json:"organizer_name,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventFilters narrows the upstream event listing.
type EventFilters struct {
	Category  string
	Status    string
	EventType string
	Search    string
}
