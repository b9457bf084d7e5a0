package domain

import "time"

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationAttended  RegistrationStatus = "attended"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

type Registration struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	UserID       string             `json:"user_id"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registered_at"`

	Event *Event   `json:"event,omitempty"`
	User  *UserRef `json:"user,omitempty"`
}

// RegistrationSummary tallies an event's registrations by status.
type RegistrationSummary struct {
	EventID   string `json:"event_id"`
	Total     int    `json:"total_registrations"`
	Confirmed int    `json:"confirmed"`
	Attended  int    `json:"attended"`
	Cancelled int    `json:"cancelled"`
	Pending   int    `json:"pending"`
}

type Attendance struct {
	ID       string    `json:"id"`
	EventID  string    `json:"event_id"`
	UserID   string    `json:"user_id"`
	Status   string    `json:"status"`
	MarkedAt time.Time `json:"marked_at"`
	MarkedBy string    `json:"marked_by,omitempty"`
	User     *UserRef  `json:"user,omitempty"`
}

type AttendanceStats struct {
	EventID  string `json:"event_id"`
	Total    int    `json:"total"`
	Present  int    `json:"present"`
	Absent   int    `json:"absent"`
	Excused  int    `json:"excused"`
	Unmarked int    `json:"unmarked"`
}
