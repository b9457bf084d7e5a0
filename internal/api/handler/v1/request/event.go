package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type EventRequest struct {
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

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Category, validation.Required,
			validation.In("seminar", "workshop", "competition", "concert")),
		validation.Field(&req.EventType, validation.Required, validation.In("online", "offline")),
		validation.Field(&req.StartDate, validation.Required, validation.Date(dateTimeLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(dateTimeLayout)),
		validation.Field(&req.RegistrationDeadline, validation.Required, validation.Date(dateTimeLayout)),
		validation.Field(&req.MaxParticipants, validation.Required, validation.Min(1)),
		validation.Field(&req.Status, validation.Required, validation.In("draft", "published")),
	)
}

const dateTimeLayout = "2006-01-02T15:04:05Z07:00"

type MarkAttendanceRequest struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

func (req *MarkAttendanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Status, validation.Required, validation.In("present", "absent", "excused")),
	)
}

type BulkAttendanceRequest struct {
	UserIDs []string `json:"user_ids"`
	Status  string   `json:"status"`
}

func (req *BulkAttendanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserIDs, validation.Required, validation.Length(1, 0)),
		validation.Field(&req.Status, validation.Required, validation.In("present", "absent", "excused")),
	)
}

type ReminderRequest struct {
	Message string `json:"message,omitempty"`
}

func (req *ReminderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Message, validation.Length(0, 500)),
	)
}

type AutoReminderRequest struct {
	Active *bool `json:"active"`
}

func (req *AutoReminderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Active, validation.NotNil),
	)
}
