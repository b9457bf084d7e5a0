package domain

import "time"

type WhitelistStatus string

const (
	WhitelistPending  WhitelistStatus = "pending"
	WhitelistApproved WhitelistStatus = "approved"
	WhitelistRejected WhitelistStatus = "rejected"
)

// WhitelistRequest is a user's claim to organizer privileges, reviewed by an
// admin. Status only ever moves pending -> approved|rejected; a rejected
// request is resubmitted as a new record, never mutated back.
type WhitelistRequest struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	OrganizationName string          `json:"organization_name"`
	DocumentURL      string          `json:"document_url"`
	Status           WhitelistStatus `json:"status"`

	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy  string     `json:"reviewed_by,omitempty"`
	AdminNotes  string     `json:"admin_notes,omitempty"`

	UserName  string   `json:"user_name,omitempty"`
	UserEmail string   `json:"user_email,omitempty"`
	User      *UserRef `json:"user,omitempty"`
	Reviewer  *UserRef `json:"reviewer,omitempty"`
}

type WhitelistSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
