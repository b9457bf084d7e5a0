package domain

type Role string

const (
	RoleEndUser   Role = "end_user"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Role           Role   `json:"role"`
	IsCampusMember bool   `json:"is_campus_member"`
	IsApproved     bool   `json:"is_approved"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRef is the partial user sub-object nested in upstream payloads.
type UserRef struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
}
