package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// UserDetail is the enrichment lookup's view of a user.
type UserDetail struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role,omitempty"`
}

func (c *Client) GetUser(ctx context.Context, userID string) (UserDetail, error) {
	var user UserDetail
	if err := c.do(ctx, http.MethodGet, "/users/"+userID, nil, nil, &user); err != nil {
		return UserDetail{}, fmt.Errorf("c.do -> %w", err)
	}

	return user, nil
}
