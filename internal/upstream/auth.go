package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campus-events/gateway/internal/domain"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &result); err != nil {
		return LoginResult{}, fmt.Errorf("c.do -> %w", err)
	}

	return result, nil
}

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, payload, &result); err != nil {
		return LoginResult{}, fmt.Errorf("c.do -> %w", err)
	}

	return result, nil
}
