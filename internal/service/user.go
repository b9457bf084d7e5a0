package service

import (
	"context"
	"fmt"

	"github.com/campus-events/gateway/internal/upstream"
)

type UserAPI interface {
	GetUser(ctx context.Context, userID string) (upstream.UserDetail, error)
}

type UserService struct {
	api UserAPI
}

func NewUserService(api UserAPI) *UserService {
	return &UserService{
		api: api,
	}
}

func (s *UserService) GetUser(ctx context.Context, userID string) (upstream.UserDetail, error) {
	user, err := s.api.GetUser(ctx, userID)
	if err != nil {
		return upstream.UserDetail{}, fmt.Errorf("s.api.GetUser -> %w", err)
	}

	return user, nil
}
