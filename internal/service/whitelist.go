package service

import (
	"context"
	"fmt"
	"io"

	"github.com/campus-events/gateway/internal/domain"
)

type WhitelistAPI interface {
	MyWhitelistRequest(ctx context.Context) (domain.WhitelistRequest, bool, error)
	WhitelistRequests(ctx context.Context, status string) ([]domain.WhitelistRequest, error)
	ReviewWhitelistRequest(ctx context.Context, requestID string, approved bool, notes string) (domain.WhitelistRequest, error)
	SubmitWhitelistRequest(ctx context.Context, organizationName, filename string, document io.Reader) (domain.WhitelistRequest, error)
}

type WhitelistService struct {
	api WhitelistAPI
}

func NewWhitelistService(api WhitelistAPI) *WhitelistService {
	return &WhitelistService{
		api: api,
	}
}

// GetMyRequest reports absence (no request on file) separately from failure.
func (s *WhitelistService) GetMyRequest(ctx context.Context) (domain.WhitelistRequest, bool, error) {
	request, found, err := s.api.MyWhitelistRequest(ctx)
	if err != nil {
		return domain.WhitelistRequest{}, false, fmt.Errorf("s.api.MyWhitelistRequest -> %w", err)
	}

	return request, found, nil
}

func (s *WhitelistService) GetRequests(ctx context.Context, status string) ([]domain.WhitelistRequest, error) {
	requests, err := s.api.WhitelistRequests(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("s.api.WhitelistRequests -> %w", err)
	}

	return requests, nil
}

func (s *WhitelistService) ReviewRequest(ctx context.Context, requestID string, approved bool, notes string) (domain.WhitelistRequest, error) {
	reviewed, err := s.api.ReviewWhitelistRequest(ctx, requestID, approved, notes)
	if err != nil {
		return domain.WhitelistRequest{}, fmt.Errorf("s.api.ReviewWhitelistRequest -> %w", err)
	}

	return reviewed, nil
}

func (s *WhitelistService) SubmitRequest(ctx context.Context, organizationName, filename string, document io.Reader) (domain.WhitelistRequest, error) {
	created, err := s.api.SubmitWhitelistRequest(ctx, organizationName, filename, document)
	if err != nil {
		return domain.WhitelistRequest{}, fmt.Errorf("s.api.SubmitWhitelistRequest -> %w", err)
	}

	return created, nil
}

// GetSummary folds the full request list into per-status counts; the
// upstream has no dedicated summary endpoint.
func (s *WhitelistService) GetSummary(ctx context.Context) (domain.WhitelistSummary, error) {
	requests, err := s.api.WhitelistRequests(ctx, "")
	if err != nil {
		return domain.WhitelistSummary{}, fmt.Errorf("s.api.WhitelistRequests -> %w", err)
	}

	summary := domain.WhitelistSummary{Total: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case domain.WhitelistPending:
			summary.Pending++
		case domain.WhitelistApproved:
			summary.Approved++
		case domain.WhitelistRejected:
			summary.Rejected++
		}
	}

	return summary, nil
}
