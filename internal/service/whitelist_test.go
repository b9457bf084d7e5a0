package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-events/gateway/internal/domain"
)

type fakeWhitelistAPI struct {
	requests []domain.WhitelistRequest
	err      error

	gotStatus string
}

func (f *fakeWhitelistAPI) MyWhitelistRequest(ctx context.Context) (domain.WhitelistRequest, bool, error) {
	if f.err != nil {
		return domain.WhitelistRequest{}, false, f.err
	}
	if len(f.requests) == 0 {
		return domain.WhitelistRequest{}, false, nil
	}

	return f.requests[0], true, nil
}

func (f *fakeWhitelistAPI) WhitelistRequests(ctx context.Context, status string) ([]domain.WhitelistRequest, error) {
	f.gotStatus = status
	return f.requests, f.err
}

func (f *fakeWhitelistAPI) ReviewWhitelistRequest(ctx context.Context, requestID string, approved bool, notes string) (domain.WhitelistRequest, error) {
	return domain.WhitelistRequest{}, f.err
}

func (f *fakeWhitelistAPI) SubmitWhitelistRequest(ctx context.Context, organizationName, filename string, document io.Reader) (domain.WhitelistRequest, error) {
	return domain.WhitelistRequest{}, f.err
}

func TestWhitelistService_GetMyRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("absence is not an error", func(t *testing.T) {
		svc := NewWhitelistService(&fakeWhitelistAPI{})

		_, found, err := svc.GetMyRequest(ctx)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("failure is", func(t *testing.T) {
		svc := NewWhitelistService(&fakeWhitelistAPI{err: errors.New("down")})

		_, found, err := svc.GetMyRequest(ctx)

		require.Error(t, err)
		assert.False(t, found)
	})
}

func TestWhitelistService_GetSummary(t *testing.T) {
	api := &fakeWhitelistAPI{
		requests: []domain.WhitelistRequest{
			{ID: "w1", Status: domain.WhitelistPending},
			{ID: "w2", Status: domain.WhitelistPending},
			{ID: "w3", Status: domain.WhitelistApproved},
			{ID: "w4", Status: domain.WhitelistRejected},
		},
	}
	svc := NewWhitelistService(api)

	summary, err := svc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Empty(t, api.gotStatus, "the summary folds the unfiltered list")
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Pending)
	assert.Equal(t, 1, summary.Approved)
	assert.Equal(t, 1, summary.Rejected)
}
