package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-events/gateway/internal/domain"
)

// fakeEventAPI embeds the interface so only the methods a test needs are
// implemented; anything else panics loudly.
type fakeEventAPI struct {
	EventAPI

	registrations []domain.Registration
	attendance    []domain.Attendance
	err           error
}

func (f *fakeEventAPI) EventRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	return f.registrations, f.err
}

func (f *fakeEventAPI) EventAttendance(ctx context.Context, eventID string) ([]domain.Attendance, error) {
	return f.attendance, f.err
}

func TestEventService_GetRegistrationSummary(t *testing.T) {
	t.Run("tallies by status", func(t *testing.T) {
		api := &fakeEventAPI{
			registrations: []domain.Registration{
				{ID: "r1", Status: domain.RegistrationConfirmed},
				{ID: "r2", Status: domain.RegistrationConfirmed},
				{ID: "r3", Status: domain.RegistrationAttended},
				{ID: "r4", Status: domain.RegistrationCancelled},
				{ID: "r5", Status: domain.RegistrationPending},
				{ID: "r6", Status: "unknown-status"},
			},
		}
		svc := NewEventService(api)

		summary, err := svc.GetRegistrationSummary(context.Background(), "e1")

		require.NoError(t, err)
		assert.Equal(t, "e1", summary.EventID)
		assert.Equal(t, 6, summary.Total)
		assert.Equal(t, 2, summary.Confirmed)
		assert.Equal(t, 1, summary.Attended)
		assert.Equal(t, 1, summary.Cancelled)
		assert.Equal(t, 1, summary.Pending)
	})

	t.Run("upstream failure propagates", func(t *testing.T) {
		svc := NewEventService(&fakeEventAPI{err: errors.New("down")})

		_, err := svc.GetRegistrationSummary(context.Background(), "e1")

		require.Error(t, err)
	})
}

func TestEventService_GetAttendanceStats(t *testing.T) {
	api := &fakeEventAPI{
		attendance: []domain.Attendance{
			{UserID: "u1", Status: "present"},
			{UserID: "u2", Status: "present"},
			{UserID: "u3", Status: "absent"},
			{UserID: "u4", Status: "excused"},
			{UserID: "u5", Status: ""},
		},
	}
	svc := NewEventService(api)

	stats, err := svc.GetAttendanceStats(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 1, stats.Excused)
	assert.Equal(t, 1, stats.Unmarked)
}
