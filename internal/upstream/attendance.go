package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campus-events/gateway/internal/domain"
)

type BulkAttendanceResult struct {
	Marked int      `json:"marked"`
	Failed []string `json:"failed,omitempty"`
}

func (c *Client) EventAttendance(ctx context.Context, eventID string) ([]domain.Attendance, error) {
	var attendance []domain.Attendance
	err := c.do(ctx, http.MethodGet, "/events/"+eventID+"/attendance", nil, nil, &attendance)
	if err != nil {
		return nil, fmt.Errorf("c.do -> %w", err)
	}

	return attendance, nil
}

func (c *Client) MarkAttendance(ctx context.Context, eventID, userID, status string) (domain.Attendance, error) {
	body := map[string]string{
		"user_id": userID,
		"status":  status,
	}

	var marked domain.Attendance
	err := c.do(ctx, http.MethodPost, "/events/"+eventID+"/attendance", nil, body, &marked)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("c.do -> %w", err)
	}

	return marked, nil
}

func (c *Client) MarkBulkAttendance(ctx context.Context, eventID string, userIDs []string, status string) (BulkAttendanceResult, error) {
	body := map[string]any{
		"user_ids": userIDs,
		"status":   status,
	}

	var result BulkAttendanceResult
	err := c.do(ctx, http.MethodPost, "/events/"+eventID+"/attendance/bulk", nil, body, &result)
	if err != nil {
		return BulkAttendanceResult{}, fmt.Errorf("c.do -> %w", err)
	}

	return result, nil
}
