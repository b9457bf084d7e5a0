package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// SendEventReminder triggers a manual reminder to an event's registrants.
func (c *Client) SendEventReminder(ctx context.Context, eventID, message string) error {
	body := map[string]string{}
	if message != "" {
		body["message"] = message
	}

	if err := c.do(ctx, http.MethodPost, "/events/"+eventID+"/reminders", nil, body, nil); err != nil {
		return fmt.Errorf("c.do -> %w", err)
	}

	return nil
}

func (c *Client) SetAutoReminder(ctx context.Context, reminderID string, active bool) error {
	body := map[string]bool{"active": active}

	if err := c.do(ctx, http.MethodPut, "/reminders/auto/"+reminderID, nil, body, nil); err != nil {
		return fmt.Errorf("c.do -> %w", err)
	}

	return nil
}
