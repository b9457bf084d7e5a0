package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/campus-events/gateway/internal/domain"
)

// MyWhitelistRequest fetches the caller's own organizer-approval request.
// A 404 or an empty data field means "no request exists" and is reported as
// absence, not as an error.
func (c *Client) MyWhitelistRequest(ctx context.Context) (domain.WhitelistRequest, bool, error) {
	var request domain.WhitelistRequest
	err := c.do(ctx, http.MethodGet, "/whitelist/my-request", nil, nil, &request)
	if err != nil {
		if IsNotFound(err) {
			return domain.WhitelistRequest{}, false, nil
		}

		return domain.WhitelistRequest{}, false, fmt.Errorf("c.do -> %w", err)
	}

	if request.ID == "" {
		return domain.WhitelistRequest{}, false, nil
	}

	return request, true, nil
}

func (c *Client) WhitelistRequests(ctx context.Context, status string) ([]domain.WhitelistRequest, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	var requests []domain.WhitelistRequest
	if err := c.do(ctx, http.MethodGet, "/whitelist/requests", query, nil, &requests); err != nil {
		return nil, fmt.Errorf("c.do -> %w", err)
	}

	return requests, nil
}

func (c *Client) ReviewWhitelistRequest(ctx context.Context, requestID string, approved bool, notes string) (domain.WhitelistRequest, error) {
	body := map[string]any{
		"approved": approved,
	}
	if notes != "" {
		body["admin_notes"] = notes
	}

	var reviewed domain.WhitelistRequest
	err := c.do(ctx, http.MethodPatch, "/whitelist/"+requestID+"/review", nil, body, &reviewed)
	if err != nil {
		return domain.WhitelistRequest{}, fmt.Errorf("c.do -> %w", err)
	}

	return reviewed, nil
}

// SubmitWhitelistRequest uploads the organization name and supporting PDF as
// multipart form data.
func (c *Client) SubmitWhitelistRequest(ctx context.Context, organizationName, filename string, document io.Reader) (domain.WhitelistRequest, error) {
	var created domain.WhitelistRequest
	err := c.doMultipart(ctx, http.MethodPost, "/whitelist/request", multipartForm{
		fields: map[string]string{"organization_name": organizationName},
		file:   &multipartFile{field: "document", filename: filename, content: document},
	}, &created)
	if err != nil {
		return domain.WhitelistRequest{}, fmt.Errorf("c.doMultipart -> %w", err)
	}

	return created, nil
}
