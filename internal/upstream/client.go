// Package upstream is the typed client for the campus event REST backend.
// Every response is expected in the `{ success, message, data }` envelope,
// but callers tolerate bare payloads and further-wrapped lists where the
// backend is known to vary.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/campus-events/gateway/internal/config"
)

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(conf *config.UpstreamConfig, onUnauthorized TeardownFunc) *Client {
	return &Client{
		baseURL:   conf.BaseURL,
		userAgent: conf.UserAgent,
		httpClient: &http.Client{
			Transport: &authTransport{
				base:           http.DefaultTransport,
				onUnauthorized: onUnauthorized,
			},
		},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a non-2xx upstream response.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message())
}

// Message prefers the body's own message and falls back to a fixed
// human-readable string keyed by status code.
func (e *APIError) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	if msg, ok := statusMessages[e.StatusCode]; ok {
		return msg
	}

	return fmt.Sprintf("The request failed with status %d.", e.StatusCode)
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "The request was invalid. Check the submitted data.",
	http.StatusUnauthorized:        "Your session has expired. Please log in again.",
	http.StatusForbidden:           "You do not have access to perform this action.",
	http.StatusNotFound:            "The requested data could not be found.",
	http.StatusConflict:            "The data already exists or conflicts with existing data.",
	http.StatusUnprocessableEntity: "The submitted data is invalid.",
	http.StatusInternalServerError: "Something went wrong on the server. Please try again later.",
	http.StatusServiceUnavailable:  "The server is under maintenance. Please try again later.",
}

// ErrorMessage extracts the user-facing message from any upstream failure,
// including transport-level errors where no response was received.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}

	return "Cannot reach the server. Check your connection."
}

func IsUnauthenticated(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	return decodeBody(raw, out)
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal -> %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), reqBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll -> %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	return raw, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

func newAPIError(status int, raw []byte) *APIError {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}

	return &APIError{
		StatusCode: status,
		Msg:        msg,
	}
}

// decodeBody unwraps the standard envelope when present and otherwise
// decodes the payload directly.
func decodeBody(raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err = json.Unmarshal(env.Data, out); err == nil {
			return nil
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode upstream response -> %w", err)
	}

	return nil
}
