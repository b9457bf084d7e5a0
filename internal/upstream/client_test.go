package upstream

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Message(t *testing.T) {
	t.Run("the body message wins", func(t *testing.T) {
		err := &APIError{StatusCode: http.StatusBadRequest, Msg: "title is required"}
		assert.Equal(t, "title is required", err.Message())
	})

	t.Run("known statuses fall back to fixed messages", func(t *testing.T) {
		cases := map[int]string{
			http.StatusBadRequest:          "The request was invalid. Check the submitted data.",
			http.StatusUnauthorized:        "Your session has expired. Please log in again.",
			http.StatusForbidden:           "You do not have access to perform this action.",
			http.StatusNotFound:            "The requested data could not be found.",
			http.StatusConflict:            "The data already exists or conflicts with existing data.",
			http.StatusUnprocessableEntity: "The submitted data is invalid.",
			http.StatusInternalServerError: "Something went wrong on the server. Please try again later.",
			http.StatusServiceUnavailable:  "The server is under maintenance. Please try again later.",
		}

		for status, want := range cases {
			err := &APIError{StatusCode: status}
			assert.Equal(t, want, err.Message())
		}
	})

	t.Run("unknown statuses get a generic message", func(t *testing.T) {
		err := &APIError{StatusCode: http.StatusTeapot}
		assert.Equal(t, "The request failed with status 418.", err.Message())
	})
}

func TestErrorMessage(t *testing.T) {
	t.Run("api errors surface their message", func(t *testing.T) {
		err := &APIError{StatusCode: http.StatusNotFound}
		assert.Equal(t, "The requested data could not be found.", ErrorMessage(err))
	})

	t.Run("wrapped api errors are still found", func(t *testing.T) {
		inner := &APIError{StatusCode: http.StatusForbidden}
		err := errors.Join(errors.New("c.do"), inner)
		assert.Equal(t, "You do not have access to perform this action.", ErrorMessage(err))
	})

	t.Run("transport errors read as unreachable", func(t *testing.T) {
		assert.Equal(t, "Cannot reach the server. Check your connection.", ErrorMessage(errors.New("dial tcp: refused")))
	})
}

func TestDecodeBody(t *testing.T) {
	type payload struct {
		ID string `json:"id"`
	}

	t.Run("enveloped payload", func(t *testing.T) {
		var out payload
		require.NoError(t, decodeBody([]byte(`{"success":true,"data":{"id":"e1"}}`), &out))
		assert.Equal(t, "e1", out.ID)
	})

	t.Run("bare payload", func(t *testing.T) {
		var out payload
		require.NoError(t, decodeBody([]byte(`{"id":"e1"}`), &out))
		assert.Equal(t, "e1", out.ID)
	})

	t.Run("null data falls through to the bare shape", func(t *testing.T) {
		var out payload
		require.NoError(t, decodeBody([]byte(`{"success":true,"data":null,"id":"e2"}`), &out))
		assert.Equal(t, "e2", out.ID)
	})

	t.Run("garbage errors out", func(t *testing.T) {
		var out payload
		assert.Error(t, decodeBody([]byte(`not json`), &out))
	})
}

func TestNewAPIError(t *testing.T) {
	t.Run("message field", func(t *testing.T) {
		err := newAPIError(http.StatusConflict, []byte(`{"message":"already registered"}`))
		assert.Equal(t, "already registered", err.Msg)
	})

	t.Run("error field as fallback", func(t *testing.T) {
		err := newAPIError(http.StatusBadRequest, []byte(`{"error":"bad input"}`))
		assert.Equal(t, "bad input", err.Msg)
	})

	t.Run("unparseable body keeps the status fallback", func(t *testing.T) {
		err := newAPIError(http.StatusInternalServerError, []byte(`<html>oops</html>`))
		assert.Empty(t, err.Msg)
		assert.Equal(t, "Something went wrong on the server. Please try again later.", err.Message())
	})
}

func TestClient_StatusHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no such event"}`))
	})
	client := newTestClient(t, handler, nil)

	_, err := client.Event(context.Background(), "missing")
	require.Error(t, err)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthenticated(err))
	assert.False(t, IsForbidden(err))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Equal(t, "no such event", ErrorMessage(err))
}
