package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-events/gateway/internal/api/middleware"
	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/service"
	"github.com/campus-events/gateway/internal/upstream"
)

type fakeParticipantAPI struct {
	mu            sync.Mutex
	myEventsCalls int

	// GetUser blocks until release is closed so identity lookups settle
	// only when the test says so.
	release chan struct{}
}

func (f *fakeParticipantAPI) MyEvents(ctx context.Context) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.myEventsCalls++

	return []domain.Event{{ID: "e1", Title: "Tech Talk"}}, nil
}

func (f *fakeParticipantAPI) RawEventRegistrations(ctx context.Context, eventID string) ([]map[string]any, error) {
	return []map[string]any{
		{"id": "r1", "user_id": "u1", "status": "registered"},
	}, nil
}

func (f *fakeParticipantAPI) GetUser(ctx context.Context, userID string) (upstream.UserDetail, error) {
	<-f.release

	return upstream.UserDetail{FullName: "Jane Doe", Email: "jane@campus.edu"}, nil
}

func (f *fakeParticipantAPI) callsToMyEvents() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.myEventsCalls
}

type stubSessionLoader struct {
	session domain.Session
}

func (s *stubSessionLoader) SessionFromCookie(ctx context.Context, cookie, userAgent string) (domain.Session, error) {
	return s.session, nil
}

func newParticipantTestRouter(svc ParticipantService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	loader := &stubSessionLoader{
		session: domain.Session{
			ID:    "sid-1",
			Token: "upstream-token",
			User:  domain.User{ID: "org-1"},
		},
	}

	router := gin.New()
	router.GET("/participants", middleware.LoadSession(loader), NewParticipantHandler(svc).HandleListParticipants)

	return router
}

func getParticipants(t *testing.T, router *gin.Engine, path string) []domain.Participant {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "cookie"})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Success bool                 `json:"success"`
		Data    []domain.Participant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.True(t, body.Success)

	return body.Data
}

func TestParticipantHandler_HandleListParticipants(t *testing.T) {
	t.Run("a later request observes refined identities", func(t *testing.T) {
		api := &fakeParticipantAPI{release: make(chan struct{})}
		svc := service.NewParticipantService(api)
		router := newParticipantTestRouter(svc)

		participants := getParticipants(t, router, "/participants")
		require.Len(t, participants, 1)
		assert.Equal(t, "User (u1)", participants[0].Name)
		assert.Equal(t, "-", participants[0].Email)

		close(api.release)
		list, ok := svc.Cached("org-1")
		require.True(t, ok)
		select {
		case <-list.Enriched():
		case <-time.After(2 * time.Second):
			t.Fatal("identity lookups did not settle")
		}

		participants = getParticipants(t, router, "/participants")
		require.Len(t, participants, 1)
		assert.Equal(t, "Jane Doe", participants[0].Name)
		assert.Equal(t, "jane@campus.edu", participants[0].Email)
		assert.Equal(t, 1, api.callsToMyEvents())
	})

	t.Run("refresh rebuilds the list on demand", func(t *testing.T) {
		release := make(chan struct{})
		close(release)
		api := &fakeParticipantAPI{release: release}
		svc := service.NewParticipantService(api)
		router := newParticipantTestRouter(svc)

		getParticipants(t, router, "/participants")
		getParticipants(t, router, "/participants?refresh=true")

		assert.Equal(t, 2, api.callsToMyEvents())
	})

	t.Run("search filters the cached snapshot", func(t *testing.T) {
		release := make(chan struct{})
		close(release)
		api := &fakeParticipantAPI{release: release}
		svc := service.NewParticipantService(api)
		router := newParticipantTestRouter(svc)

		getParticipants(t, router, "/participants")

		participants := getParticipants(t, router, "/participants?search=tech")
		require.Len(t, participants, 1)
		assert.Equal(t, "Tech Talk", participants[0].EventTitle)

		participants = getParticipants(t, router, "/participants?search=nomatch")
		assert.Empty(t, participants)
	})
}
