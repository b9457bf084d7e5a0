package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/upstream"
)

const (
	placeholderName      = "Unnamed"
	placeholderEmail     = "-"
	placeholderTitle     = "Untitled"
	placeholderOrganizer = "Organizer"
)

type ParticipantAPI interface {
	MyEvents(ctx context.Context) ([]domain.Event, error)
	RawEventRegistrations(ctx context.Context, eventID string) ([]map[string]any, error)
	GetUser(ctx context.Context, userID string) (upstream.UserDetail, error)
}

// ParticipantList is a live collection: it is complete (possibly with
// placeholder identities) as soon as it is returned, and enrichment
// lookups refine entries in place afterwards.
type ParticipantList struct {
	mu       sync.RWMutex
	items    []domain.Participant
	enriched chan struct{}
}

func newParticipantList(items []domain.Participant) *ParticipantList {
	return &ParticipantList{
		items:    items,
		enriched: make(chan struct{}),
	}
}

func (l *ParticipantList) Snapshot() []domain.Participant {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Participant, len(l.items))
	copy(out, l.items)

	return out
}

// Enriched is closed once every pending identity lookup has settled.
// Nothing in the gateway blocks on it; it exists for observers.
func (l *ParticipantList) Enriched() <-chan struct{} {
	return l.enriched
}

func (l *ParticipantList) setIdentity(registrationID, name, email string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].RegistrationID != registrationID {
			continue
		}
		if name != "" {
			l.items[i].Name = name
		}
		if email != "" {
			l.items[i].Email = email
		}
	}
}

// ParticipantService builds the organizer-facing participant list out of
// every registration across the organizer's events.
type ParticipantService struct {
	api ParticipantAPI

	mu    sync.Mutex
	lists map[string]*ParticipantList
}

func NewParticipantService(api ParticipantAPI) *ParticipantService {
	return &ParticipantService{
		api:   api,
		lists: make(map[string]*ParticipantList),
	}
}

// ListAllParticipants fans out one registrants fetch per event and joins the
// results. A failing event contributes zero participants without affecting
// its siblings; only a failure of the initial event-list fetch fails the
// aggregation. Identity enrichment continues in the background after the
// list is returned.
func (s *ParticipantService) ListAllParticipants(ctx context.Context, session *domain.Session) (*ParticipantList, error) {
	events, err := s.api.MyEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.MyEvents -> %w", err)
	}

	valid := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if strings.TrimSpace(ev.ID) == "" {
			zap.L().Warn("skipping event without an id", zap.String("title", ev.Title))
			continue
		}
		valid = append(valid, ev)
	}

	results := make([][]map[string]any, len(valid))
	var wg sync.WaitGroup
	for i, ev := range valid {
		wg.Add(1)
		go func(i int, eventID string) {
			defer wg.Done()

			records, err := s.api.RawEventRegistrations(ctx, eventID)
			if err != nil {
				zap.L().Warn("failed to fetch registrations, skipping event",
					zap.String("event_id", eventID),
					zap.Error(err))
				return
			}
			results[i] = records
		}(i, ev.ID)
	}
	wg.Wait()

	var items []domain.Participant
	pending := make(map[string]string) // registration ID -> user ID
	for i, records := range results {
		for _, record := range records {
			participant, enrichUserID := buildParticipant(record, valid[i])
			items = append(items, participant)
			if enrichUserID != "" {
				pending[participant.RegistrationID] = enrichUserID
			}
		}
	}

	list := newParticipantList(items)

	s.mu.Lock()
	s.lists[session.User.ID] = list
	s.mu.Unlock()

	go s.enrich(context.WithoutCancel(ctx), list, pending)

	return list, nil
}

// Cached returns the last list built for the user, still live under
// enrichment.
func (s *ParticipantService) Cached(userID string) (*ParticipantList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[userID]

	return list, ok
}

func (s *ParticipantService) enrich(ctx context.Context, list *ParticipantList, pending map[string]string) {
	defer close(list.enriched)

	var wg sync.WaitGroup
	for registrationID, userID := range pending {
		wg.Add(1)
		go func(registrationID, userID string) {
			defer wg.Done()

			user, err := s.api.GetUser(ctx, userID)
			if err != nil {
				zap.L().Debug("identity lookup failed, keeping placeholder",
					zap.String("user_id", userID),
					zap.Error(err))
				return
			}

			list.setIdentity(registrationID, user.FullName, user.Email)
		}(registrationID, userID)
	}
	wg.Wait()
}

// Registration payloads are not uniform: identity may sit on the record
// itself, on a nested user-ish object, or nowhere at all. Probe an ordered
// list of candidates and fall back to placeholders.
var (
	nameCandidates       = []string{"participant_name", "user_full_name", "user_name", "full_name"}
	nestedNameCandidates = []string{"full_name", "name"}

	emailCandidates       = []string{"participant_email", "user_email", "email"}
	nestedEmailCandidates = []string{"email", "user_email"}

	userObjectKeys = []string{"user", "participant", "student"}

	confirmedTokens = map[string]struct{}{
		"confirmed":  {},
		"approved":   {},
		"registered": {},
	}
)

func buildParticipant(record map[string]any, event domain.Event) (domain.Participant, string) {
	userObj := nestedMap(record, userObjectKeys...)

	name := firstString(record, nameCandidates...)
	if name == "" {
		name = firstString(userObj, nestedNameCandidates...)
	}

	email := firstString(record, emailCandidates...)
	if email == "" {
		email = firstString(userObj, nestedEmailCandidates...)
	}

	registrationID := stringValue(record["id"])
	userID := stringValue(record["user_id"])

	enrichUserID := ""
	if name == "" {
		if userID != "" {
			name = fmt.Sprintf("User (%s)", userID)
			enrichUserID = userID
		} else {
			name = placeholderName
		}
	}
	if email == "" {
		email = placeholderEmail
	}

	eventObj := nestedMap(record, "event")
	title := firstString(eventObj, "title")
	if title == "" {
		title = firstString(record, "event_title")
	}
	if title == "" {
		title = event.Title
	}
	if title == "" {
		title = placeholderTitle
	}

	organizer := firstString(eventObj, "organizer_name", "organizer")
	if organizer == "" {
		organizer = firstString(record, "event_organizer")
	}
	if organizer == "" {
		organizer = event.OrganizerName
	}
	if organizer == "" {
		organizer = event.OrganizationName
	}
	if organizer == "" {
		organizer = placeholderOrganizer
	}

	status := domain.ParticipantPending
	if _, ok := confirmedTokens[strings.ToLower(stringValue(record["status"]))]; ok {
		status = domain.ParticipantConfirmed
	}

	return domain.Participant{
		RegistrationID: registrationID,
		Name:           name,
		Email:          email,
		EventTitle:     title,
		EventOrganizer: organizer,
		Status:         status,
	}, enrichUserID
}

func nestedMap(record map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		if m, ok := record[key].(map[string]any); ok {
			return m
		}
	}

	return nil
}

func firstString(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := record[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}

	return ""
}

func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	return ""
}
