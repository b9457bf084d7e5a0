package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campus-events/gateway/internal/domain"
	"github.com/campus-events/gateway/internal/repository/dao"
)

var ErrSessionNotFound = dao.ErrSessionNotFound

type SessionDAO interface {
	Insert(ctx context.Context, session dao.Session) (dao.Session, error)
	Update(ctx context.Context, session dao.Session) (dao.Session, error)
	Find(ctx context.Context, sid string) (dao.Session, error)
	Delete(ctx context.Context, sid string) error
}

type SessionRepository struct {
	dao SessionDAO
}

func NewSessionRepository(dao SessionDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

// Save persists token and user as one row, replacing any previous session
// stored under the same ID. Callers never observe a token without its user.
func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	row := dao.Session{
		SID:       session.ID,
		Token:     session.Token,
		UserJSON:  userJSON,
		ExpiresAt: session.ExpiresAt,
	}

	_, err = r.dao.Insert(ctx, row)
	if err == nil {
		return nil
	}
	if err != dao.ErrSessionExists {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	if _, err = r.dao.Update(ctx, row); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

// Find loads a session by ID. A corrupt stored user record degrades to the
// zero user instead of surfacing a decode error; an expired row reads as
// not found.
func (r *SessionRepository) Find(ctx context.Context, sid string) (domain.Session, error) {
	row, err := r.dao.Find(ctx, sid)
	if err != nil {
		if err == dao.ErrSessionNotFound {
			return domain.Session{}, ErrSessionNotFound
		}

		return domain.Session{}, fmt.Errorf("r.dao.Find -> %w", err)
	}

	if !row.ExpiresAt.IsZero() && time.Now().After(row.ExpiresAt) {
		return domain.Session{}, ErrSessionNotFound
	}

	var user domain.User
	if len(row.UserJSON) > 0 {
		if err = json.Unmarshal(row.UserJSON, &user); err != nil {
			zap.L().Warn("stored session user is malformed, ignoring",
				zap.String("sid", sid),
				zap.Error(err))
			user = domain.User{}
		}
	}

	return domain.Session{
		ID:        row.SID,
		Token:     row.Token,
		User:      user,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

// Delete tears the session down unconditionally; deleting an absent or
// already-deleted session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	if err := r.dao.Delete(ctx, sid); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
