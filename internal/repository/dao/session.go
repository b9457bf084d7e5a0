package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrSessionExists   = errors.New("session already exists")
	ErrSessionNotFound = errors.New("session not found")
)

type Session struct {
	SID string `gorm:"primaryKey;column:sid"`

	Token    string `gorm:"not null"`
	UserJSON []byte `gorm:"column:user_json"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

type SessionDAO struct {
	db *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{
		db: db,
	}
}

func (d *SessionDAO) Insert(ctx context.Context, session Session) (Session, error) {
	result := d.db.WithContext(ctx).Create(&session)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Session{}, ErrSessionExists
		}

		return Session{}, result.Error
	}

	return session, nil
}

func (d *SessionDAO) Update(ctx context.Context, session Session) (Session, error) {
	result := d.db.WithContext(ctx).
		Model(&Session{SID: session.SID}).
		Updates(map[string]any{
			"token":      session.Token,
			"user_json":  session.UserJSON,
			"expires_at": session.ExpiresAt,
		})
	if result.Error != nil {
		return Session{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (d *SessionDAO) Find(ctx context.Context, sid string) (Session, error) {
	var session Session

	result := d.db.WithContext(ctx).First(&session, "sid = ?", sid)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, result.Error
	}

	return session, nil
}

// Delete is a no-op when the row is already gone, so concurrent teardowns
// of the same session cannot fail each other.
func (d *SessionDAO) Delete(ctx context.Context, sid string) error {
	result := d.db.WithContext(ctx).Delete(&Session{}, "sid = ?", sid)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
