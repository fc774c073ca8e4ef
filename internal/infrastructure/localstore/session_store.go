package localstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// SessionStore persists terminal auth tokens across restarts.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Save stores the token for a session kind, replacing any existing one.
func (s *SessionStore) Save(ctx context.Context, kind, token string) error {
	session := entity.TerminalSession{Kind: kind, Token: token}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
		}).
		Create(&session).Error
}

// Load returns the stored token for a kind, or "" when none exists.
func (s *SessionStore) Load(ctx context.Context, kind string) (string, error) {
	var session entity.TerminalSession
	err := s.db.WithContext(ctx).Where("kind = ?", kind).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

// Delete removes the stored token for a kind. Deleting a missing kind is
// not an error.
func (s *SessionStore) Delete(ctx context.Context, kind string) error {
	return s.db.WithContext(ctx).
		Where("kind = ?", kind).
		Delete(&entity.TerminalSession{}).Error
}
