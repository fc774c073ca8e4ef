package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session kinds stored by the terminal. The employee session authorizes
// backend calls; the report session gates the counter report screen.
const (
	SessionKindEmployee = "employee"
	SessionKindReport   = "report"
)

// TerminalSession is a persisted auth token on this terminal. One row per
// kind at most.
type TerminalSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Kind      string    `gorm:"size:20;not null;uniqueIndex" json:"kind"`
	Token     string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before persisting a new session
func (s *TerminalSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TerminalSession model
func (TerminalSession) TableName() string {
	return "terminal_sessions"
}
