package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a signed-in admin session kept in Redis under its token id.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
