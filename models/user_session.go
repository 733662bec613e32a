package models

import (
	"time"

	"github.com/google/uuid"
)

type UserSession struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	CorrelationID uuid.UUID `json:"correlation_id"`
	SessionToken  string    `json:"session_token"`
	RefreshToken  *string   `json:"refresh_token,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
	IsActive  *bool     `json:"is_active"`

	IPAddress *string `json:"ip_address,omitempty"`
	UserAgent *string `json:"user_agent,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// UserSessionFilter represents filter criteria for session queries
type UserSessionFilter struct {
	ID            *uint
	UserID        *uint
	CorrelationID *uuid.UUID
	SessionToken  *string
	IsActive      *bool
}

func (s *UserSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
