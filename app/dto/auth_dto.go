// Package dto contains Data Transfer Objects for API request and response structures
package dto

import (
	"time"
)

// Views the client routes to after authentication, based on role and status
const (
	ViewDashboard = "dashboard"
	ViewTerritory = "territory"
	ViewPending   = "pending"
	ViewDenied    = "denied"
)

// SignupRequest represents the request payload for account registration
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50,alphanum" example:"newrep"`
	Password string `json:"password" validate:"required,min=8,max=100" example:"SecurePass123!"`
	Role     string `json:"role" validate:"required,oneof=rep dm rm" example:"rep"`
	District string `json:"district,omitempty" validate:"omitempty,max=100" example:"District 3"`
	Region   string `json:"region,omitempty" validate:"omitempty,max=100" example:"North"`
}

// SignupResponse represents the response after successful registration. New
// accounts always start pending review.
type SignupResponse struct {
	User UserDTO `json:"user"`
	View string  `json:"view" example:"pending"`
}

// UserDTO represents account information returned in auth responses
type UserDTO struct {
	ID        uint   `json:"id" example:"5"`
	Username  string `json:"username" example:"rep"`
	Role      string `json:"role" example:"rep"`
	Status    string `json:"status" example:"approved"`
	CreatedAt string `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50" example:"rep"`
	Password string `json:"password" validate:"required,min=1,max=100" example:"password"`
}

// SessionDTO represents the issued session tokens
type SessionDTO struct {
	SessionToken string    `json:"session_token"`
	RefreshToken *string   `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type" example:"Bearer"`
	ExpiresIn    int       `json:"expires_in" example:"86400"`
	ExpiresAt    time.Time `json:"expires_at" example:"2024-01-16T10:30:00Z"`
}

// LoginResponse represents the login outcome. Pending and denied accounts get
// their routing view with no session attached.
type LoginResponse struct {
	User    *UserDTO    `json:"user,omitempty"`
	Session *SessionDTO `json:"session,omitempty"`
	View    string      `json:"view" example:"dashboard"`
}

// LogoutResponse represents the response after ending a session
type LogoutResponse struct {
	LoggedOutAt time.Time `json:"logged_out_at" example:"2024-01-15T16:30:00Z"`
}
