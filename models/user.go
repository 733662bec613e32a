// Package models contains domain entities and business models for the call plan system
package models

import (
	"time"
)

// User roles
const (
	RoleSalesRep        = "rep"
	RoleDistrictManager = "dm"
	RoleRegionalManager = "rm"
)

// User account statuses
const (
	UserStatusApproved = "approved"
	UserStatusPending  = "pending"
	UserStatusDenied   = "denied"
)

type User struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         string `json:"role"`
	Status       string `json:"status"`
	District     string `json:"district,omitempty"`
	Region       string `json:"region,omitempty"`

	// Timestamps
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// UserFilter represents filter criteria for user directory queries
type UserFilter struct {
	ID       *uint
	Username *string
	Role     *string
	Status   *string
}

func (u *User) IsRep() bool {
	return u.Role == RoleSalesRep
}

func (u *User) IsManager() bool {
	return u.Role == RoleDistrictManager || u.Role == RoleRegionalManager
}

func (u *User) IsApproved() bool {
	return u.Status == UserStatusApproved
}
