package models

import (
	"time"
)

// Audit actions
const (
	AuditActionSignupCompleted = "signup_completed"
	AuditActionSignupFailed    = "signup_failed"
	AuditActionLoginSuccess    = "login_success"
	AuditActionLoginFailed     = "login_failed"
	AuditActionLogoutSuccess   = "logout_success"
	AuditActionRecordAdded     = "plan_record_added"
	AuditActionRecordUpdated   = "plan_record_updated"
	AuditActionRecordToggled   = "plan_record_delete_toggled"
	AuditActionPlanSubmitted   = "plan_submitted"
	AuditActionPlanExported    = "plan_exported"
)

type AuditLog struct {
	ID     uint  `json:"id"`
	UserID *uint `json:"user_id,omitempty"`

	Action      string  `json:"action"`
	Description *string `json:"description,omitempty"`
	Success     *bool   `json:"success"`

	IPAddress    *string `json:"ip_address,omitempty"`
	UserAgent    *string `json:"user_agent,omitempty"`
	RequestID    *string `json:"request_id,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AuditLogFilter represents filter criteria for audit log queries
type AuditLogFilter struct {
	ID      *uint
	UserID  *uint
	Action  *string
	Success *bool
}
