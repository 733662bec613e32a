// Package businessflow contains the business logic for the application.
package businessflow

import (
	"errors"
	"time"

	"github.com/digitally-distinct/call-plan-system/app/dto"
	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/repository"
	"github.com/digitally-distinct/call-plan-system/utils"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds all client-related information for audit logging and session tracking
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToUserDTO converts a user model to UserDTO for auth responses
func ToUserDTO(user models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// ToSessionDTO converts a session model to SessionDTO for auth responses
func ToSessionDTO(session models.UserSession) dto.SessionDTO {
	return dto.SessionDTO{
		SessionToken: session.SessionToken,
		RefreshToken: session.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(time.Until(session.ExpiresAt).Seconds()),
		ExpiresAt:    session.ExpiresAt,
	}
}

// ViewForUser resolves the client view an authenticated user lands on: reps
// review their own plan, managers get the territory rollup. Pending and
// denied accounts never reach this; their status decides the view first.
func ViewForUser(user *models.User) string {
	if user.IsRep() {
		return dto.ViewDashboard
	}
	return dto.ViewTerritory
}

// auditEntry builds a log row from the common attempt attributes
func auditEntry(userID *uint, action, description string, success bool, errorMessage *string, metadata *ClientMetadata) *models.AuditLog {
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		Description:  &description,
		Success:      utils.ToPtr(success),
		ErrorMessage: errorMessage,
		CreatedAt:    utils.UTCNow(),
	}
	if metadata != nil {
		if metadata.IPAddress != "" {
			entry.IPAddress = utils.ToPtr(metadata.IPAddress)
		}
		if metadata.UserAgent != "" {
			entry.UserAgent = utils.ToPtr(metadata.UserAgent)
		}
		if metadata.RequestID != "" {
			entry.RequestID = utils.ToPtr(metadata.RequestID)
		}
	}
	return entry
}

// workspaceErr converts the repository's missing-workspace sentinel into the
// business-level error handlers know how to map.
func workspaceErr(err error) error {
	if errors.Is(err, repository.ErrWorkspaceNotFound) {
		return ErrWorkspaceNotFound
	}
	return err
}
