package repository

import (
	"context"

	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// AuditLogRepositoryImpl implements AuditLogRepository interface
type AuditLogRepositoryImpl struct {
	*BaseRepository[models.AuditLog, models.AuditLogFilter]
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository() AuditLogRepository {
	return &AuditLogRepositoryImpl{
		BaseRepository: NewBaseRepository(
			func(l *models.AuditLog) uint { return l.ID },
			func(l *models.AuditLog, id uint) { l.ID = id },
			auditLogMatches,
		),
	}
}

func auditLogMatches(l *models.AuditLog, f models.AuditLogFilter) bool {
	if f.ID != nil && l.ID != *f.ID {
		return false
	}
	if f.UserID != nil && (l.UserID == nil || *l.UserID != *f.UserID) {
		return false
	}
	if f.Action != nil && l.Action != *f.Action {
		return false
	}
	if f.Success != nil && utils.IsTrue(l.Success) != *f.Success {
		return false
	}
	return true
}

// ByUserID retrieves all audit entries recorded for a user
func (r *AuditLogRepositoryImpl) ByUserID(ctx context.Context, userID uint) ([]*models.AuditLog, error) {
	return r.ByFilter(ctx, models.AuditLogFilter{UserID: utils.ToPtr(userID)}, 0, 0)
}
