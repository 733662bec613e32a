// Package repository provides in-memory data access implementations and the
// interfaces the business flows depend on. The whole dataset is mock state
// seeded at startup; there is no external database behind these stores.
package repository

import (
	"context"
	"time"

	"github.com/digitally-distinct/call-plan-system/models"
)

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// UserRepository defines operations for user accounts
type UserRepository interface {
	Repository[models.User, models.UserFilter]
	ByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error
}

// UserSessionRepository defines operations for user sessions
type UserSessionRepository interface {
	Repository[models.UserSession, models.UserSessionFilter]
	BySessionToken(ctx context.Context, token string) (*models.UserSession, error)
	InvalidateActiveSessions(ctx context.Context, userID uint) error
}

// AuditLogRepository defines operations for audit logs
type AuditLogRepository interface {
	Repository[models.AuditLog, models.AuditLogFilter]
	ByUserID(ctx context.Context, userID uint) ([]*models.AuditLog, error)
}

// ReferenceRepository serves the read-only master customer list
type ReferenceRepository interface {
	All(ctx context.Context) ([]*models.ReferenceRecord, error)
	Search(ctx context.Context, term string) ([]*models.ReferenceRecord, error)
	ByKey(ctx context.Context, key models.RecordKey) (*models.ReferenceRecord, error)
}

// WorkspaceRepository holds each user's working copy of the call plan.
// Mutations go through Apply so the workspace is only ever touched under the
// store's lock; reads get detached snapshots.
type WorkspaceRepository interface {
	Reset(ctx context.Context, userID uint) (*models.PlanWorkspace, error)
	ByUserID(ctx context.Context, userID uint) (*models.PlanWorkspace, error)
	Apply(ctx context.Context, userID uint, fn func(*models.PlanWorkspace) error) error
}
