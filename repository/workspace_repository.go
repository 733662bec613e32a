package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// ErrWorkspaceNotFound is returned when a user has no seeded workspace yet.
// Workspaces only exist between a login (which resets them) and server
// shutdown.
var ErrWorkspaceNotFound = fmt.Errorf("workspace not found")

// WorkspaceRepositoryImpl implements WorkspaceRepository interface
type WorkspaceRepositoryImpl struct {
	mu         sync.RWMutex
	workspaces map[uint]*models.PlanWorkspace
	seed       func() []*models.CustomerRecord
}

// NewWorkspaceRepository creates a workspace repository that seeds fresh
// workspaces from the given generator.
func NewWorkspaceRepository(seed func() []*models.CustomerRecord) WorkspaceRepository {
	return &WorkspaceRepositoryImpl{
		workspaces: make(map[uint]*models.PlanWorkspace),
		seed:       seed,
	}
}

// Reset discards the user's workspace and seeds a fresh one.
func (r *WorkspaceRepositoryImpl) Reset(ctx context.Context, userID uint) (*models.PlanWorkspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := utils.UTCNow()
	ws := &models.PlanWorkspace{
		UserID:      userID,
		Records:     r.seed(),
		RefreshDate: SeedRefreshDate,
		SalesForce:  SeedSalesForce,
		Cycle:       SeedCycle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.workspaces[userID] = ws
	return cloneWorkspace(ws), nil
}

// ByUserID returns a detached snapshot of the user's workspace.
func (r *WorkspaceRepositoryImpl) ByUserID(ctx context.Context, userID uint) (*models.PlanWorkspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, ok := r.workspaces[userID]
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	return cloneWorkspace(ws), nil
}

// Apply runs fn against the live workspace under the store lock. When fn
// returns an error the workspace keeps whatever state fn left behind; flows
// are expected to mutate only after their checks pass.
func (r *WorkspaceRepositoryImpl) Apply(ctx context.Context, userID uint, fn func(*models.PlanWorkspace) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[userID]
	if !ok {
		return ErrWorkspaceNotFound
	}
	if err := fn(ws); err != nil {
		return err
	}
	ws.UpdatedAt = utils.UTCNow()
	return nil
}

func cloneWorkspace(ws *models.PlanWorkspace) *models.PlanWorkspace {
	c := *ws
	c.Records = make([]*models.CustomerRecord, len(ws.Records))
	for i, rec := range ws.Records {
		c.Records[i] = rec.Clone()
	}
	return &c
}
