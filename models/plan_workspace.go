package models

import (
	"time"
)

// PlanWorkspace is one user's working copy of the call plan. Workspaces are
// re-seeded from mock data at login, mirroring a review session that starts
// from the latest report refresh and lives until the user signs out.
type PlanWorkspace struct {
	UserID  uint              `json:"user_id"`
	Records []*CustomerRecord `json:"records"`

	// Report metadata shown on the review header
	RefreshDate time.Time `json:"refresh_date"`
	SalesForce  string    `json:"sales_force"`
	Cycle       string    `json:"cycle"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindRecord returns the record with the given key, or nil.
func (w *PlanWorkspace) FindRecord(key RecordKey) *CustomerRecord {
	for _, r := range w.Records {
		if r.ID == key.ID && r.Product == key.Product {
			return r
		}
	}
	return nil
}

// HasRecord reports whether a record with the given key exists.
func (w *PlanWorkspace) HasRecord(key RecordKey) bool {
	return w.FindRecord(key) != nil
}
