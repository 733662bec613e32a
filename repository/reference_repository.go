package repository

import (
	"context"
	"strings"

	"github.com/digitally-distinct/call-plan-system/models"
)

// ReferenceRepositoryImpl implements ReferenceRepository interface. The
// reference list is immutable after construction, so reads take no lock.
type ReferenceRepositoryImpl struct {
	records []*models.ReferenceRecord
}

// NewReferenceRepository creates a reference repository over the given rows
func NewReferenceRepository(records []*models.ReferenceRecord) ReferenceRepository {
	return &ReferenceRepositoryImpl{records: records}
}

// All returns every reference row in seed order
func (r *ReferenceRepositoryImpl) All(ctx context.Context) ([]*models.ReferenceRecord, error) {
	out := make([]*models.ReferenceRecord, len(r.records))
	for i, rec := range r.records {
		c := *rec
		out[i] = &c
	}
	return out, nil
}

// Search returns rows whose customer ID or name contains the term,
// case-insensitively. An empty term returns everything.
func (r *ReferenceRepositoryImpl) Search(ctx context.Context, term string) ([]*models.ReferenceRecord, error) {
	if term == "" {
		return r.All(ctx)
	}

	needle := strings.ToLower(term)
	var out []*models.ReferenceRecord
	for _, rec := range r.records {
		if strings.Contains(strings.ToLower(rec.CustomerID), needle) ||
			strings.Contains(strings.ToLower(rec.CustomerName), needle) {
			c := *rec
			out = append(out, &c)
		}
	}
	return out, nil
}

// ByKey retrieves the reference row for a customer/product combination, or nil
func (r *ReferenceRepositoryImpl) ByKey(ctx context.Context, key models.RecordKey) (*models.ReferenceRecord, error) {
	for _, rec := range r.records {
		if rec.CustomerID == key.ID && rec.Product == key.Product {
			c := *rec
			return &c, nil
		}
	}
	return nil, nil
}
