package planview

import (
	"sort"

	"github.com/digitally-distinct/call-plan-system/models"
)

// Direction orders a sort ascending or descending.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortConfig names the column and direction of a table sort. A zero Key
// means unsorted: the collection keeps its current order.
type SortConfig struct {
	Key       Field     `json:"key"`
	Direction Direction `json:"direction"`
}

// SortRecords returns a sorted copy of records. The sort is stable, so rows
// comparing equal on the key keep their relative order, and descending is the
// exact inversion of ascending.
func SortRecords(records []*models.CustomerRecord, cfg SortConfig) []*models.CustomerRecord {
	out := append([]*models.CustomerRecord(nil), records...)
	if cfg.Key == FieldNone {
		return out
	}
	cmp := NewComparer()
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp.CompareRecords(out[i], out[j], cfg.Key)
		if cfg.Direction == Descending {
			c = -c
		}
		return c < 0
	})
	return out
}

// SortSummary returns a sorted copy of summary rows, with the same semantics
// as SortRecords.
func SortSummary(rows []*SummaryRow, cfg SortConfig) []*SummaryRow {
	out := append([]*SummaryRow(nil), rows...)
	if cfg.Key == FieldNone {
		return out
	}
	cmp := NewComparer()
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp.CompareSummary(out[i], out[j], cfg.Key)
		if cfg.Direction == Descending {
			c = -c
		}
		return c < 0
	})
	return out
}
