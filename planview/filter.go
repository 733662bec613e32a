package planview

import (
	"strings"

	"github.com/digitally-distinct/call-plan-system/models"
)

// Condition selects how a filter clause matches a field value.
type Condition string

const (
	ConditionEquals   Condition = "equals"
	ConditionContains Condition = "contains"
)

// Clause is one filter constraint. A clause with an empty value never
// constrains, regardless of condition.
type Clause struct {
	Condition Condition `json:"condition"`
	Value     string    `json:"value"`
}

// Criteria maps fields to filter clauses. A record matches when every clause
// matches (logical AND). Empty criteria match everything.
type Criteria map[Field]Clause

// MatchesRecord reports whether the record satisfies every clause. All
// comparisons are case-insensitive; an unrecognized condition does not
// constrain.
func MatchesRecord(r *models.CustomerRecord, criteria Criteria) bool {
	for f, clause := range criteria {
		if clause.Value == "" {
			continue
		}
		have := strings.ToLower(RecordValue(r, f))
		want := strings.ToLower(clause.Value)
		switch clause.Condition {
		case ConditionEquals:
			if have != want {
				return false
			}
		case ConditionContains:
			if !strings.Contains(have, want) {
				return false
			}
		}
	}
	return true
}

// FilterRecords returns the records matching the criteria, preserving input
// order. The input slice is never modified.
func FilterRecords(records []*models.CustomerRecord, criteria Criteria) []*models.CustomerRecord {
	out := make([]*models.CustomerRecord, 0, len(records))
	for _, r := range records {
		if MatchesRecord(r, criteria) {
			out = append(out, r)
		}
	}
	return out
}
