package planview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/digitally-distinct/call-plan-system/models"
)

func filterFixture() []*models.CustomerRecord {
	return []*models.CustomerRecord{
		{ID: "Customer ID1", Name: "Mercy General Hospital", Territory: "Territory 1", Product: "Product 1", Status: models.RecordStatusUnchanged},
		{ID: "Customer ID2", Name: "Lakeside Family Practice", Territory: "Territory 1", Product: "Product 2", Status: models.RecordStatusUpdated},
		{ID: "Customer ID3", Name: "Mercy West Clinic", Territory: "Territory 2", Product: "Product 1", Status: models.RecordStatusDeleted},
	}
}

func TestMatchesRecord(t *testing.T) {
	rec := filterFixture()[0]

	t.Run("empty criteria match everything", func(t *testing.T) {
		assert.True(t, MatchesRecord(rec, nil))
		assert.True(t, MatchesRecord(rec, Criteria{}))
	})

	t.Run("equals is case-insensitive", func(t *testing.T) {
		assert.True(t, MatchesRecord(rec, Criteria{
			FieldTerritory: {Condition: ConditionEquals, Value: "TERRITORY 1"},
		}))
		assert.False(t, MatchesRecord(rec, Criteria{
			FieldTerritory: {Condition: ConditionEquals, Value: "Territory 2"},
		}))
	})

	t.Run("contains matches substrings case-insensitively", func(t *testing.T) {
		assert.True(t, MatchesRecord(rec, Criteria{
			FieldName: {Condition: ConditionContains, Value: "mercy"},
		}))
		assert.False(t, MatchesRecord(rec, Criteria{
			FieldName: {Condition: ConditionContains, Value: "lakeside"},
		}))
	})

	t.Run("empty clause value never constrains", func(t *testing.T) {
		assert.True(t, MatchesRecord(rec, Criteria{
			FieldName: {Condition: ConditionEquals, Value: ""},
		}))
	})

	t.Run("clauses combine with AND", func(t *testing.T) {
		assert.True(t, MatchesRecord(rec, Criteria{
			FieldTerritory: {Condition: ConditionEquals, Value: "territory 1"},
			FieldName:      {Condition: ConditionContains, Value: "general"},
		}))
		assert.False(t, MatchesRecord(rec, Criteria{
			FieldTerritory: {Condition: ConditionEquals, Value: "territory 1"},
			FieldName:      {Condition: ConditionContains, Value: "clinic"},
		}))
	})

	t.Run("unknown condition does not constrain", func(t *testing.T) {
		assert.True(t, MatchesRecord(rec, Criteria{
			FieldName: {Condition: Condition("regex"), Value: "zzz"},
		}))
	})

	t.Run("unknown field matches only empty values", func(t *testing.T) {
		assert.False(t, MatchesRecord(rec, Criteria{
			Field("bogus"): {Condition: ConditionContains, Value: "x"},
		}))
	})
}

func TestFilterRecords(t *testing.T) {
	records := filterFixture()

	t.Run("preserves input order", func(t *testing.T) {
		got := FilterRecords(records, Criteria{
			FieldProduct: {Condition: ConditionEquals, Value: "product 1"},
		})
		assert.Len(t, got, 2)
		assert.Equal(t, "Customer ID1", got[0].ID)
		assert.Equal(t, "Customer ID3", got[1].ID)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got := FilterRecords(records, Criteria{
			FieldTerritory: {Condition: ConditionEquals, Value: "Territory 9"},
		})
		assert.Empty(t, got)
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := append([]*models.CustomerRecord(nil), records...)
		FilterRecords(records, Criteria{
			FieldStatus: {Condition: ConditionEquals, Value: "deleted"},
		})
		assert.Equal(t, before, records)
	})
}
