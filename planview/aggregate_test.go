package planview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitally-distinct/call-plan-system/models"
)

func TestAggregate(t *testing.T) {
	t.Run("computes group metrics including deleted rows", func(t *testing.T) {
		records := []*models.CustomerRecord{
			{ID: "Customer ID1", RepID: "Rep ID1", RepName: "John Smith", Territory: "Territory 1",
				Product: "Product 1", Segment: "A", Calls: 10, RefinedCalls: 8, Status: models.RecordStatusUnchanged},
			{ID: "Customer ID2", RepID: "Rep ID1", RepName: "John Smith", Territory: "Territory 1",
				Product: "Product 1", Segment: "A", Calls: 12, RefinedCalls: 9, Status: models.RecordStatusUpdated},
			{ID: "Customer ID3", RepID: "Rep ID1", RepName: "John Smith", Territory: "Territory 1",
				Product: "Product 1", Segment: "A", Calls: 14, RefinedCalls: 11, Status: models.RecordStatusDeleted},
		}

		rows := Aggregate(records)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, "Rep ID1", row.RepID)
		assert.Equal(t, "John Smith", row.RepName)
		assert.Equal(t, 3, row.NoOfCustomers)
		assert.Equal(t, 2, row.RefinedNoOfCustomers)
		assert.Equal(t, 36, row.TotalCalls)
		assert.Equal(t, 17, row.RefinedTotalCalls)
		assert.Equal(t, "12.00", row.AvgFrequency)
		assert.Equal(t, "8.50", row.RefinedAvgFrequency)
		assert.Equal(t, "67%", row.Coverage)
	})

	t.Run("refined coverage mirrors coverage", func(t *testing.T) {
		// Known quirk carried over from the report this replaces: the
		// refined ratio is never computed separately.
		records := []*models.CustomerRecord{
			{ID: "Customer ID1", RepID: "Rep ID1", Territory: "Territory 1", Product: "Product 1",
				Segment: "B", Calls: 10, RefinedCalls: 10, Status: models.RecordStatusDeleted},
			{ID: "Customer ID2", RepID: "Rep ID1", Territory: "Territory 1", Product: "Product 1",
				Segment: "B", Calls: 10, RefinedCalls: 10, Status: models.RecordStatusUnchanged},
		}

		rows := Aggregate(records)
		require.Len(t, rows, 1)
		assert.Equal(t, "50%", rows[0].Coverage)
		assert.Equal(t, rows[0].Coverage, rows[0].RefinedCoverage)
	})

	t.Run("groups split on every key attribute", func(t *testing.T) {
		records := []*models.CustomerRecord{
			{ID: "Customer ID1", RepID: "Rep ID1", Territory: "Territory 1", Product: "Product 1", Segment: "A"},
			{ID: "Customer ID2", RepID: "Rep ID1", Territory: "Territory 1", Product: "Product 2", Segment: "A"},
			{ID: "Customer ID3", RepID: "Rep ID1", Territory: "Territory 1", Product: "Product 1", Segment: "B"},
			{ID: "Customer ID4", RepID: "Rep ID2", Territory: "Territory 1", Product: "Product 1", Segment: "A"},
		}

		rows := Aggregate(records)
		assert.Len(t, rows, 4)
	})

	t.Run("groups keep first-seen order", func(t *testing.T) {
		records := []*models.CustomerRecord{
			{ID: "Customer ID1", RepID: "Rep ID2", Territory: "Territory 1", Product: "Product 1", Segment: "A"},
			{ID: "Customer ID2", RepID: "Rep ID1", Territory: "Territory 1", Product: "Product 1", Segment: "A"},
			{ID: "Customer ID3", RepID: "Rep ID2", Territory: "Territory 1", Product: "Product 1", Segment: "A"},
		}

		rows := Aggregate(records)
		require.Len(t, rows, 2)
		assert.Equal(t, "Rep ID2", rows[0].RepID)
		assert.Equal(t, "Rep ID1", rows[1].RepID)
		assert.Equal(t, 2, rows[0].NoOfCustomers)
	})

	t.Run("group with only deleted rows has zero refined average", func(t *testing.T) {
		records := []*models.CustomerRecord{
			{ID: "Customer ID1", RepID: "Rep ID1", Territory: "Territory 1", Product: "Product 1",
				Segment: "C", Calls: 10, RefinedCalls: 10, Status: models.RecordStatusDeleted},
		}

		rows := Aggregate(records)
		require.Len(t, rows, 1)
		assert.Equal(t, 0, rows[0].RefinedNoOfCustomers)
		assert.Equal(t, 0, rows[0].RefinedTotalCalls)
		assert.Equal(t, "0", rows[0].RefinedAvgFrequency)
		assert.Equal(t, "0%", rows[0].Coverage)
	})

	t.Run("empty input yields no rows", func(t *testing.T) {
		assert.Empty(t, Aggregate(nil))
	})
}
