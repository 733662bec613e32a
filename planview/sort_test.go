package planview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitally-distinct/call-plan-system/models"
)

func sortFixture() []*models.CustomerRecord {
	return []*models.CustomerRecord{
		{ID: "Customer ID10", Name: "Beta Clinic", Calls: 12},
		{ID: "Customer ID2", Name: "Alpha Clinic", Calls: 9},
		{ID: "Customer ID1", Name: "Beta Clinic", Calls: 10},
	}
}

func TestSortRecords(t *testing.T) {
	t.Run("ascending natural order", func(t *testing.T) {
		got := SortRecords(sortFixture(), SortConfig{Key: FieldID, Direction: Ascending})
		require.Len(t, got, 3)
		assert.Equal(t, "Customer ID1", got[0].ID)
		assert.Equal(t, "Customer ID2", got[1].ID)
		assert.Equal(t, "Customer ID10", got[2].ID)
	})

	t.Run("descending inverts ascending", func(t *testing.T) {
		asc := SortRecords(sortFixture(), SortConfig{Key: FieldCalls, Direction: Ascending})
		desc := SortRecords(sortFixture(), SortConfig{Key: FieldCalls, Direction: Descending})
		require.Len(t, desc, 3)
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		got := SortRecords(sortFixture(), SortConfig{Key: FieldName, Direction: Ascending})
		require.Len(t, got, 3)
		assert.Equal(t, "Alpha Clinic", got[0].Name)
		// The two Beta Clinic rows keep their input order
		assert.Equal(t, "Customer ID10", got[1].ID)
		assert.Equal(t, "Customer ID1", got[2].ID)
	})

	t.Run("zero key keeps current order", func(t *testing.T) {
		in := sortFixture()
		got := SortRecords(in, SortConfig{})
		require.Len(t, got, 3)
		for i := range in {
			assert.Same(t, in[i], got[i])
		}
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := sortFixture()
		SortRecords(in, SortConfig{Key: FieldID, Direction: Ascending})
		assert.Equal(t, "Customer ID10", in[0].ID)
		assert.Equal(t, "Customer ID2", in[1].ID)
		assert.Equal(t, "Customer ID1", in[2].ID)
	})
}

func TestSortSummary(t *testing.T) {
	rows := []*SummaryRow{
		{RepID: "Rep ID3", AvgFrequency: "10.50"},
		{RepID: "Rep ID12", AvgFrequency: "9.00"},
		{RepID: "Rep ID1", AvgFrequency: "12.00"},
	}

	t.Run("sorts by rep id naturally", func(t *testing.T) {
		got := SortSummary(rows, SortConfig{Key: FieldRepID, Direction: Ascending})
		require.Len(t, got, 3)
		assert.Equal(t, "Rep ID1", got[0].RepID)
		assert.Equal(t, "Rep ID3", got[1].RepID)
		assert.Equal(t, "Rep ID12", got[2].RepID)
	})

	t.Run("frequency strings sort by numeric value", func(t *testing.T) {
		got := SortSummary(rows, SortConfig{Key: FieldAvgFrequency, Direction: Descending})
		require.Len(t, got, 3)
		assert.Equal(t, "12.00", got[0].AvgFrequency)
		assert.Equal(t, "10.50", got[1].AvgFrequency)
		assert.Equal(t, "9.00", got[2].AvgFrequency)
	})
}
