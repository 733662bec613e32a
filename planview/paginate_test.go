package planview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("first page", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, Paginate(items, 1, 3))
	})

	t.Run("middle page", func(t *testing.T) {
		assert.Equal(t, []int{4, 5, 6}, Paginate(items, 2, 3))
	})

	t.Run("short final page", func(t *testing.T) {
		assert.Equal(t, []int{7}, Paginate(items, 3, 3))
	})

	t.Run("pages partition the collection", func(t *testing.T) {
		var all []int
		for page := 1; page <= TotalPages(len(items), 3); page++ {
			all = append(all, Paginate(items, page, 3)...)
		}
		assert.Equal(t, items, all)
	})

	t.Run("out of range pages are empty", func(t *testing.T) {
		assert.Empty(t, Paginate(items, 4, 3))
		assert.Empty(t, Paginate(items, 0, 3))
		assert.Empty(t, Paginate(items, -1, 3))
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Empty(t, Paginate([]int{}, 1, 3))
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		pageSize int
		want     int
	}{
		{"exact multiple", 40, 20, 2},
		{"rounds up", 41, 20, 3},
		{"single short page", 7, 20, 1},
		{"empty collection still has one page", 0, 20, 1},
		{"full seed at detail size", 55, 20, 3},
		{"reference at its page size", 95, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.count, tt.pageSize))
		})
	}
}

func TestPageMarkers(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []string
	}{
		{"single page", 1, 1, []string{"1"}},
		{"seven pages listed in full", 3, 7, []string{"1", "2", "3", "4", "5", "6", "7"}},
		{"start of a long run", 1, 10, []string{"1", "2", "3", "4", "...", "10"}},
		{"page three still anchors left", 3, 10, []string{"1", "2", "3", "4", "...", "10"}},
		{"interior page windows around itself", 5, 10, []string{"1", "...", "4", "5", "6", "...", "10"}},
		{"near the end anchors right", 8, 10, []string{"1", "...", "7", "8", "9", "10"}},
		{"last page", 10, 10, []string{"1", "...", "7", "8", "9", "10"}},
		{"eight pages from the front", 1, 8, []string{"1", "2", "3", "4", "...", "8"}},
		{"eight pages from the middle", 4, 8, []string{"1", "...", "3", "4", "5", "...", "8"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageMarkers(tt.current, tt.total))
		})
	}
}
