package planview

import "strconv"

// Ellipsis is the marker emitted between non-adjacent page numbers.
const Ellipsis = "..."

// Paginate returns the 1-based page of items. Pages outside the collection
// come back empty, never as an error.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return append([]T(nil), items[start:end]...)
}

// TotalPages returns the number of pages needed to show count items. An
// empty collection still occupies one page so the table has somewhere to
// point.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count < 1 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// PageMarkers builds the pagination control sequence for the given position:
// page numbers as decimal strings with Ellipsis entries standing in for
// elided ranges. Seven or fewer pages are listed in full; beyond that the
// sequence keeps the first page, the last page, and a three-wide window
// around the current page, widened at either edge so it always shows at
// least three interior pages.
func PageMarkers(current, total int) []string {
	markers := []string{}
	if total <= 7 {
		for i := 1; i <= total; i++ {
			markers = append(markers, strconv.Itoa(i))
		}
		return markers
	}

	markers = append(markers, "1")
	if current > 3 {
		markers = append(markers, Ellipsis)
	}

	start, end := current-1, current+1
	if current <= 3 {
		start, end = 2, 4
	} else if current >= total-2 {
		start, end = total-3, total-1
	}
	for i := start; i <= end; i++ {
		markers = append(markers, strconv.Itoa(i))
	}

	if current < total-2 {
		markers = append(markers, Ellipsis)
	}
	markers = append(markers, strconv.Itoa(total))
	return markers
}
