// Package collate implements cut-and-stack page numbering for printed grids.
//
// Ordinary page-major numbering (1..9 on page one, 10..18 on page two) cannot
// be re-sorted physically: after cutting, adjacent numbers end up scattered
// across the grid. Cut-and-stack numbering instead assigns consecutive numbers
// to the same grid slot across successive pages, so that stacking all
// same-slot pieces from every page yields stacks that are already in ascending
// order. Concatenating the stacks in row-major slot order reconstructs 1..N
// with zero manual sorting.
package collate

// Geometry describes the fixed grid of one printed page.
type Geometry struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Slots returns the number of cells on one page.
func (g Geometry) Slots() int {
	return g.Rows * g.Cols
}

// Pages returns the number of pages needed to hold n items.
// Zero items means zero pages.
func (g Geometry) Pages(n int) int {
	s := g.Slots()
	if n <= 0 || s <= 0 {
		return 0
	}

	return (n + s - 1) / s
}

// NumberForCell computes which 1-based sequence number belongs at (page, row,
// col) for a run of n items, or ok=false when the cell stays empty. When n is
// not a multiple of the page capacity the highest-indexed slots run out of
// entries and stay empty. The result depends on the page count, which depends
// on n, so it must be recomputed per run rather than cached.
func NumberForCell(page, row, col int, geom Geometry, n int) (num int, ok bool) {
	pages := geom.Pages(n)
	if pages == 0 || page < 0 || page >= pages {
		return 0, false
	}

	if row < 0 || row >= geom.Rows || col < 0 || col >= geom.Cols {
		return 0, false
	}

	slot := row*geom.Cols + col
	num = slot*pages + page + 1

	if num > n {
		return 0, false
	}

	return num, true
}
