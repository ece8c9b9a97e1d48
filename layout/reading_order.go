package layout

import "sort"

// Position locates content for reading-order comparisons. Y is the PDF
// page coordinate (bottom-origin), so a higher Y is earlier on the page.
type Position struct {
	PageIndex int // 0-based
	Column    Column
	Y         float64
}

// columnRank orders columns for reading: full-width content shares the left
// column's slot so that it precedes left-column content at the same height
// rather than sorting after the entire right column.
func columnRank(c Column) int {
	if c == ColumnRight {
		return 1
	}
	return 0
}

// Before reports whether p reads before other: page-major, column-minor,
// then vertical position (higher Y first). At equal height, full-width
// content precedes column content.
func (p Position) Before(other Position) bool {
	if p.PageIndex != other.PageIndex {
		return p.PageIndex < other.PageIndex
	}
	if pr, or := columnRank(p.Column), columnRank(other.Column); pr != or {
		return pr < or
	}
	if p.Y != other.Y {
		return p.Y > other.Y
	}
	return p.Column == ColumnFull && other.Column != ColumnFull
}

// SortPositions sorts positions into reading order.
func SortPositions(positions []Position) {
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Before(positions[j])
	})
}

// LastBefore returns the index of the last position in the reading-order
// sorted slice that reads before target, or -1 when target precedes every
// entry.
func LastBefore(sorted []Position, target Position) int {
	// First index that does not read before target.
	i := sort.Search(len(sorted), func(i int) bool {
		return !sorted[i].Before(target)
	})
	return i - 1
}
