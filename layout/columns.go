package layout

// Column identifies which column of a two-column page a piece of content sits
// in. ColumnFull covers both ambiguous positions and genuinely full-width
// content (titles, spanning figures); reading order treats it as preceding the
// left column at the same height.
type Column int

const (
	// ColumnLeft is the left column of a two-column layout (or the only
	// column of a single-column page).
	ColumnLeft Column = iota

	// ColumnRight is the right column of a two-column layout.
	ColumnRight

	// ColumnFull is full-width or ambiguous content.
	ColumnFull
)

// String returns a string representation of the column.
func (c Column) String() string {
	switch c {
	case ColumnLeft:
		return "left"
	case ColumnRight:
		return "right"
	default:
		return "full"
	}
}

// Column classification thresholds as a fraction of page width. Content
// starting left of 45% is left-column, right of 55% is right-column; the band
// between is ambiguous.
const (
	leftColumnMaxRatio  = 0.45
	rightColumnMinRatio = 0.55
)

// ClassifyColumn estimates column membership from a horizontal position.
// A non-positive page width gives ColumnFull (no basis to classify).
func ClassifyColumn(x, pageWidth float64) Column {
	if pageWidth <= 0 {
		return ColumnFull
	}

	ratio := x / pageWidth
	switch {
	case ratio < leftColumnMaxRatio:
		return ColumnLeft
	case ratio > rightColumnMinRatio:
		return ColumnRight
	default:
		return ColumnFull
	}
}
