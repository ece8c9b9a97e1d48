package layout

import "testing"

func TestClassifyColumn(t *testing.T) {
	const pageWidth = 600.0

	tests := []struct {
		x    float64
		want Column
	}{
		{50, ColumnLeft},
		{269, ColumnLeft},   // just under 45%
		{280, ColumnFull},   // ambiguous band
		{300, ColumnFull},   // dead center
		{331, ColumnRight},  // just over 55%
		{550, ColumnRight},
	}

	for _, tt := range tests {
		if got := ClassifyColumn(tt.x, pageWidth); got != tt.want {
			t.Errorf("ClassifyColumn(%v, %v) = %v, want %v", tt.x, pageWidth, got, tt.want)
		}
	}
}

func TestClassifyColumnNoWidth(t *testing.T) {
	if got := ClassifyColumn(100, 0); got != ColumnFull {
		t.Errorf("ClassifyColumn with zero width = %v, want ColumnFull", got)
	}
}

func TestColumnString(t *testing.T) {
	tests := []struct {
		column Column
		want   string
	}{
		{ColumnLeft, "left"},
		{ColumnRight, "right"},
		{ColumnFull, "full"},
	}

	for _, tt := range tests {
		if got := tt.column.String(); got != tt.want {
			t.Errorf("Column(%d).String() = %q, want %q", tt.column, got, tt.want)
		}
	}
}
