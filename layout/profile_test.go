package layout

import (
	"testing"

	"github.com/tsawler/indicia/model"
)

// makeLine creates a text line for profile tests.
func makeLine(text string, fontSize float64, fontName string) model.TextLine {
	return model.TextLine{Text: text, FontSize: fontSize, FontName: fontName}
}

// bodyPage builds a page dominated by 10pt Times body text.
func bodyPage(extra ...model.TextLine) model.PageText {
	lines := []model.TextLine{
		makeLine("body one", 10, "Times-Roman"),
		makeLine("body two", 10, "Times-Roman"),
		makeLine("body three", 10, "Times-Roman"),
		makeLine("body four", 10, "Times-Roman"),
	}
	return model.PageText{Lines: append(lines, extra...), PageWidth: 612}
}

func TestNewFontProfile(t *testing.T) {
	index := model.Pages{bodyPage(makeLine("Heading", 14, "Helvetica-Bold"))}

	profile, ok := NewFontProfile(index)
	if !ok {
		t.Fatal("NewFontProfile returned ok=false")
	}
	if profile.BodyFontSize != 10 {
		t.Errorf("BodyFontSize = %v, want 10", profile.BodyFontSize)
	}
	if profile.BodyFontName != "Times-Roman" {
		t.Errorf("BodyFontName = %q, want Times-Roman", profile.BodyFontName)
	}
}

func TestNewFontProfileNoSamples(t *testing.T) {
	if _, ok := NewFontProfile(nil); ok {
		t.Error("nil index should not produce a profile")
	}
	if _, ok := NewFontProfile(model.Pages{{}}); ok {
		t.Error("empty pages should not produce a profile")
	}
}

func TestFontProfileIsLarger(t *testing.T) {
	profile := FontProfile{BodyFontSize: 10}

	tests := []struct {
		size float64
		want bool
	}{
		{10, false},
		{10.4, false}, // within 5% of body
		{10.6, true},
		{14, true},
	}

	for _, tt := range tests {
		if got := profile.IsLarger(tt.size); got != tt.want {
			t.Errorf("IsLarger(%v) = %v, want %v", tt.size, got, tt.want)
		}
	}

	// The zero profile has no notion of body text and never judges a size
	// larger; heuristics degrade rather than misfire.
	if (FontProfile{}).IsLarger(100) {
		t.Error("zero profile should never report larger")
	}
}

func TestFontProfileDifferentFamily(t *testing.T) {
	profile := FontProfile{BodyFontName: "Times-Roman"}

	tests := []struct {
		name string
		want bool
	}{
		{"Times-Bold", false}, // same family, different face
		{"ABCDEF+Times-Italic", false},
		{"Helvetica", true},
		{"", false}, // missing metadata is never differentiation
	}

	for _, tt := range tests {
		if got := profile.DifferentFamily(tt.name); got != tt.want {
			t.Errorf("DifferentFamily(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Times-Bold", true},
		{"Helvetica-Black", true},
		{"SourceSans-SemiBold", true},
		{"Times-Roman", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsBoldFont(tt.name); got != tt.want {
			t.Errorf("IsBoldFont(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsItalicFont(t *testing.T) {
	if !IsItalicFont("Times-Italic") || !IsItalicFont("Courier-Oblique") {
		t.Error("italic faces not detected")
	}
	if IsItalicFont("Times-Roman") {
		t.Error("Times-Roman detected as italic")
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"RELATED WORK", true},
		{"TABLE 2", true},
		{"Related Work", false},
		{"AB", false},    // too short
		{"A1 B2", false}, // too few letters
		{"ABSTRACTx", false},
	}

	for _, tt := range tests {
		if got := IsAllCaps(tt.text); got != tt.want {
			t.Errorf("IsAllCaps(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
