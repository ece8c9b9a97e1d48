package layout

import (
	"math"
	"strings"

	"github.com/tsawler/indicia/model"
)

// largerFontRatio is how much bigger than body text a font must be before it
// is considered visually set apart. 5% keeps optical-size variants of the
// body font from reading as headings.
const largerFontRatio = 1.05

// FontProfile captures document-wide font statistics, computed once and passed
// into the heuristic detectors that need a notion of "body text".
type FontProfile struct {
	// BodyFontSize is the most common rounded font size in the document.
	BodyFontSize float64

	// BodyFontName is the most common font name, empty when the extractor
	// supplied no font names.
	BodyFontName string
}

// NewFontProfile computes a font profile from all available pages of an index.
// ok is false when the index yields no font-size samples, which callers must
// treat as "heuristics unavailable".
func NewFontProfile(index model.TextIndex) (FontProfile, bool) {
	if index == nil {
		return FontProfile{}, false
	}

	sizeCounts := make(map[float64]int)
	nameCounts := make(map[string]int)

	for pageNum := 1; pageNum <= index.NumPages(); pageNum++ {
		page, ok := index.Page(pageNum)
		if !ok {
			continue
		}
		for _, line := range page.Lines {
			if line.FontSize > 0 {
				sizeCounts[math.Round(line.FontSize)]++
			}
			if line.FontName != "" {
				nameCounts[line.FontName]++
			}
		}
	}

	if len(sizeCounts) == 0 {
		return FontProfile{}, false
	}

	var profile FontProfile
	best := 0
	for size, count := range sizeCounts {
		if count > best || (count == best && size < profile.BodyFontSize) {
			best = count
			profile.BodyFontSize = size
		}
	}

	best = 0
	for name, count := range nameCounts {
		if count > best {
			best = count
			profile.BodyFontName = name
		}
	}

	return profile, true
}

// IsLarger reports whether a font size is visibly larger than body text.
func (p FontProfile) IsLarger(size float64) bool {
	return p.BodyFontSize > 0 && size > p.BodyFontSize*largerFontRatio
}

// DifferentFamily reports whether a font name names a different family than
// the body font. Unknown names on either side give false, so missing font
// metadata never counts as differentiation.
func (p FontProfile) DifferentFamily(name string) bool {
	if p.BodyFontName == "" || name == "" {
		return false
	}
	return fontFamily(name) != fontFamily(p.BodyFontName)
}

// Differentiates reports whether a line's font is set apart from body text in
// any way: larger, bold, italic, or a different family.
func (p FontProfile) Differentiates(line model.TextLine) bool {
	return p.IsLarger(line.FontSize) ||
		IsBoldFont(line.FontName) ||
		IsItalicFont(line.FontName) ||
		p.DifferentFamily(line.FontName)
}

// fontFamily strips style suffixes and subset prefixes from a PDF font name,
// leaving just the family ("ABCDEF+Times-Bold" -> "times").
func fontFamily(name string) string {
	if i := strings.IndexByte(name, '+'); i >= 0 && i == 6 {
		name = name[i+1:]
	}
	name = strings.ToLower(name)
	for _, sep := range []string{"-", ","} {
		if i := strings.Index(name, sep); i >= 0 {
			name = name[:i]
		}
	}
	return name
}

// IsBoldFont reports whether a font name indicates a bold face.
func IsBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}

// IsItalicFont reports whether a font name indicates an italic or oblique face.
func IsItalicFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
}

// IsAllCaps reports whether text is set in all capital letters. Text with
// fewer than three letters is never all-caps; a stray lowercase letter in
// otherwise uppercase text (10% or less) is tolerated.
func IsAllCaps(text string) bool {
	upper := 0
	lower := 0
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		}
	}

	if upper+lower < 3 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}
