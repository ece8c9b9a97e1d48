package outline

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/indicia/internal/numerals"
	"github.com/tsawler/indicia/layout"
	"github.com/tsawler/indicia/model"
)

var (
	// numberedHeading gates lines that open with a section numbering scheme:
	// dotted decimals ("1.", "2.3"), a letter prefix ("A.", "B.2"), or a
	// Roman numeral. Letters require a dot so the article "A" in prose titles
	// does not register as appendix numbering.
	numberedHeading = regexp.MustCompile(`^(?:\d+(?:\.\d+)*\.?|[A-Z]\.(?:\d+(?:\.\d+)*)?\.?|[IVXLC]{2,}\.?|[IVXLC]\.)\s+\S`)

	// strictNumbered accepts single-digit section numbers followed by a
	// capitalized word. Lines matching this are headings even without font
	// differentiation; anything looser would sweep up numbered list items.
	strictNumbered = regexp.MustCompile(`^\d\.\s+[A-Z]`)
)

// candidate is a text line provisionally judged to be a section heading. It
// lives only between collection and tree construction.
type candidate struct {
	line      model.TextLine
	pageIndex int
	title     string
	prefix    string
	depth     int
	numbered  bool
	level     int
}

// collectCandidates scans every available page for heading candidates and
// assigns each a level, from numbering depth for numbered candidates and from
// font-size rank for the rest.
func (b *Builder) collectCandidates(index model.TextIndex, profile layout.FontProfile) []candidate {
	var candidates []candidate

	for pageNum := 1; pageNum <= index.NumPages(); pageNum++ {
		page, ok := index.Page(pageNum)
		if !ok {
			continue
		}

		margin, ok := leftMargin(page.Lines)
		if !ok {
			continue
		}
		tolerance := math.Max(b.config.MarginTolerancePoints, margin*b.config.MarginToleranceRatio)

		for _, line := range page.Lines {
			text := strings.TrimSpace(norm.NFKC.String(line.Text))
			if !b.lengthOK(text) || strings.HasPrefix(text, b.config.WatermarkPrefix) {
				continue
			}
			if line.X > margin+tolerance {
				continue
			}

			if numberedHeading.MatchString(text) {
				if !profile.Differentiates(line) && !strictNumbered.MatchString(text) {
					continue
				}
				prefix, rest, ok := numerals.Prefix(text)
				if !ok {
					continue
				}
				title := prefix
				if rest != "" {
					title += " " + rest
				}
				candidates = append(candidates, candidate{
					line:      line,
					pageIndex: pageNum - 1,
					title:     title,
					prefix:    prefix,
					depth:     numerals.Depth(prefix),
					numbered:  true,
				})
				continue
			}

			if !profile.IsLarger(line.FontSize) {
				continue
			}
			if utf8.RuneCountInString(text) >= b.config.MaxUnnumberedLength && !b.isTitleCase(text) {
				continue
			}
			candidates = append(candidates, candidate{
				line:      line,
				pageIndex: pageNum - 1,
				title:     text,
			})
		}
	}

	b.assignLevels(candidates)
	return candidates
}

// lengthOK bounds candidate length: headings are neither single characters
// nor paragraphs.
func (b *Builder) lengthOK(text string) bool {
	n := utf8.RuneCountInString(text)
	return n >= b.config.MinTitleLength && n <= b.config.MaxTitleLength
}

// leftMargin returns the minimum X of the page's non-empty lines.
func leftMargin(lines []model.TextLine) (float64, bool) {
	found := false
	margin := 0.0
	for _, line := range lines {
		if strings.TrimSpace(line.Text) == "" {
			continue
		}
		if !found || line.X < margin {
			margin = line.X
			found = true
		}
	}
	return margin, found
}

// isTitleCase reports whether enough of the words start with a capital letter
// for the line to read as a title.
func (b *Builder) isTitleCase(text string) bool {
	if utf8.RuneCountInString(text) < b.config.TitleCaseMinLength {
		return false
	}
	words := strings.Fields(text)
	if len(words) < b.config.TitleCaseMinWords {
		return false
	}

	capitalized := 0
	for _, word := range words {
		r, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(r) {
			capitalized++
		}
	}
	return float64(capitalized)/float64(len(words)) >= b.config.TitleCaseRatio
}

// assignLevels sets each candidate's tree level. Numbered candidates use
// their numbering depth directly. Unnumbered candidates are leveled by
// ranking the distinct rounded font sizes they use, largest first.
func (b *Builder) assignLevels(candidates []candidate) {
	sizeSet := make(map[float64]bool)
	for _, c := range candidates {
		if !c.numbered {
			sizeSet[math.Round(c.line.FontSize)] = true
		}
	}

	sizes := make([]float64, 0, len(sizeSet))
	for size := range sizeSet {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	sizeLevel := make(map[float64]int, len(sizes))
	for i, size := range sizes {
		sizeLevel[size] = i + 1
	}

	for i := range candidates {
		if candidates[i].numbered {
			candidates[i].level = candidates[i].depth
		} else {
			candidates[i].level = sizeLevel[math.Round(candidates[i].line.FontSize)]
		}
	}
}
