package crossref

import (
	"fmt"
	"math"
	"sort"

	"github.com/tsawler/indicia/layout"
	"github.com/tsawler/indicia/model"
	"github.com/tsawler/indicia/outline"
)

// Config holds configuration for cross-reference resolution.
type Config struct {
	// OverlapTolerance is the slack, in page units, allowed on every side
	// when testing a mention rectangle against a native link rectangle.
	// Default: 5.
	OverlapTolerance float64

	// LineTolerance is the maximum vertical distance between a mention and
	// the text line it is attributed to; mentions further from any line are
	// skipped by definition detection. Default: 10.
	LineTolerance float64

	// RowTolerance is the vertical band within which two references on a page
	// are treated as the same visual row and ordered left to right.
	// Default: 5.
	RowTolerance float64

	// ShortCaptionLength is the rune length under which a bold or all-caps
	// figure/table line counts as a caption. Default: 15.
	ShortCaptionLength int
}

// DefaultConfig returns the default cross-reference configuration.
func DefaultConfig() Config {
	return Config{
		OverlapTolerance:   5.0,
		LineTolerance:      10.0,
		RowTolerance:       5.0,
		ShortCaptionLength: 15,
	}
}

// Builder resolves cross-references for one document. It holds the derived
// inputs the phases read: the built outline, the text index, native link
// annotations (indexed by 0-based page), and the bibliography page range.
type Builder struct {
	config       Config
	outline      []*outline.Item
	index        model.TextIndex
	annots       [][]model.LinkAnnotation
	bibliography model.SectionRange
	profile      layout.FontProfile
}

// NewBuilder creates a builder with default configuration. Any input may be
// nil or zero; the corresponding phases simply contribute nothing.
func NewBuilder(items []*outline.Item, index model.TextIndex, annots [][]model.LinkAnnotation, bibliography model.SectionRange) *Builder {
	return NewBuilderWithConfig(DefaultConfig(), items, index, annots, bibliography)
}

// NewBuilderWithConfig creates a builder with custom configuration.
func NewBuilderWithConfig(config Config, items []*outline.Item, index model.TextIndex, annots [][]model.LinkAnnotation, bibliography model.SectionRange) *Builder {
	// A missing profile leaves the zero value, whose font predicates are
	// never satisfied; definition detection then falls back to punctuation
	// evidence alone.
	profile, _ := layout.NewFontProfile(index)
	return &Builder{
		config:       config,
		outline:      items,
		index:        index,
		annots:       annots,
		bibliography: bibliography,
		profile:      profile,
	}
}

// Build resolves the supplied extracted mentions. The phases run in strict
// order because later phases consume earlier outputs. Build annotates the
// supplied refs in place and returns them grouped; the refs should not be
// reused across builds.
func (b *Builder) Build(refs []*Ref) *Result {
	targets := make(map[string]Target)

	b.mapSections(targets)
	b.findDefinitions(refs, targets)
	links := b.indexLinks()
	merged := b.merge(refs, links)
	b.matchTargets(merged, targets)

	return &Result{
		ByPage:  b.groupByPage(merged),
		Targets: targets,
	}
}

// registerTarget adds a target if its key is not already taken. First
// registration wins.
func registerTarget(targets map[string]Target, t Target) {
	key := t.Key()
	if _, exists := targets[key]; !exists {
		targets[key] = t
	}
}

// matchTargets resolves every reference still lacking a destination against
// the target map built by the earlier phases. Native-confirmed destinations
// are never revisited here.
func (b *Builder) matchTargets(refs []*Ref, targets map[string]Target) {
	for _, ref := range refs {
		if ref.Target != nil {
			continue
		}
		t, ok := targets[targetKey(ref.Type, ref.TargetID)]
		if !ok {
			continue
		}
		ref.Target = &Location{
			PageIndex: t.PageNumber - 1,
			X:         t.X,
			Y:         t.Y,
		}
	}
}

// groupByPage buckets references by page and sorts each page into visual
// order: top to bottom with a row-tolerance band, left to right within a row.
func (b *Builder) groupByPage(refs []*Ref) map[int][]*Ref {
	byPage := make(map[int][]*Ref)
	for _, ref := range refs {
		byPage[ref.PageNumber] = append(byPage[ref.PageNumber], ref)
	}

	for _, pageRefs := range byPage {
		sort.SliceStable(pageRefs, func(i, j int) bool {
			yi, xi := refAnchor(pageRefs[i])
			yj, xj := refAnchor(pageRefs[j])
			if math.Abs(yi-yj) > b.config.RowTolerance {
				return yi < yj
			}
			return xi < xj
		})
	}
	return byPage
}

// refAnchor returns the sort anchor of a reference: the y then x of its first
// rectangle.
func refAnchor(ref *Ref) (y, x float64) {
	if len(ref.Rects) == 0 {
		return 0, 0
	}
	return ref.Rects[0].Y, ref.Rects[0].X
}

// positionKey quantizes a page position for indexing and de-duplication.
func positionKey(pageNumber int, x, y float64) string {
	return fmt.Sprintf("%d:%d:%d", pageNumber, int(math.Round(x)), int(math.Round(y)))
}
