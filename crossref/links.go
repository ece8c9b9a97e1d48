package crossref

import (
	"sort"

	"github.com/tsawler/indicia/model"
)

// indexedLink is a native link annotation admitted to the merge phase,
// remembered with the 1-based page it appears on.
type indexedLink struct {
	pageNumber int
	annot      model.LinkAnnotation
}

// indexLinks collects the native link annotations that can confirm a
// cross-reference: internal page destinations outside the bibliography with a
// non-degenerate view position. Links are de-duplicated by quantized
// position, and the result is ordered deterministically.
func (b *Builder) indexLinks() []indexedLink {
	byKey := make(map[string]indexedLink)
	var keys []string

	for pageIdx, pageAnnots := range b.annots {
		for _, annot := range pageAnnots {
			target := annot.Target
			if target.Kind != model.LinkTargetPage || len(target.View) < 2 {
				continue
			}
			// Links into the reference list are citations, not
			// cross-references.
			if b.bibliography.Contains(target.PageIndex + 1) {
				continue
			}
			// A zero/zero view is a producer artifact pointing nowhere
			// useful.
			if target.View[0] == 0 && target.View[1] == 0 {
				continue
			}

			key := positionKey(pageIdx+1, annot.Rect.X, annot.Rect.Y)
			if _, exists := byKey[key]; exists {
				continue
			}
			byKey[key] = indexedLink{pageNumber: pageIdx + 1, annot: annot}
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	links := make([]indexedLink, 0, len(keys))
	for _, key := range keys {
		links = append(links, byKey[key])
	}
	return links
}

// merge reconciles the extracted text mentions with the indexed native links.
// Mentions are de-duplicated by the quantized position of their first
// rectangle. A native link whose rectangle overlaps a mention's rectangles
// (within the configured tolerance) confirms the mention and overwrites its
// destination with the link's literal destination: native destinations are
// authoritative over heuristic matching. A native link overlapping no mention
// is dropped, not synthesized into a reference, because its semantic type
// cannot be inferred from geometry alone.
func (b *Builder) merge(refs []*Ref, links []indexedLink) []*Ref {
	var merged []*Ref
	seen := make(map[string]bool)
	for _, ref := range refs {
		y, x := refAnchor(ref)
		key := positionKey(ref.PageNumber, x, y)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, ref)
	}

	for _, link := range links {
		for _, ref := range merged {
			if ref.PageNumber != link.pageNumber {
				continue
			}
			if !b.rectsOverlap(ref.Rects, link.annot.Rect) {
				continue
			}
			ref.Flags |= NativeConfirmed | DestConfirmed
			ref.Target = &Location{
				PageIndex: link.annot.Target.PageIndex,
				X:         link.annot.Target.View[0],
				Y:         link.annot.Target.View[1],
			}
		}
	}

	return merged
}

// rectsOverlap reports whether any of the mention rectangles overlaps the
// link rectangle within the configured tolerance.
func (b *Builder) rectsOverlap(rects []model.BBox, rect model.BBox) bool {
	for _, r := range rects {
		if r.OverlapsWithin(rect, b.config.OverlapTolerance) {
			return true
		}
	}
	return false
}
