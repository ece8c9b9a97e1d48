package outline

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/indicia/layout"
	"github.com/tsawler/indicia/model"
)

// figureLink matches the text covered by a link annotation that identifies a
// figure or table ("Fig. 3", "Figure 12", "Table 2", "Tab. 1").
var figureLink = regexp.MustCompile(`(?i)^(fig(?:ure)?|tab(?:le)?)\.?\s*(\d+)`)

// figureTextTolerance is how far, in page units, a link rectangle may sit
// from a line's position and still be treated as covering that line.
const figureTextTolerance = 2.0

// AttachFigures scans native link annotations for figure and table links and
// inserts an entry for each distinct target into the section tree, under the
// section that most closely precedes the target in reading order. annots is
// indexed by 0-based page. The tree is modified in place and returned.
//
// Reading order is page-major, then column-minor, then top-to-bottom; targets
// that precede every section are left out of the tree.
func (b *Builder) AttachFigures(items []*Item, index model.TextIndex, annots [][]model.LinkAnnotation) []*Item {
	if len(items) == 0 || index == nil {
		return items
	}

	sections := flattenSections(items, index)
	positions := sectionPositions(sections)
	seen := make(map[string]bool)

	for pageIdx, pageAnnots := range annots {
		page, ok := index.Page(pageIdx + 1)
		if !ok {
			continue
		}

		for _, annot := range pageAnnots {
			if annot.Target.Kind != model.LinkTargetPage || len(annot.Target.View) < 2 {
				continue
			}

			text, ok := coveredText(annot.Rect, page.Lines)
			if !ok {
				continue
			}
			m := figureLink.FindStringSubmatch(text)
			if m == nil {
				continue
			}

			destPage := annot.Target.PageIndex
			destX, destY := annot.Target.View[0], annot.Target.View[1]

			key := fmt.Sprintf("%d:%d", destPage, int(math.Round(destY)))
			if seen[key] {
				continue
			}
			seen[key] = true

			title := "Table " + m[2]
			if strings.HasPrefix(strings.ToLower(m[1]), "fig") {
				title = "Figure " + m[2]
			}

			target := layout.Position{
				PageIndex: destPage,
				Column:    layout.ClassifyColumn(destX, pageWidth(index, destPage)),
				Y:         destY,
			}
			if i := layout.LastBefore(positions, target); i >= 0 {
				parent := sections[i].item
				parent.Children = append(parent.Children, newItem(title, destPage, destX, destY))
			}
		}
	}

	return items
}

// placedSection pairs a section item with its reading-order position.
type placedSection struct {
	item *Item
	pos  layout.Position
}

// flattenSections flattens the tree into reading order for containment
// lookups.
func flattenSections(items []*Item, index model.TextIndex) []placedSection {
	var sections []placedSection
	Walk(items, func(item *Item) {
		sections = append(sections, placedSection{
			item: item,
			pos: layout.Position{
				PageIndex: item.PageIndex,
				Column:    layout.ClassifyColumn(item.Left, pageWidth(index, item.PageIndex)),
				Y:         item.Top,
			},
		})
	})

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].pos.Before(sections[j].pos)
	})
	return sections
}

// sectionPositions extracts the positions of placed sections, in order.
func sectionPositions(sections []placedSection) []layout.Position {
	positions := make([]layout.Position, len(sections))
	for i, s := range sections {
		positions[i] = s.pos
	}
	return positions
}

// pageWidth returns the width of the given 0-based page, or 0 when unknown.
func pageWidth(index model.TextIndex, pageIndex int) float64 {
	page, ok := index.Page(pageIndex + 1)
	if !ok {
		return 0
	}
	return page.PageWidth
}

// coveredText finds the text line a link annotation covers, returning its
// normalized text. Lines are matched by overlap between the annotation
// rectangle and the line's approximate extent.
func coveredText(rect model.BBox, lines []model.TextLine) (string, bool) {
	for _, line := range lines {
		box := model.NewBBox(line.X, line.OriginalY, approxLineWidth(line), math.Max(line.FontSize, 1))
		if rect.OverlapsWithin(box, figureTextTolerance) {
			return strings.TrimSpace(norm.NFKC.String(line.Text)), true
		}
	}
	return "", false
}

// approxLineWidth estimates a line's width from its length and font size.
// Half an em per rune is rough but only overlap, not exact extent, matters.
func approxLineWidth(line model.TextLine) float64 {
	return 0.5 * line.FontSize * float64(utf8.RuneCountInString(line.Text))
}
