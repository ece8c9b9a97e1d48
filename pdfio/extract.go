package pdfio

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/indicia/model"
)

// Letter-size fallback dimensions for pages without a readable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// lineYTolerance groups text runs whose baselines sit within this many units
// into one line.
const lineYTolerance = 2.0

// extractPages pulls text geometry from every page. A page that fails to
// parse contributes empty page data.
func extractPages(r *pdf.Reader) model.Pages {
	numPages := r.NumPage()
	pages := make(model.Pages, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, model.PageText{PageWidth: defaultPageWidth})
			continue
		}

		width, height := pageSize(page)
		pages = append(pages, model.PageText{
			Lines:     extractLines(page, height),
			PageWidth: width,
		})
	}
	return pages
}

// pageSize reads the page MediaBox, walking up the page tree for inherited
// boxes.
func pageSize(page pdf.Page) (width, height float64) {
	v := page.V
	for !v.IsNull() {
		if box := v.Key("MediaBox"); !box.IsNull() && box.Len() == 4 {
			w := box.Index(2).Float64() - box.Index(0).Float64()
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageWidth, defaultPageHeight
}

// extractLines groups a page's text runs into visually contiguous lines.
// Runs are bucketed by baseline, split at large horizontal gaps (column
// boundaries), and concatenated left to right.
func extractLines(page pdf.Page, pageHeight float64) []model.TextLine {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	runs := make([]pdf.Text, len(content.Text))
	copy(runs, content.Text)
	sort.SliceStable(runs, func(i, j int) bool {
		if math.Abs(runs[i].Y-runs[j].Y) > lineYTolerance {
			return runs[i].Y > runs[j].Y // higher on page first
		}
		return runs[i].X < runs[j].X
	})

	var lines []model.TextLine
	start := 0
	for i := 1; i <= len(runs); i++ {
		if i < len(runs) && math.Abs(runs[i].Y-runs[start].Y) <= lineYTolerance {
			continue
		}
		lines = append(lines, splitBaseline(runs[start:i], pageHeight)...)
		start = i
	}
	return lines
}

// splitBaseline turns one baseline bucket into lines, splitting where the
// horizontal gap between runs is too wide to be intra-line spacing (as
// between the columns of a two-column page).
func splitBaseline(runs []pdf.Text, pageHeight float64) []model.TextLine {
	var lines []model.TextLine
	start := 0
	for i := 1; i <= len(runs); i++ {
		if i < len(runs) {
			gap := runs[i].X - (runs[i-1].X + runs[i-1].W)
			if gap <= columnGap(runs[start]) {
				continue
			}
		}
		if line, ok := joinRuns(runs[start:i], pageHeight); ok {
			lines = append(lines, line)
		}
		start = i
	}
	return lines
}

// columnGap is the horizontal gap beyond which runs belong to separate lines.
func columnGap(run pdf.Text) float64 {
	if run.FontSize > 0 {
		return 3 * run.FontSize
	}
	return 30
}

// joinRuns concatenates runs into a single TextLine. ok is false for
// whitespace-only content.
func joinRuns(runs []pdf.Text, pageHeight float64) (model.TextLine, bool) {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.S)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return model.TextLine{}, false
	}

	first := runs[0]
	return model.TextLine{
		Text:      text,
		X:         first.X,
		Y:         pageHeight - first.Y, // top-origin for reading order
		FontSize:  first.FontSize,
		FontName:  first.Font,
		OriginalY: first.Y,
	}, true
}
