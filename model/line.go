package model

// TextLine is one visually contiguous line of text on a page, as produced by
// the host's text extraction. Y uses a top-origin convention (smaller Y is
// higher on the page, so ascending Y follows reading order down the page).
// OriginalY preserves the underlying PDF bottom-origin coordinate and is what
// navigation destinations are built from.
//
// TextLines are immutable once produced; builders never modify them.
type TextLine struct {
	Text      string
	X, Y      float64
	FontSize  float64
	FontName  string // may be empty when the extractor could not identify the font
	OriginalY float64
}

// PageText holds the ordered text lines of a single page along with the page
// width, which column classification depends on.
type PageText struct {
	Lines     []TextLine
	PageWidth float64
}

// TextIndex provides page-by-page text geometry for a document. Pages are
// numbered from 1. A host backed by lazy rendering may report ok=false for
// pages it has not materialized yet; builders treat such pages as empty and
// return best-effort results rather than blocking.
type TextIndex interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// Page returns the text of the given 1-based page. ok is false when the
	// page's data is unavailable.
	Page(pageNum int) (PageText, bool)
}

// Pages is a TextIndex over a fully materialized slice of page data, where
// Pages[0] is page 1.
type Pages []PageText

// NumPages returns the number of pages.
func (p Pages) NumPages() int {
	return len(p)
}

// Page returns the text of the given 1-based page.
func (p Pages) Page(pageNum int) (PageText, bool) {
	if pageNum < 1 || pageNum > len(p) {
		return PageText{}, false
	}
	return p[pageNum-1], true
}
