package model

// PageRef is an opaque reference to a page object inside the document, as used
// by explicit outline destinations. The host's document engine resolves it to
// a page index.
type PageRef struct {
	Num int
	Gen int
}

// DestRef identifies the destination of an outline entry, either by the name
// of a named destination or explicitly by page reference plus view position.
type DestRef struct {
	// Name is the named destination to resolve, when Explicit is false.
	Name string

	// Explicit indicates Page/Left/Top carry the destination directly.
	Explicit bool

	Page PageRef
	Left float64
	Top  float64
}

// Destination is a fully resolved location within the document.
type Destination struct {
	PageIndex int // 0-based
	Left      float64
	Top       float64
}

// OutlineEntry is a raw entry from a document's embedded outline (bookmark)
// structure, before destination resolution.
type OutlineEntry struct {
	Title    string
	Dest     DestRef
	HasDest  bool
	Children []OutlineEntry
}

// DocumentHandle exposes the parts of a loaded document that structure
// analysis reads. Implementations wrap whatever PDF engine the host uses.
type DocumentHandle interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// Outline returns the document's embedded outline, or nil when the
	// document has none.
	Outline() []OutlineEntry

	// Destination resolves a named destination to its explicit form. An error
	// means the name is unknown or the destination could not be parsed.
	Destination(name string) (DestRef, error)

	// PageIndex resolves a page reference to a 0-based page index.
	PageIndex(ref PageRef) (int, error)
}

// LinkTargetKind distinguishes where a native link annotation points.
type LinkTargetKind int

const (
	// LinkTargetPage is an internal link to a page/view destination.
	LinkTargetPage LinkTargetKind = iota
	// LinkTargetURL is an external URL link.
	LinkTargetURL
)

// LinkTarget describes the destination of a native link annotation.
type LinkTarget struct {
	Kind LinkTargetKind

	// URL is set for LinkTargetURL links.
	URL string

	// PageIndex and View are set for LinkTargetPage links. View holds the
	// destination view coordinates, x then y, possibly followed by
	// engine-specific values (zoom etc.) which are ignored here.
	PageIndex int
	View      []float64
}

// LinkAnnotation is a hyperlink embedded in the page by the PDF producer, as
// opposed to one inferred from text. Read-only input to the merge phase.
type LinkAnnotation struct {
	Rect   BBox
	Target LinkTarget
}

// SectionRange bounds a run of pages, such as the bibliography detected by the
// host's reference-section index. Pages are 1-based and the range is
// inclusive. The zero value is an unknown range containing no pages.
type SectionRange struct {
	StartPage int
	EndPage   int
}

// Contains reports whether the 1-based page falls inside the range.
func (r SectionRange) Contains(pageNum int) bool {
	if r.StartPage == 0 || r.EndPage == 0 {
		return false
	}
	return pageNum >= r.StartPage && pageNum <= r.EndPage
}
