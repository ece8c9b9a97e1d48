package pdfio

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/indicia/model"
)

// File is an open PDF exposing indicia inputs. Close it when done.
type File struct {
	f     *os.File
	r     *pdf.Reader
	pages model.Pages
}

// Open opens a PDF and extracts per-page text geometry from it. Extraction is
// best-effort: pages that fail to parse yield empty page data rather than
// failing the open.
func Open(path string) (*File, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	file := &File{f: f, r: r}
	file.pages = extractPages(r)
	return file, nil
}

// Close releases the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

// NumPages returns the page count.
func (f *File) NumPages() int {
	return f.r.NumPage()
}

// Index returns the text index extracted from the file.
func (f *File) Index() model.TextIndex {
	return f.pages
}

// Handle returns a document handle over the file. The underlying reader does
// not expose outline destinations, so outline entries resolve to the document
// origin; heuristic outline building is the expected path for files opened
// through this package.
func (f *File) Handle() model.DocumentHandle {
	return &handle{r: f.r}
}

// handle adapts a pdf.Reader to model.DocumentHandle.
type handle struct {
	r *pdf.Reader
}

func (h *handle) NumPages() int {
	return h.r.NumPage()
}

func (h *handle) Outline() []model.OutlineEntry {
	root := h.r.Outline()
	// The reader wraps the outline in a synthetic untitled root.
	if root.Title == "" {
		return convertOutline(root.Child)
	}
	return convertOutline([]pdf.Outline{root})
}

func convertOutline(entries []pdf.Outline) []model.OutlineEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]model.OutlineEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.OutlineEntry{
			Title:    e.Title,
			Children: convertOutline(e.Child),
		})
	}
	return out
}

func (h *handle) Destination(name string) (model.DestRef, error) {
	return model.DestRef{}, fmt.Errorf("named destination %q: not exposed by reader", name)
}

func (h *handle) PageIndex(ref model.PageRef) (int, error) {
	return 0, fmt.Errorf("page reference %d: not exposed by reader", ref.Num)
}
