package outline

import (
	"errors"
	"testing"

	"github.com/tsawler/indicia/model"
)

// fakeHandle is a DocumentHandle over fixture data.
type fakeHandle struct {
	numPages    int
	entries     []model.OutlineEntry
	dests       map[string]model.DestRef
	pageIndexes map[int]int // PageRef.Num -> page index
}

func (h *fakeHandle) NumPages() int                 { return h.numPages }
func (h *fakeHandle) Outline() []model.OutlineEntry { return h.entries }

func (h *fakeHandle) Destination(name string) (model.DestRef, error) {
	dest, ok := h.dests[name]
	if !ok {
		return model.DestRef{}, errors.New("unknown destination")
	}
	return dest, nil
}

func (h *fakeHandle) PageIndex(ref model.PageRef) (int, error) {
	idx, ok := h.pageIndexes[ref.Num]
	if !ok {
		return 0, errors.New("unknown page reference")
	}
	return idx, nil
}

// explicitDest builds an explicit destination for page object num.
func explicitDest(num int, left, top float64) model.DestRef {
	return model.DestRef{Explicit: true, Page: model.PageRef{Num: num}, Left: left, Top: top}
}

func TestBuildNativeOutline(t *testing.T) {
	handle := &fakeHandle{
		numPages: 10,
		entries: []model.OutlineEntry{
			{
				Title: "Introduction", HasDest: true, Dest: explicitDest(1, 72, 700),
				Children: []model.OutlineEntry{
					{Title: "Background", HasDest: true, Dest: model.DestRef{Name: "sec.bg"}},
				},
			},
			{Title: "Methods", HasDest: true, Dest: explicitDest(3, 72, 650)},
		},
		dests:       map[string]model.DestRef{"sec.bg": explicitDest(2, 72, 400)},
		pageIndexes: map[int]int{1: 0, 2: 1, 3: 4},
	}

	items := NewBuilder().Build(handle, nil)

	if len(items) != 2 {
		t.Fatalf("got %d top-level items, want 2", len(items))
	}
	if items[0].Title != "Introduction" || items[0].PageIndex != 0 || items[0].Top != 700 {
		t.Errorf("first item = %q page %d top %v", items[0].Title, items[0].PageIndex, items[0].Top)
	}
	if len(items[0].Children) != 1 {
		t.Fatalf("Introduction has %d children, want 1", len(items[0].Children))
	}
	if child := items[0].Children[0]; child.Title != "Background" || child.PageIndex != 1 || child.Top != 400 {
		t.Errorf("named destination resolved to page %d top %v", child.PageIndex, child.Top)
	}
	if items[1].PageIndex != 4 {
		t.Errorf("Methods page = %d, want 4", items[1].PageIndex)
	}
}

// The native tree must be isomorphic to the outline structure: same item
// count, same parent/child relationships.
func TestBuildNativeIsomorphic(t *testing.T) {
	entries := []model.OutlineEntry{
		{Title: "A", Children: []model.OutlineEntry{
			{Title: "A.1"},
			{Title: "A.2", Children: []model.OutlineEntry{{Title: "A.2.1"}}},
		}},
		{Title: "B"},
	}
	handle := &fakeHandle{numPages: 1, entries: entries}

	items := NewBuilder().Build(handle, nil)

	var countEntries func([]model.OutlineEntry) int
	countEntries = func(es []model.OutlineEntry) int {
		n := len(es)
		for _, e := range es {
			n += countEntries(e.Children)
		}
		return n
	}
	if got, want := Count(items), countEntries(entries); got != want {
		t.Errorf("item count = %d, want %d", got, want)
	}
	if len(items[0].Children) != 2 || len(items[0].Children[1].Children) != 1 {
		t.Error("parent/child structure does not match the native outline")
	}
}

// A destination that fails to resolve must default its item to page 0 at the
// origin, never abort the build.
func TestBuildNativeResolutionFailure(t *testing.T) {
	handle := &fakeHandle{
		numPages: 5,
		entries: []model.OutlineEntry{
			{Title: "Broken", HasDest: true, Dest: model.DestRef{Name: "no.such"}},
			{Title: "Fine", HasDest: true, Dest: explicitDest(1, 10, 20)},
			{Title: "No destination at all"},
		},
		pageIndexes: map[int]int{1: 3},
	}

	items := NewBuilder().Build(handle, nil)

	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].PageIndex != 0 || items[0].Left != 0 || items[0].Top != 0 {
		t.Errorf("failed resolution should default to origin, got page %d (%v, %v)",
			items[0].PageIndex, items[0].Left, items[0].Top)
	}
	if items[1].PageIndex != 3 {
		t.Errorf("good item resolved to page %d, want 3", items[1].PageIndex)
	}
	if items[2].PageIndex != 0 {
		t.Errorf("destination-less item should default to page 0")
	}
}

func TestPromoteSingleRoot(t *testing.T) {
	handle := &fakeHandle{
		numPages: 3,
		entries: []model.OutlineEntry{
			{Title: "Document Title", Children: []model.OutlineEntry{
				{Title: "One"},
				{Title: "Two"},
			}},
		},
	}

	items := NewBuilder().Build(handle, nil)

	if len(items) != 2 {
		t.Fatalf("got %d top-level items, want promoted children (2)", len(items))
	}
	if items[0].Title != "One" || items[1].Title != "Two" {
		t.Errorf("promoted titles = %q, %q", items[0].Title, items[1].Title)
	}
}

// A single root with a single child stays as-is: only synthetic title roots
// with multiple children are collapsed.
func TestNoPromotionForSingleChild(t *testing.T) {
	handle := &fakeHandle{
		numPages: 3,
		entries: []model.OutlineEntry{
			{Title: "Root", Children: []model.OutlineEntry{{Title: "Only"}}},
		},
	}

	items := NewBuilder().Build(handle, nil)

	if len(items) != 1 || items[0].Title != "Root" {
		t.Fatalf("single-child root should not be promoted")
	}
}
