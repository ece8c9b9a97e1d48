package outline

import "github.com/google/uuid"

// Item is a node in the document's section tree. Items form a proper tree:
// every item has at most one parent and children are ordered by document
// reading position. The tree is built once per document load and is read-only
// afterward.
type Item struct {
	// ID uniquely identifies this item within the document.
	ID string

	// Title is the display title, with any numbering prefix retained.
	Title string

	// PageIndex is the 0-based page the item navigates to.
	PageIndex int

	// Left and Top are the destination position on the page, in page
	// coordinates.
	Left float64
	Top  float64

	// Children are the nested items, in reading order.
	Children []*Item
}

// newItem creates an item with a fresh unique id.
func newItem(title string, pageIndex int, left, top float64) *Item {
	return &Item{
		ID:        uuid.NewString(),
		Title:     title,
		PageIndex: pageIndex,
		Left:      left,
		Top:       top,
	}
}

// Walk visits every item in the tree in depth-first document order.
func Walk(items []*Item, fn func(*Item)) {
	for _, item := range items {
		fn(item)
		Walk(item.Children, fn)
	}
}

// Count returns the total number of items in the tree.
func Count(items []*Item) int {
	n := 0
	Walk(items, func(*Item) { n++ })
	return n
}

// FindByPage returns all items whose destination is the given 0-based page,
// in document order.
func FindByPage(items []*Item, pageIndex int) []*Item {
	var result []*Item
	Walk(items, func(item *Item) {
		if item.PageIndex == pageIndex {
			result = append(result, item)
		}
	})
	return result
}
