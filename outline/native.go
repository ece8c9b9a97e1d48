package outline

import (
	"errors"
	"fmt"

	"github.com/tsawler/indicia/model"
)

// errNoDestination marks outline entries that carry no destination at all.
var errNoDestination = errors.New("outline entry has no destination")

// resolvedPosition is an internal result distinguishing "resolved to the
// origin" from "failed to resolve"; callers convert failures to the zero
// position at the point of use.
type resolvedPosition struct {
	pageIndex int
	left, top float64
}

// buildNative converts embedded outline entries into items, recursively
// processing children. Resolution failures are swallowed per item: the entry
// keeps its title and defaults to page 0 at the origin.
func (b *Builder) buildNative(doc model.DocumentHandle, entries []model.OutlineEntry) []*Item {
	items := make([]*Item, 0, len(entries))
	for _, entry := range entries {
		pos, err := resolveDestination(doc, entry)
		if err != nil {
			pos = resolvedPosition{}
		}

		item := newItem(entry.Title, pos.pageIndex, pos.left, pos.top)
		item.Children = b.buildNative(doc, entry.Children)
		items = append(items, item)
	}
	return items
}

// resolveDestination resolves an entry's destination to a page index and view
// position, following a named destination to its explicit form first.
func resolveDestination(doc model.DocumentHandle, entry model.OutlineEntry) (resolvedPosition, error) {
	if !entry.HasDest {
		return resolvedPosition{}, errNoDestination
	}

	dest := entry.Dest
	if !dest.Explicit {
		resolved, err := doc.Destination(dest.Name)
		if err != nil {
			return resolvedPosition{}, fmt.Errorf("resolve named destination %q: %w", dest.Name, err)
		}
		if !resolved.Explicit {
			return resolvedPosition{}, fmt.Errorf("named destination %q did not resolve to an explicit destination", dest.Name)
		}
		dest = resolved
	}

	pageIndex, err := doc.PageIndex(dest.Page)
	if err != nil {
		return resolvedPosition{}, fmt.Errorf("resolve page reference: %w", err)
	}

	return resolvedPosition{pageIndex: pageIndex, left: dest.Left, top: dest.Top}, nil
}

// promoteSingleRoot collapses the synthetic "document title" root some PDF
// producers inject: a lone top-level item with more than one child is replaced
// by its children.
func promoteSingleRoot(items []*Item) []*Item {
	if len(items) == 1 && len(items[0].Children) > 1 {
		return items[0].Children
	}
	return items
}
