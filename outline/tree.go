package outline

import "sort"

// buildTree reconstructs the section tree from the flat leveled candidate
// list. Candidates are walked in document order with an explicit stack of
// open nodes: each candidate closes every open node at its own level or
// deeper, attaches to the node left on top, and opens itself. The tree owns
// all nodes; the stack holds only references for placement.
func buildTree(candidates []candidate) []*Item {
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].pageIndex != candidates[j].pageIndex {
			return candidates[i].pageIndex < candidates[j].pageIndex
		}
		return candidates[i].line.Y < candidates[j].line.Y
	})

	type openNode struct {
		item  *Item
		level int
	}

	var roots []*Item
	var stack []openNode

	for _, c := range candidates {
		item := newItem(c.title, c.pageIndex, c.line.X, c.line.OriginalY)

		for len(stack) > 0 && stack[len(stack)-1].level >= c.level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, item)
		} else {
			parent := stack[len(stack)-1].item
			parent.Children = append(parent.Children, item)
		}
		stack = append(stack, openNode{item: item, level: c.level})
	}

	return roots
}
