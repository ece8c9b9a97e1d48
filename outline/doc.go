// Package outline builds a navigable section tree for a document.
//
// The [Builder] prefers the document's embedded outline when one exists,
// resolving each entry's destination and collapsing the synthetic single-root
// wrapper some producers inject. When a document carries no outline, the
// builder falls back to heuristic inference from per-page text geometry:
// margin-anchored lines whose numbering or font sets them apart from body text
// become heading candidates, candidates are assigned levels from numbering
// depth or font-size rank, and a stack walk reconstructs the tree from the
// flat leveled list.
//
//	b := outline.NewBuilder()
//	items := b.Build(handle, index)
//
// [AttachFigures] optionally inserts figure and table entries discovered from
// link annotations under the section that precedes them in reading order.
//
// Builds are best-effort by design: a destination that fails to resolve
// defaults its entry to the document origin, and missing text or font data
// yields an empty heuristic outline. No input ever aborts the whole build.
package outline
