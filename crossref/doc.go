// Package crossref resolves in-text references ("see Figure 2", "Theorem
// 3.1", "§4") to the locations where their targets are defined.
//
// The [Builder] runs a fixed sequence of phases over the host's extracted
// mentions, the built outline, and the document's native link annotations:
//
//  1. Outline sections and appendices are registered as targets.
//  2. Mentions that are themselves definitions (figure captions, theorem
//     statements) are detected with per-type rules and registered as targets.
//  3. Native page-destination links are indexed by position, skipping links
//     into the bibliography and degenerate destinations.
//  4. Native links are merged onto mentions by rectangle overlap; a native
//     destination is authoritative and overrides heuristic matching.
//  5. Mentions still unresolved are matched against the target map.
//  6. The final set is grouped by page and sorted into visual reading order.
//
// Targets are registered first-wins: a repeated mention never displaces the
// canonical definition location. Mentions that resolve to nothing keep a nil
// target location, which downstream rendering must treat as non-navigable.
package crossref
