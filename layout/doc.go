// Package layout provides the geometry-level analysis shared by the outline
// and crossref builders.
//
// It answers three questions about a page of text:
//
//   - What does body text look like? [FontProfile] captures the dominant font
//     size and family for a document, so detectors can recognize text that is
//     set apart from it (larger, bold, italic, all-caps).
//   - Which column is this? [ClassifyColumn] estimates column membership from
//     horizontal position for one- and two-column layouts.
//   - What comes first? [Position] orders content page-major, column-minor,
//     then by vertical position, which is the reading order used to decide
//     which section a figure belongs to.
//
// Everything here is pure computation over supplied values; the package keeps
// no state between calls.
package layout
