// Package model defines the shared data model for document structure analysis.
//
// The types here are the contract between the host application (which extracts
// text geometry and annotations from a rendered PDF) and the outline and
// crossref builders (which consume them):
//
//   - [TextLine] and [PageText] carry per-page text geometry
//   - [LinkAnnotation] and [LinkTarget] carry producer-embedded hyperlinks
//   - [DocumentHandle] and [TextIndex] are the interfaces builders read from
//   - [Point] and [BBox] provide the geometric primitives
//
// All values are plain data: the builders never mutate their inputs, and a host
// may share one set of inputs across repeated builds.
package model
