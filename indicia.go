// Package indicia derives navigable structure from PDF text geometry: a
// hierarchical section outline and a cross-reference map linking in-text
// mentions ("Figure 2", "Theorem 3.1", "§4") to the locations of their
// definitions.
//
// The package performs no I/O and no rendering. A host supplies the inputs it
// has already extracted from its PDF engine — per-page text lines, native
// link annotations, and the document handle — and reads back derived data:
//
//	doc := indicia.New(handle, index).
//	    WithAnnotations(annots).
//	    WithBibliography(bib)
//
//	items, warnings := doc.Outline()
//	result, _ := doc.CrossReferences(mentions)
//
// Both computations are synchronous, run to completion, and degrade rather
// than fail: bad inputs cost individual outline entries or cross-references,
// never the whole build. Returned trees and maps are immutable snapshots; a
// host reloading a document builds a fresh Document and discards the old one.
//
// The lower-level outline and crossref packages are available directly for
// hosts that want per-phase control, and the pdfio package adapts a PDF file
// on disk into the model inputs.
package indicia

import (
	"github.com/tsawler/indicia/crossref"
	"github.com/tsawler/indicia/model"
	"github.com/tsawler/indicia/outline"
)

// Document wires a host's extracted inputs to the outline and cross-reference
// builders. The zero value is not usable; construct with New. Methods are not
// safe for concurrent use during a build; share only the returned results.
type Document struct {
	handle       model.DocumentHandle
	index        model.TextIndex
	annots       [][]model.LinkAnnotation
	bibliography model.SectionRange

	outlineConfig  outline.Config
	crossrefConfig crossref.Config

	attachFigures bool

	builtOutline []*outline.Item
	outlineBuilt bool
}

// New creates a Document from a document handle and text index. Either may be
// nil, costing the native outline path or the heuristic path respectively.
func New(handle model.DocumentHandle, index model.TextIndex) *Document {
	return &Document{
		handle:         handle,
		index:          index,
		outlineConfig:  outline.DefaultConfig(),
		crossrefConfig: crossref.DefaultConfig(),
	}
}

// WithAnnotations supplies the document's native link annotations, indexed by
// 0-based page. Annotations enable native-link confirmation of
// cross-references and figure/table outline entries.
func (d *Document) WithAnnotations(annots [][]model.LinkAnnotation) *Document {
	d.annots = annots
	return d
}

// WithBibliography supplies the page range of the document's reference
// section, so citation links into it are not treated as cross-references.
func (d *Document) WithBibliography(bibliography model.SectionRange) *Document {
	d.bibliography = bibliography
	return d
}

// WithFigureEntries enables insertion of figure and table entries into the
// outline from native link annotations.
func (d *Document) WithFigureEntries() *Document {
	d.attachFigures = true
	return d
}

// WithOutlineConfig overrides the outline builder configuration.
func (d *Document) WithOutlineConfig(config outline.Config) *Document {
	d.outlineConfig = config
	d.outlineBuilt = false
	return d
}

// WithCrossrefConfig overrides the cross-reference builder configuration.
func (d *Document) WithCrossrefConfig(config crossref.Config) *Document {
	d.crossrefConfig = config
	return d
}

// Outline builds (or returns the already built) section tree. Warnings
// report non-fatal degradation, such as an empty tree; see
// [outline.Builder.Build] for the build semantics.
func (d *Document) Outline() ([]*outline.Item, []Warning) {
	var warnings []Warning

	if !d.outlineBuilt {
		builder := outline.NewBuilderWithConfig(d.outlineConfig)
		d.builtOutline = builder.Build(d.handle, d.index)
		if d.attachFigures && d.annots != nil {
			d.builtOutline = builder.AttachFigures(d.builtOutline, d.index, d.annots)
		}
		d.outlineBuilt = true
	}

	if len(d.builtOutline) == 0 {
		warnings = append(warnings, Warning{
			Stage:   "outline",
			Message: "no native outline and no heading candidates; navigation tree will be empty",
		})
	}
	return d.builtOutline, warnings
}

// CrossReferences resolves the supplied extracted mentions against the
// outline, the text index, and the native link annotations. The outline is
// built first if it has not been already.
func (d *Document) CrossReferences(refs []*crossref.Ref) (*crossref.Result, []Warning) {
	items, warnings := d.Outline()

	builder := crossref.NewBuilderWithConfig(d.crossrefConfig, items, d.index, d.annots, d.bibliography)
	result := builder.Build(refs)

	unresolved := 0
	for _, pageRefs := range result.ByPage {
		for _, ref := range pageRefs {
			if ref.Target == nil {
				unresolved++
			}
		}
	}
	if unresolved > 0 {
		warnings = append(warnings, Warning{
			Stage:   "crossref",
			Message: FormatCount(unresolved, "reference has", "references have") + " no known destination",
		})
	}
	return result, warnings
}
