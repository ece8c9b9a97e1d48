// Package pdfio adapts a PDF file on disk into the inputs the indicia
// builders consume, using the ledongthuc/pdf reader.
//
// It is a convenience for standalone use and tooling. A browser-based or
// engine-embedded host will normally implement model.TextIndex and
// model.DocumentHandle over its own extraction pipeline instead, which can
// supply richer data than this adapter: ledongthuc/pdf does not expose
// outline destinations or link annotations, so documents opened here rely on
// the heuristic outline path and carry no native links.
package pdfio
