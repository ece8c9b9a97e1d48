package outline

import (
	"github.com/tsawler/indicia/layout"
	"github.com/tsawler/indicia/model"
)

// Config holds configuration for outline building. All thresholds apply to
// the heuristic path; the native path has nothing to tune.
type Config struct {
	// MinTitleLength and MaxTitleLength bound the rune length of a heading
	// candidate. Defaults: 2 and 150.
	MinTitleLength int
	MaxTitleLength int

	// WatermarkPrefix filters lines injected by preprint servers, which sit
	// at the page margin in a distinct font and otherwise pass every heading
	// test. Default: "arXiv:".
	WatermarkPrefix string

	// MarginTolerancePoints and MarginToleranceRatio control how close to the
	// page's left margin a heading must start: the tolerance is the larger of
	// the fixed points value and ratio times the margin. Defaults: 5 and 0.03.
	MarginTolerancePoints float64
	MarginToleranceRatio  float64

	// MaxUnnumberedLength is the rune length under which an unnumbered
	// larger-font line qualifies without being title case. Default: 80.
	MaxUnnumberedLength int

	// TitleCaseRatio, TitleCaseMinWords, and TitleCaseMinLength define the
	// title-case test for longer unnumbered candidates. Defaults: 0.6, 2, 5.
	TitleCaseRatio     float64
	TitleCaseMinWords  int
	TitleCaseMinLength int
}

// DefaultConfig returns the default outline configuration.
func DefaultConfig() Config {
	return Config{
		MinTitleLength:        2,
		MaxTitleLength:        150,
		WatermarkPrefix:       "arXiv:",
		MarginTolerancePoints: 5.0,
		MarginToleranceRatio:  0.03,
		MaxUnnumberedLength:   80,
		TitleCaseRatio:        0.6,
		TitleCaseMinWords:     2,
		TitleCaseMinLength:    5,
	}
}

// Builder builds section trees. A Builder is stateless apart from its
// configuration and may be reused across documents.
type Builder struct {
	config Config
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a builder with custom configuration.
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{config: config}
}

// Build produces the document's section tree. When the document carries an
// embedded outline it is used directly, with each entry's destination
// resolved through the handle; entries whose destinations fail to resolve
// default to the document origin rather than aborting the build. Without an
// embedded outline the tree is inferred heuristically from the text index;
// a nil index or one with no font data yields an empty tree.
func (b *Builder) Build(doc model.DocumentHandle, index model.TextIndex) []*Item {
	if doc != nil {
		if entries := doc.Outline(); len(entries) > 0 {
			return promoteSingleRoot(b.buildNative(doc, entries))
		}
	}

	profile, ok := layout.NewFontProfile(index)
	if !ok {
		return nil
	}
	return buildTree(b.collectCandidates(index, profile))
}
