package crossref

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/indicia/layout"
	"github.com/tsawler/indicia/model"
)

// definitionRule decides whether a mention, attributed to the text line it
// sits on, is itself the definition of its target (a caption, a theorem
// statement, a section header) rather than a reference to it.
type definitionRule func(b *Builder, ref *Ref, line model.TextLine) bool

// definitionRules dispatches per reference type. Types not listed use
// defaultDefinitionRule, so new types are additive.
var definitionRules = map[RefType]definitionRule{
	// A "§N" pattern only ever appears as a section header.
	SectionMark: func(*Builder, *Ref, model.TextLine) bool { return true },

	Figure: captionDefinitionRule,
	Table:  captionDefinitionRule,

	Theorem:   statementDefinitionRule,
	Algorithm: statementDefinitionRule,
}

// captionDefinitionRule recognizes figure and table captions: punctuation
// right after the number ("Figure 3: results"), or a short line set in bold
// or all-caps ("TABLE 2").
func captionDefinitionRule(b *Builder, ref *Ref, line model.TextLine) bool {
	if trailingPunctuation(ref, line) {
		return true
	}
	emphasized := layout.IsBoldFont(line.FontName) || layout.IsAllCaps(line.Text)
	return emphasized && utf8.RuneCountInString(strings.TrimSpace(line.Text)) < b.config.ShortCaptionLength
}

// statementDefinitionRule recognizes theorem and algorithm statements, which
// open in bold or a display font larger than body text.
func statementDefinitionRule(b *Builder, ref *Ref, line model.TextLine) bool {
	return layout.IsBoldFont(line.FontName) ||
		b.profile.IsLarger(line.FontSize) ||
		trailingPunctuation(ref, line)
}

// defaultDefinitionRule is the union of the cheap signals.
func defaultDefinitionRule(b *Builder, ref *Ref, line model.TextLine) bool {
	return layout.IsBoldFont(line.FontName) ||
		b.profile.IsLarger(line.FontSize) ||
		layout.IsAllCaps(line.Text) ||
		trailingPunctuation(ref, line)
}

// findDefinitions classifies each mention as definition or plain reference
// and registers confirmed definitions as targets, first-wins against the
// section targets of the previous phase.
func (b *Builder) findDefinitions(refs []*Ref, targets map[string]Target) {
	for _, ref := range refs {
		line, ok := b.nearestLine(ref)
		if !ok {
			// Noisy geometry: no line close enough to attribute the mention
			// to, so no definition claim is made.
			continue
		}

		rule, ok := definitionRules[ref.Type]
		if !ok {
			rule = defaultDefinitionRule
		}
		if !rule(b, ref, line) {
			continue
		}

		ref.IsDefinition = true
		registerTarget(targets, Target{
			Type:       ref.Type,
			ID:         ref.TargetID,
			PageNumber: ref.PageNumber,
			X:          line.X,
			Y:          line.OriginalY,
			Text:       line.Text,
		})
	}
}

// nearestLine locates the text line a mention sits on by nearest-y lookup on
// its page. ok is false when the page is unavailable, the mention has no
// rectangles, or no line lies within the configured tolerance.
func (b *Builder) nearestLine(ref *Ref) (model.TextLine, bool) {
	if b.index == nil || len(ref.Rects) == 0 {
		return model.TextLine{}, false
	}
	page, ok := b.index.Page(ref.PageNumber)
	if !ok {
		return model.TextLine{}, false
	}

	refY := ref.Rects[0].Y
	best := model.TextLine{}
	bestDist := math.Inf(1)
	for _, line := range page.Lines {
		if d := math.Abs(line.Y - refY); d < bestDist {
			best = line
			bestDist = d
		}
	}
	if bestDist > b.config.LineTolerance {
		return model.TextLine{}, false
	}
	return best, true
}

// trailingPunctuation reports whether the character immediately after the
// mention in its line is a colon or period, the way captions punctuate their
// numbers.
func trailingPunctuation(ref *Ref, line model.TextLine) bool {
	text := norm.NFKC.String(line.Text)
	i := strings.Index(text, ref.Text)
	if i < 0 {
		return false
	}
	rest := text[i+len(ref.Text):]
	return strings.HasPrefix(rest, ":") || strings.HasPrefix(rest, ".")
}
