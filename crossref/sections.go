package crossref

import (
	"regexp"

	"github.com/tsawler/indicia/internal/numerals"
	"github.com/tsawler/indicia/outline"
)

// appendixTitle matches outline titles like "Appendix B" where the appendix
// letter appears in the title body rather than as a numbering prefix.
var appendixTitle = regexp.MustCompile(`(?i)^appendix\s+([A-Z])\b`)

// mapSections walks the outline tree and registers every numbered section as
// a target, keyed by its normalized prefix. Titles naming an appendix
// additionally register an appendix target and a section alias for the bare
// letter, so both "Appendix B" and "§B" style references resolve.
func (b *Builder) mapSections(targets map[string]Target) {
	outline.Walk(b.outline, func(item *outline.Item) {
		if prefix, _, ok := numerals.Prefix(item.Title); ok {
			id := numerals.Normalize(prefix)
			registerTarget(targets, Target{
				Type:       Section,
				ID:         id,
				PageNumber: item.PageIndex + 1,
				X:          item.Left,
				Y:          item.Top,
				Text:       item.Title,
			})
			// Only a bare letter is an appendix identifier; "A.1" stays a
			// plain section.
			if numerals.IsSingleLetter(id) {
				registerTarget(targets, Target{
					Type:       Appendix,
					ID:         id,
					PageNumber: item.PageIndex + 1,
					X:          item.Left,
					Y:          item.Top,
					Text:       item.Title,
				})
			}
		}

		if m := appendixTitle.FindStringSubmatch(item.Title); m != nil {
			letter := numerals.Normalize(m[1])
			for _, typ := range []RefType{Appendix, Section} {
				registerTarget(targets, Target{
					Type:       typ,
					ID:         letter,
					PageNumber: item.PageIndex + 1,
					X:          item.Left,
					Y:          item.Top,
					Text:       item.Title,
				})
			}
		}
	})
}
