package crossref

import "github.com/tsawler/indicia/model"

// RefType is the kind of entity a cross-reference points at. The set is open:
// hosts may extract types beyond the ones named here, which are resolved with
// the default definition rule.
type RefType string

const (
	Figure      RefType = "figure"
	Table       RefType = "table"
	Section     RefType = "section"
	SectionMark RefType = "sectionMark" // "§N" style section marks
	Appendix    RefType = "appendix"
	Theorem     RefType = "theorem"
	Algorithm   RefType = "algorithm"
	Equation    RefType = "equation"
)

// ConfirmFlag is a bitmask recording how a reference's destination was
// established.
type ConfirmFlag uint8

const (
	// NativeConfirmed marks references whose rectangles overlap a native
	// link annotation.
	NativeConfirmed ConfirmFlag = 1 << iota

	// DestConfirmed marks references whose destination was taken from a
	// native link rather than heuristic target matching.
	DestConfirmed
)

// Has reports whether all the given flags are set.
func (f ConfirmFlag) Has(flags ConfirmFlag) bool {
	return f&flags == flags
}

// Location is a resolved destination within the document.
type Location struct {
	PageIndex int // 0-based
	X, Y      float64
}

// Target is the resolved definition location for a referenceable entity.
// Targets are keyed by "{type}-{id}" and the first registration for a key is
// permanent, so noisy re-mentions never displace the canonical definition.
type Target struct {
	Type       RefType
	ID         string // normalized identifier ("3.1", "A", Roman converted)
	PageNumber int    // 1-based
	X, Y       float64
	Text       string // source text the target was registered from
}

// Key returns the target's registration key.
func (t Target) Key() string {
	return targetKey(t.Type, t.ID)
}

func targetKey(typ RefType, id string) string {
	return string(typ) + "-" + id
}

// Ref is an in-text mention that should be clickable. Hosts supply refs with
// the first six fields populated from text extraction; Build fills in Target,
// IsDefinition, and Flags.
type Ref struct {
	// Type is the kind of entity referenced.
	Type RefType

	// Text is the matched mention text ("Figure 3").
	Text string

	// TargetID is the normalized identifier of the referenced entity.
	TargetID string

	// PageNumber is the 1-based page the mention appears on.
	PageNumber int

	// Rects are the bounding rectangles of the mention's visual fragments; a
	// mention broken across a line wrap spans more than one.
	Rects []model.BBox

	// Target is the resolved destination, nil when the reference could not
	// be resolved. A nil target means "no known destination, do not offer
	// navigation".
	Target *Location

	// IsDefinition is true when this mention is itself the definition (a
	// caption or statement) rather than a reference to one.
	IsDefinition bool

	// Flags records how the destination was established.
	Flags ConfirmFlag
}

// Result is the output of a build: all references grouped by 1-based page
// number in visual order, plus the target map keyed by "{type}-{id}".
// Callers must treat both maps as immutable snapshots.
type Result struct {
	ByPage  map[int][]*Ref
	Targets map[string]Target
}
