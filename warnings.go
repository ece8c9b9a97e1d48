package indicia

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered while deriving structure.
// The pipeline never fails for a single bad input; warnings are how degraded
// output is surfaced.
type Warning struct {
	// Stage names the pipeline stage that produced the warning ("outline",
	// "crossref").
	Stage string

	// Message is a human-readable description.
	Message string
}

// String returns the warning as "stage: message".
func (w Warning) String() string {
	return w.Stage + ": " + w.Message
}

// FormatWarnings joins warnings into a single string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// FormatCount formats a count with the singular or plural form of its noun
// phrase ("1 reference has", "3 references have").
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
