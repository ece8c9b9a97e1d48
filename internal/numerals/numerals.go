// Package numerals parses the numbering schemes documents use for sections,
// figures, and appendices: decimal dotted numbers ("1.2.3"), single appendix
// letters ("A", "B.1"), and Roman numerals ("IV").
package numerals

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalPrefix = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+(.*)$`)
	letterPrefix  = regexp.MustCompile(`^([A-Za-z](?:\.\d+)*)\.?\s+(.*)$`)
	romanPrefix   = regexp.MustCompile(`^([IVXLCDM]+)\.?\s+(.*)$`)
	romanOnly     = regexp.MustCompile(`^[IVXLCDM]+$`)
)

// Prefix extracts a leading numbering prefix from heading text. It returns the
// prefix without its trailing dot ("1.2 Title" yields "1.2"), the remaining
// title text, and whether a prefix was found. Decimal prefixes are preferred,
// then Roman numerals, then single letters, matching how ambiguous prefixes
// like "I." are conventionally read in section headings.
func Prefix(text string) (prefix, rest string, ok bool) {
	text = strings.TrimSpace(text)

	if m := decimalPrefix.FindStringSubmatch(text); m != nil {
		return m[1], strings.TrimSpace(m[2]), true
	}
	if m := romanPrefix.FindStringSubmatch(text); m != nil {
		return m[1], strings.TrimSpace(m[2]), true
	}
	if m := letterPrefix.FindStringSubmatch(text); m != nil {
		// A multi-letter word is prose, not a numbering prefix.
		if len(m[1]) == 1 {
			return strings.ToUpper(m[1]), strings.TrimSpace(m[2]), true
		}
	}
	return "", text, false
}

// Depth returns the nesting depth of a numbering prefix: "1" is depth 1,
// "1.1" is depth 2, "A.1" is depth 2. A trailing lone dot adds no depth.
func Depth(prefix string) int {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		return 0
	}
	return strings.Count(prefix, ".") + 1
}

// Normalize canonicalizes an extracted identifier so equivalent references
// compare equal: Roman numerals become Arabic digits, appendix letters are
// upper-cased, and surrounding whitespace and trailing dots are dropped.
// Dotted identifiers like "A.1" or "3.2" pass through component by component.
func Normalize(id string) string {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".")
	if id == "" {
		return ""
	}

	parts := strings.Split(id, ".")
	for i, part := range parts {
		if romanOnly.MatchString(part) && len(part) > 1 {
			if v := FromRoman(part); v > 0 {
				parts[i] = strconv.Itoa(v)
				continue
			}
		}
		parts[i] = strings.ToUpper(part)
	}
	return strings.Join(parts, ".")
}

var romanValues = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// FromRoman converts a Roman numeral to its Arabic value. It returns 0 for an
// empty or malformed numeral.
func FromRoman(s string) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	total := 0
	prev := 0
	for i := len(s) - 1; i >= 0; i-- {
		v, ok := romanValues[s[i]]
		if !ok {
			return 0
		}
		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	return total
}

// IsSingleLetter reports whether the identifier is a bare appendix letter.
func IsSingleLetter(id string) bool {
	if len(id) != 1 {
		return false
	}
	c := id[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
