// Package locale lists the locale identifiers datekit knows about. The list
// helps callers pick a tag; it is not enforced when formatting.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

func All() []Identifier {
	return append([]Identifier(nil), known...)
}

// IsKnown reports whether s is in the list, ignoring case and accepting "_"
// as a separator.
func IsKnown(s string) bool {
	s = strings.ReplaceAll(s, "_", "-")
	for _, id := range known {
		if strings.EqualFold(string(id), s) {
			return true
		}
	}
	return false
}

// Tag parses the identifier as a BCP 47 language tag.
func (id Identifier) Tag() (language.Tag, error) {
	return language.Parse(string(id))
}

func (id Identifier) String() string {
	return string(id)
}
