package menu

import (
	"regexp"
	"strings"
)

// leadingOrdinalRe matches numeric list headers such as "3. " in
// "3. Kjøttkaker". Slide templates number the dishes; the numbers carry no
// meaning in the normalized menu.
var leadingOrdinalRe = regexp.MustCompile(`^[0-9]+\.\s+`)

// Clean strips leading numeric ordinals, configured trailing boilerplate
// phrases, and surrounding whitespace from a raw fragment.
//
// Clean is idempotent: cleaning an already-clean string returns it unchanged.
func (r Rules) Clean(s string) string {
	s = strings.TrimSpace(s)
	for {
		next := leadingOrdinalRe.ReplaceAllString(s, "")
		next = r.trimBoilerplate(next)
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}

// trimBoilerplate removes one trailing boilerplate phrase, case-insensitive.
func (r Rules) trimBoilerplate(s string) string {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	for _, phrase := range r.TrailingBoilerplate {
		if phrase == "" {
			continue
		}
		p := strings.ToLower(phrase)
		if strings.HasSuffix(lower, p) {
			return strings.TrimSpace(trimmed[:len(trimmed)-len(p)])
		}
	}
	return trimmed
}
