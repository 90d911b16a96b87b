package menu

import (
	"regexp"
	"strings"
)

var weekNumberRe = regexp.MustCompile(`[0-9]+`)

// WeekToken extracts the week identifier from a week-marker line: a line
// starting with "UKE" (case-insensitive), e.g. "UKE 12". The returned
// fragment is the first number-like token after the marker, raw — callers
// must not assume it is a clean integer.
func WeekToken(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 || !strings.EqualFold(trimmed[:3], "uke") {
		return "", false
	}
	return weekNumberRe.FindString(trimmed[3:]), true
}
