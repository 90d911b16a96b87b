package menu

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical Norwegian weekday names, capitalized.
const (
	Mandag  = "Mandag"
	Tirsdag = "Tirsdag"
	Onsdag  = "Onsdag"
	Torsdag = "Torsdag"
	Fredag  = "Fredag"
	Lørdag  = "Lørdag"
	Søndag  = "Søndag"
)

// dayWeights orders days Monday=1 through Sunday=7. Keys are lowercase.
var dayWeights = map[string]int{
	"mandag":  1,
	"tirsdag": 2,
	"onsdag":  3,
	"torsdag": 4,
	"fredag":  5,
	"lørdag":  6,
	"søndag":  7,
}

// dayVariants maps spelling variants seen in source decks to the canonical
// form: nynorsk spellings of Monday and Tuesday show up depending on who
// authored the slides.
var dayVariants = map[string]string{
	"måndag": Mandag,
	"tysdag": Tirsdag,
}

var weekdays = []string{Mandag, Tirsdag, Onsdag, Torsdag, Fredag}

var weekendDays = []string{Lørdag, Søndag}

var titleNO = cases.Title(language.Norwegian)

// DayName extracts the canonical weekday name contained in a line, if any.
// The match is case-insensitive and positional anywhere in the line, so
// headers like "MANDAG 5. februar" classify as Monday. Weekend names are
// recognized only when includeWeekend is set (the feed path sees them, the
// deck path does not).
func DayName(line string, includeWeekend bool) (string, bool) {
	lower := strings.ToLower(line)
	names := weekdays
	if includeWeekend {
		names = append(names[:len(names):len(names)], weekendDays...)
	}
	for _, name := range names {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name, true
		}
	}
	for variant, canonical := range dayVariants {
		if strings.Contains(lower, variant) {
			return canonical, true
		}
	}
	return "", false
}

// NormalizeDay maps a feed day label to its canonical weekday name. Labels
// that contain no recognizable weekday are title-cased with Norwegian rules
// and returned as-is; the sorter gives them a consistent trailing position.
func NormalizeDay(label string) string {
	if name, ok := DayName(label, true); ok {
		return name
	}
	return titleNO.String(strings.ToLower(strings.TrimSpace(label)))
}

// dayWeight returns the sort weight for a day name, case-insensitive.
// Unknown names weigh heavier than Sunday so they sort last, in stable input
// order. Unknown names in a menu are a parsing defect surfaced by the
// ordering, not dropped.
func dayWeight(day string) int {
	if w, ok := dayWeights[strings.ToLower(day)]; ok {
		return w
	}
	return len(dayWeights) + 1
}
