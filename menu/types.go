// Package menu normalizes loosely-structured Norwegian lunch-menu text into a
// canonical weekly menu.
//
// Input is either an ordered sequence of text lines (extracted from a slide
// deck) folded by Reduce, or a pre-structured feed record mapped directly by
// the feed package. Both paths share the same cleaning and weekday
// normalization rules.
package menu

// Menu is the canonical weekly menu. It is built once per request and never
// mutated afterwards.
type Menu struct {
	WeekNumber string     `json:"weekNumber"`
	Days       []Day      `json:"days"`
	Error      *ErrorInfo `json:"error,omitempty"`
}

// Day holds one weekday's dishes. Day is the canonical capitalized weekday
// name; each dish is a "category: description" pair.
type Day struct {
	Day    string   `json:"day"`
	Dishes []string `json:"dishes"`
}

// ErrorInfo is the diagnostic record attached to a failed lookup. When
// present, Days is empty and WeekNumber carries the requested week.
type ErrorInfo struct {
	Message string `json:"message"`
}

// ErrorMenu builds the error-shaped menu body returned on failed lookups:
// empty days, the requested week number, and a message.
func ErrorMenu(week, message string) *Menu {
	return &Menu{
		WeekNumber: week,
		Days:       []Day{},
		Error:      &ErrorInfo{Message: message},
	}
}
