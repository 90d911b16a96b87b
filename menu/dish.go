package menu

import "strings"

// Dish decides whether a non-day, non-week line is a dish entry and returns
// it in "category: description" form.
//
// A line with the category separator is a dish as-is. A line without one but
// starting with a known category keyword ("Varmrett Fiskesuppe") is repaired
// by synthesizing the separator at the keyword boundary. Anything else is
// noise: slide headers, decoration, page furniture. Dropping it is accepted
// lossy behavior, not an error.
func (r Rules) Dish(line string) (string, bool) {
	if strings.Contains(line, ":") {
		return line, true
	}
	lower := strings.ToLower(line)
	for _, keyword := range r.DishKeywords {
		k := strings.ToLower(keyword)
		if strings.HasPrefix(lower, k) {
			return line[:len(k)] + ":" + line[len(k):], true
		}
	}
	return "", false
}
