package menu

import "strings"

// FromText runs the full document-text path: split the extracted deck text
// into lines, trim them, drop the empty ones, fold the rest into a menu, and
// sort the days. This is the sole caller of Reduce.
func (r Rules) FromText(text string) *Menu {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return SortDays(r.Reduce(lines))
}
