package menu

import "sort"

// SortDays returns a new Menu with days in canonical Monday–Sunday order.
// The sort is stable, so equal weights (which the uniqueness invariant rules
// out, and unknown day names share) keep their parse order.
func SortDays(m *Menu) *Menu {
	days := make([]Day, len(m.Days))
	copy(days, m.Days)
	sort.SliceStable(days, func(i, j int) bool {
		return dayWeight(days[i].Day) < dayWeight(days[j].Day)
	})
	return &Menu{WeekNumber: m.WeekNumber, Days: days, Error: m.Error}
}
