package menu

// lineKind tags the classification of one input line. Noise is an explicit
// branch: unclassified lines leave the state untouched by design.
type lineKind int

const (
	kindNoise lineKind = iota
	kindDay
	kindDish
	kindWeek
)

// classified is the tagged result of classifying one line.
type classified struct {
	kind  lineKind
	value string // canonical day name, repaired dish, or raw week token
}

// classify resolves a line to exactly one of day | week | dish | noise.
// Day and week markers win over the dish heuristic: a day header containing
// a colon is still a day line.
func (r Rules) classify(line string) classified {
	if day, ok := DayName(line, false); ok {
		return classified{kind: kindDay, value: day}
	}
	if week, ok := WeekToken(line); ok {
		return classified{kind: kindWeek, value: week}
	}
	if dish, ok := r.Dish(line); ok {
		return classified{kind: kindDish, value: dish}
	}
	return classified{kind: kindNoise}
}

// state is the reducer accumulator. Each step returns a new value; the days
// slice is copied before modification so intermediate states never alias.
type state struct {
	week       string
	days       []Day
	currentDay string
}

// step folds one line into the state.
//
//   - day line: start (or re-enter) that day's entry and make it current
//   - dish line: append to the current day's entry; dishes seen before any
//     day line are dropped
//   - week line: record the week token, last occurrence wins
//   - noise: unchanged
func (r Rules) step(st state, line string) state {
	c := r.classify(line)
	switch c.kind {
	case kindDay:
		next := state{week: st.week, currentDay: c.value}
		next.days = append(next.days, st.days...)
		if !hasDay(next.days, c.value) {
			next.days = append(next.days, Day{Day: c.value, Dishes: []string{}})
		}
		return next

	case kindDish:
		if st.currentDay == "" {
			return st
		}
		next := state{week: st.week, currentDay: st.currentDay}
		next.days = make([]Day, len(st.days))
		for i, d := range st.days {
			next.days[i] = d
			if d.Day == st.currentDay {
				dishes := make([]string, 0, len(d.Dishes)+1)
				dishes = append(dishes, d.Dishes...)
				dishes = append(dishes, c.value)
				next.days[i].Dishes = dishes
			}
		}
		return next

	case kindWeek:
		if c.value == "" {
			return st
		}
		return state{week: c.value, days: st.days, currentDay: st.currentDay}

	default:
		return st
	}
}

// Reduce folds an ordered sequence of cleaned, non-empty lines into an
// unsorted menu. Single pass, in input order; classifying a line never
// depends on later lines.
//
// A repeated weekday token re-enters the existing Day entry instead of
// creating a duplicate, keeping day names unique within the menu.
func (r Rules) Reduce(lines []string) *Menu {
	st := state{days: []Day{}}
	for _, line := range lines {
		st = r.step(st, line)
	}
	return &Menu{WeekNumber: st.week, Days: st.days}
}

func hasDay(days []Day, name string) bool {
	for _, d := range days {
		if d.Day == name {
			return true
		}
	}
	return false
}
