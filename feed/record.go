package feed

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hazyhaar/kantina/menu"
)

// Record is the admin record published by the realtime database.
type Record struct {
	Context RecordContext `json:"Context"`
}

// RecordContext wraps the published content. WeeklyMenu is nil when the
// record has never been populated.
type RecordContext struct {
	WeeklyMenu *WeeklyMenu `json:"weeklyMenu"`
}

// WeeklyMenu holds one entry per published week.
type WeeklyMenu struct {
	Content []WeekEntry `json:"content"`
}

// WeekEntry is one week's menu in the feed. Number may arrive as a JSON
// number or a string.
type WeekEntry struct {
	Number WeekNumber `json:"number"`
	Days   []DayEntry `json:"days"`
}

// WeekNumber is a feed week identifier, kept as raw text. Unlike json.Number
// it accepts any string value, not just number literals: admin tools publish
// zero-padded weeks like "012" that still have to match week 12.
type WeekNumber string

func (w *WeekNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = WeekNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("week number: %w", err)
	}
	*w = WeekNumber(n.String())
	return nil
}

func (w WeekNumber) String() string { return string(w) }

// DayEntry is one day in the feed, assumed Monday-first ordering.
type DayEntry struct {
	Text   string      `json:"text"`
	Dishes []DishEntry `json:"dishes"`
}

// DishEntry is a dish in the feed: header is the category label (often with
// a numeric ordinal), subHeader the description (often with kitchen notes).
type DishEntry struct {
	Header    string `json:"header"`
	SubHeader string `json:"subHeader"`
}

// maxFeedDays caps the mapped days to Monday through Friday; the feed may
// also carry weekend entries.
const maxFeedDays = 5

// Menu maps the record to the canonical menu for the requested week. Week
// matching is loose: "12" matches both the number 12 and the string "12".
// Returns ErrMissingWeeklyMenu when the weeklyMenu field is absent or no
// entry matches.
func (r *Record) Menu(rules menu.Rules, week string) (*menu.Menu, error) {
	wm := r.Context.WeeklyMenu
	if wm == nil {
		return nil, ErrMissingWeeklyMenu
	}

	for _, entry := range wm.Content {
		if !weekEqual(entry.Number.String(), week) {
			continue
		}

		days := entry.Days
		if len(days) > maxFeedDays {
			days = days[:maxFeedDays]
		}

		m := &menu.Menu{WeekNumber: canonicalWeek(entry.Number.String()), Days: []menu.Day{}}
		for _, d := range days {
			day := menu.Day{
				Day:    menu.NormalizeDay(rules.Clean(d.Text)),
				Dishes: []string{},
			}
			for _, dish := range d.Dishes {
				header := rules.Clean(dish.Header)
				sub := rules.Clean(dish.SubHeader)
				switch {
				case header == "" && sub == "":
					continue
				case header == "":
					day.Dishes = append(day.Dishes, sub)
				case sub == "":
					day.Dishes = append(day.Dishes, header)
				default:
					day.Dishes = append(day.Dishes, header+": "+sub)
				}
			}
			m.Days = append(m.Days, day)
		}
		return menu.SortDays(m), nil
	}

	return nil, fmt.Errorf("week %s: %w", week, ErrMissingWeeklyMenu)
}

// weekEqual compares two week identifiers loosely: numerically when both
// parse as integers, by trimmed string otherwise.
func weekEqual(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimSpace(a))
	nb, errB := strconv.Atoi(strings.TrimSpace(b))
	if errA == nil && errB == nil {
		return na == nb
	}
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// canonicalWeek strips leading zeros and whitespace from a parseable week
// identifier, leaving unparseable ones as-is.
func canonicalWeek(s string) string {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return strconv.Itoa(n)
	}
	return strings.TrimSpace(s)
}
