package menu

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestReduce_TwoDayMenu(t *testing.T) {
	// WHAT: The canonical two-day scenario folds into the expected menu.
	// WHY: This is the reference behavior for the whole deck path.
	lines := []string{
		"UKE 12",
		"MANDAG",
		"Varmrett: Fiskesuppe",
		"TIRSDAG",
		"Suppe: Kyllingsuppe",
	}
	got := DefaultRules().Reduce(lines)

	want := &Menu{
		WeekNumber: "12",
		Days: []Day{
			{Day: "Mandag", Dishes: []string{"Varmrett: Fiskesuppe"}},
			{Day: "Tirsdag", Dishes: []string{"Suppe: Kyllingsuppe"}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestReduce_DishBeforeAnyDayDropped(t *testing.T) {
	// WHAT: A dish line preceding any day line is ignored.
	// WHY: The reducer never attaches dishes to a day not in the menu.
	got := DefaultRules().Reduce([]string{"Varmrett: Lasagne", "MANDAG", "Suppe: Tomatsuppe"})
	if len(got.Days) != 1 {
		t.Fatalf("days: got %d, want 1", len(got.Days))
	}
	if !reflect.DeepEqual(got.Days[0].Dishes, []string{"Suppe: Tomatsuppe"}) {
		t.Errorf("dishes: got %v", got.Days[0].Dishes)
	}
}

func TestReduce_RepeatedDayAppendsToExisting(t *testing.T) {
	// WHAT: A second occurrence of a weekday re-enters the existing entry.
	// WHY: Day names stay unique within one menu.
	got := DefaultRules().Reduce([]string{
		"MANDAG",
		"Varmrett: Fiskesuppe",
		"TIRSDAG",
		"Suppe: Kyllingsuppe",
		"MANDAG",
		"Temadag: Taco",
	})
	if len(got.Days) != 2 {
		t.Fatalf("days: got %d, want 2", len(got.Days))
	}
	want := []string{"Varmrett: Fiskesuppe", "Temadag: Taco"}
	if !reflect.DeepEqual(got.Days[0].Dishes, want) {
		t.Errorf("Mandag dishes: got %v, want %v", got.Days[0].Dishes, want)
	}
}

func TestReduce_LastWeekLineWins(t *testing.T) {
	got := DefaultRules().Reduce([]string{"UKE 11", "MANDAG", "UKE 12"})
	if got.WeekNumber != "12" {
		t.Errorf("weekNumber: got %q, want %q", got.WeekNumber, "12")
	}
}

func TestReduce_NoiseIsNoOp(t *testing.T) {
	// WHAT: Unclassified lines leave the accumulator untouched.
	// WHY: Silent dropping is the designed lossy behavior.
	got := DefaultRules().Reduce([]string{"Velkommen", "MANDAG", "bare pynt", "Varmrett: Gryte"})
	if len(got.Days) != 1 || len(got.Days[0].Dishes) != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestReduce_RepairedDishAppended(t *testing.T) {
	// WHAT: A keyword dish without a colon is repaired before appending.
	got := DefaultRules().Reduce([]string{"MANDAG", "Varmrett Fiskesuppe"})
	want := []string{"Varmrett: Fiskesuppe"}
	if !reflect.DeepEqual(got.Days[0].Dishes, want) {
		t.Errorf("got %v, want %v", got.Days[0].Dishes, want)
	}
}

func TestMenu_JSONRoundTrip(t *testing.T) {
	// WHAT: Serialize-then-parse yields a structurally equal menu.
	m := SortDays(DefaultRules().Reduce([]string{
		"UKE 12",
		"TIRSDAG",
		"Suppe: Kyllingsuppe",
		"MANDAG",
		"Varmrett: Fiskesuppe",
	}))
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	var back Menu
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(&back, m) {
		t.Errorf("round trip: got %+v, want %+v", &back, m)
	}
}
