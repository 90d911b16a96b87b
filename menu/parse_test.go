package menu

import (
	"reflect"
	"testing"
)

func TestFromText_FullDeck(t *testing.T) {
	// WHAT: Raw deck text goes through split, trim, fold, and sort.
	text := "UKE 12\n\n  TIRSDAG  \nSuppe: Kyllingsuppe\n\nMANDAG\nVarmrett: Fiskesuppe\n   \n"
	got := DefaultRules().FromText(text)

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

func TestFromText_EmptyInput(t *testing.T) {
	got := DefaultRules().FromText("")
	if got.WeekNumber != "" || len(got.Days) != 0 {
		t.Errorf("got %+v, want empty menu", got)
	}
	if got.Days == nil {
		t.Error("days must be an empty slice, not nil")
	}
}
