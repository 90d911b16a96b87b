package menu

import "testing"

func TestDayName_Uppercase(t *testing.T) {
	// WHAT: Weekday match is case-insensitive and normalizes casing.
	// WHY: Deck headers are usually all-caps.
	got, ok := DayName("MANDAG", false)
	if !ok || got != "Mandag" {
		t.Errorf("got %q ok=%v, want Mandag", got, ok)
	}
}

func TestDayName_EmbeddedInHeader(t *testing.T) {
	// WHAT: A weekday anywhere in the line classifies the line as a day.
	// WHY: Headers carry dates, e.g. "Torsdag 8. februar".
	got, ok := DayName("Torsdag 8. februar", false)
	if !ok || got != "Torsdag" {
		t.Errorf("got %q ok=%v, want Torsdag", got, ok)
	}
}

func TestDayName_SpellingVariants(t *testing.T) {
	// WHAT: Nynorsk spellings map to the canonical bokmål form.
	// WHY: Deck authors are inconsistent; OCR makes it worse.
	cases := []struct {
		input string
		want  string
	}{
		{"MÅNDAG", "Mandag"},
		{"Tysdag", "Tirsdag"},
	}
	for _, tc := range cases {
		got, ok := DayName(tc.input, false)
		if !ok || got != tc.want {
			t.Errorf("DayName(%q) = %q ok=%v, want %q", tc.input, got, ok, tc.want)
		}
	}
}

func TestDayName_WeekendOnlyWithFlag(t *testing.T) {
	// WHAT: Weekend names are recognized only on the feed path.
	// WHY: Deck parsing needs only the five workdays; the feed record may
	// carry a full week.
	if _, ok := DayName("Lørdag", false); ok {
		t.Error("Lørdag recognized without weekend flag")
	}
	got, ok := DayName("lørdag", true)
	if !ok || got != "Lørdag" {
		t.Errorf("got %q ok=%v, want Lørdag", got, ok)
	}
}

func TestDayName_Noise(t *testing.T) {
	if name, ok := DayName("Ukens meny", false); ok {
		t.Errorf("noise line classified as day %q", name)
	}
}

func TestNormalizeDay_Fallback(t *testing.T) {
	// WHAT: Labels without a recognizable weekday are title-cased and kept.
	// WHY: Unknown day names are a defect to surface, not to drop.
	got := NormalizeDay("helligdag")
	if got != "Helligdag" {
		t.Errorf("got %q, want %q", got, "Helligdag")
	}
}
