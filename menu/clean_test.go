package menu

import "testing"

func TestClean_LeadingOrdinal(t *testing.T) {
	// WHAT: Numeric list headers are stripped.
	// WHY: Slide templates number the dishes; the numbers are noise.
	got := DefaultRules().Clean("1. Fiskesuppe")
	if got != "Fiskesuppe" {
		t.Errorf("got %q, want %q", got, "Fiskesuppe")
	}
}

func TestClean_TrailingBoilerplate(t *testing.T) {
	// WHAT: Known trailing kitchen annotations are removed.
	// WHY: "64 grader" is a sous-vide note, not part of the dish.
	got := DefaultRules().Clean("med tyttebær 64 grader")
	if got != "med tyttebær" {
		t.Errorf("got %q, want %q", got, "med tyttebær")
	}
}

func TestClean_OrdinalAndBoilerplate(t *testing.T) {
	got := DefaultRules().Clean("  3. Kjøttkaker 62 grader ")
	if got != "Kjøttkaker" {
		t.Errorf("got %q, want %q", got, "Kjøttkaker")
	}
}

func TestClean_Idempotent(t *testing.T) {
	// WHAT: clean(clean(x)) == clean(x).
	// WHY: The feed and deck paths may clean the same fragment twice.
	inputs := []string{
		"1. Fiskesuppe",
		"12. 13. nestet",
		"med tyttebær 64 grader 64 grader",
		"allerede ren",
		"",
		"   ",
		"Varmrett: Lasagne",
	}
	rules := DefaultRules()
	for _, in := range inputs {
		once := rules.Clean(in)
		twice := rules.Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestClean_CaseInsensitiveBoilerplate(t *testing.T) {
	got := DefaultRules().Clean("Kylling 64 GRADER")
	if got != "Kylling" {
		t.Errorf("got %q, want %q", got, "Kylling")
	}
}
