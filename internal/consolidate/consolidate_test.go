package consolidate

import (
	"testing"
)

func TestConsolidate_PinAfterCanonical(t *testing.T) {
	engine := NewEngine()

	tally, unmatched := engine.Consolidate([]string{
		"1 F.2d 2",
		"1 F.2d 2, at 5",
	}, "opinion.txt")

	if len(unmatched) != 0 {
		t.Fatalf("Expected no unmatched records, got %v", unmatched)
	}
	if tally.Len() != 1 {
		t.Fatalf("Expected 1 canonical citation, got %d", tally.Len())
	}
	if got := tally.Count("1 F.2d 2"); got != 2 {
		t.Errorf("Expected pin to increment canonical to 2, got %d", got)
	}
}

func TestConsolidate_PinBeforeCanonicalIsUnmatched(t *testing.T) {
	engine := NewEngine()

	tally, unmatched := engine.Consolidate([]string{
		"1 F.2d 2, at 5",
		"1 F.2d 2",
	}, "opinion.txt")

	// No forward lookahead: the pin never resolves retroactively.
	if len(unmatched) != 1 {
		t.Fatalf("Expected 1 unmatched record, got %v", unmatched)
	}
	if unmatched[0].Filename != "opinion.txt" {
		t.Errorf("Expected filename opinion.txt, got %q", unmatched[0].Filename)
	}
	if unmatched[0].Shorthand != "1 F.2d 2" {
		t.Errorf("Expected shorthand %q, got %q", "1 F.2d 2", unmatched[0].Shorthand)
	}
	if got := tally.Count("1 F.2d 2"); got != 1 {
		t.Errorf("Expected canonical count 1, got %d", got)
	}
}

func TestConsolidate_RepeatedCanonicalResetsCount(t *testing.T) {
	engine := NewEngine()

	// Re-inserting a canonical resets its count to 1. This exact
	// non-incrementing behavior is relied on downstream; do not "fix" it.
	tally, unmatched := engine.Consolidate([]string{
		"1 F.2d 2",
		"1 F.2d 2",
	}, "opinion.txt")

	if len(unmatched) != 0 {
		t.Fatalf("Expected no unmatched records, got %v", unmatched)
	}
	if got := tally.Count("1 F.2d 2"); got != 1 {
		t.Errorf("Expected repeated canonical to reset to 1, got %d", got)
	}
	if tally.Len() != 1 {
		t.Errorf("Expected 1 distinct citation, got %d", tally.Len())
	}
}

func TestConsolidate_ResetDiscardsPinIncrements(t *testing.T) {
	engine := NewEngine()

	tally, _ := engine.Consolidate([]string{
		"1 F.2d 2",
		"1 F.2d 2, at 5",
		"1 F.2d 2",
	}, "opinion.txt")

	// The final canonical occurrence resets the pin-incremented count.
	if got := tally.Count("1 F.2d 2"); got != 1 {
		t.Errorf("Expected count reset to 1 after re-insert, got %d", got)
	}
}

func TestConsolidate_ShorthandIncrementsEverySubstringHit(t *testing.T) {
	engine := NewEngine()

	// The shorthand scan is substring-based with no early exit: a
	// shorthand contained in several earlier citations increments all of
	// them, false positives included.
	tally, unmatched := engine.Consolidate([]string{
		"11 F.2d 22",
		"111 F.2d 223",
		"1 F.2d 2, at 9",
	}, "opinion.txt")

	if len(unmatched) != 0 {
		t.Fatalf("Expected no unmatched records, got %v", unmatched)
	}
	if got := tally.Count("11 F.2d 22"); got != 2 {
		t.Errorf("Expected first citation incremented to 2, got %d", got)
	}
	if got := tally.Count("111 F.2d 223"); got != 2 {
		t.Errorf("Expected second citation incremented to 2, got %d", got)
	}
}

func TestConsolidate_OnlyEarlierCitationsVisible(t *testing.T) {
	engine := NewEngine()

	tally, unmatched := engine.Consolidate([]string{
		"3 U.S. 4",
		"1 F.2d 2, at 5",
		"1 F.2d 2",
	}, "opinion.txt")

	if len(unmatched) != 1 {
		t.Fatalf("Expected 1 unmatched record, got %v", unmatched)
	}
	if got := tally.Count("3 U.S. 4"); got != 1 {
		t.Errorf("Expected unrelated citation untouched, got %d", got)
	}
}

func TestConsolidate_Empty(t *testing.T) {
	engine := NewEngine()

	tally, unmatched := engine.Consolidate(nil, "empty.txt")

	if tally.Len() != 0 {
		t.Errorf("Expected empty tally, got %d entries", tally.Len())
	}
	if len(unmatched) != 0 {
		t.Errorf("Expected no unmatched records, got %v", unmatched)
	}
	if records := tally.Records("empty.txt"); len(records) != 0 {
		t.Errorf("Expected no records, got %v", records)
	}
}

func TestConsolidate_RecordsInInsertionOrder(t *testing.T) {
	engine := NewEngine()

	tally, _ := engine.Consolidate([]string{
		"3 U.S. 4",
		"1 F.2d 2",
		"3 U.S. 4, at 6",
	}, "opinion.txt")

	records := tally.Records("opinion.txt")
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Citation != "3 U.S. 4" || records[0].Count != 2 {
		t.Errorf("Expected first record 3 U.S. 4 with count 2, got %+v", records[0])
	}
	if records[1].Citation != "1 F.2d 2" || records[1].Count != 1 {
		t.Errorf("Expected second record 1 F.2d 2 with count 1, got %+v", records[1])
	}
}

func TestShorthand(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1 F.2d 2, at 5", "1 F.2d 2"},
		{"1 F.2d 2 at 5", "1 F.2d 2"},
		{"1 F.2d at 5", "1 F.2d"},
		{"no separator here", "no separator here"},
	}

	for _, tc := range cases {
		if got := Shorthand(tc.raw); got != tc.want {
			t.Errorf("Shorthand(%q): expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}
