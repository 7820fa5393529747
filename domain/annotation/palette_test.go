package annotation

import "testing"

func TestClassColors(t *testing.T) {
	if got := ClassColors(0); got != nil {
		t.Fatalf("expected nil for zero classes, got %v", got)
	}
	got := ClassColors(3)
	if len(got) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(got))
	}
	for i, c := range got {
		if c != defaultPalette[i] {
			t.Fatalf("class %d: expected fixed palette color %s, got %s", i, defaultPalette[i], c)
		}
	}
}

func TestClassColors_ExtendsPastFixedPalette(t *testing.T) {
	n := len(defaultPalette) + 4
	got := ClassColors(n)
	if len(got) != n {
		t.Fatalf("expected %d colors, got %d", n, len(got))
	}
	seen := make(map[string]bool)
	for _, c := range got {
		if seen[c] {
			t.Fatalf("duplicate generated color %s", c)
		}
		seen[c] = true
	}
	// Deterministic: a second call yields the same sequence.
	again := ClassColors(n)
	for i := range got {
		if got[i] != again[i] {
			t.Fatalf("class colors not deterministic at %d: %s vs %s", i, got[i], again[i])
		}
	}
}

func TestParseHex_FallsBackOnGarbage(t *testing.T) {
	good := ParseHex("#FF6B6B")
	bad := ParseHex("not-a-color")
	if good != bad {
		// Both should resolve; garbage falls back to the first palette entry,
		// which happens to be the same value here.
		t.Fatalf("expected fallback to first palette entry, got %v", bad)
	}
}
