package grapheme

import "testing"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "👨‍👩‍👧‍👦" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if Split("") != nil {
		t.Fatalf("split of empty text should be nil")
	}
}

func TestCellWidth(t *testing.T) {
	cases := []struct {
		cluster string
		col     int
		tab     int
		want    int
	}{
		{"a", 0, 4, 1},
		{"世", 0, 4, 2},
		{"\t", 0, 4, 4},
		{"\t", 1, 4, 3},
		{"\t", 3, 8, 5},
		{"\t", 0, 0, 4},
	}
	for _, tc := range cases {
		if got := CellWidth(tc.cluster, tc.col, tc.tab); got != tc.want {
			t.Fatalf("CellWidth(%q,%d,%d)=%d, want %d", tc.cluster, tc.col, tc.tab, got, tc.want)
		}
	}
}

func TestFit_ExpandsTabsAndClips(t *testing.T) {
	got, w := Fit("\tab", -1, 4)
	if got != "    ab" || w != 6 {
		t.Fatalf("fit unclipped: got (%q,%d), want (%q,%d)", got, w, "    ab", 6)
	}

	got, w = Fit("abcdef", 3, 4)
	if got != "abc" || w != 3 {
		t.Fatalf("fit clipped: got (%q,%d), want (%q,%d)", got, w, "abc", 3)
	}

	// A wide cluster that would straddle the edge is dropped.
	got, w = Fit("a世b", 2, 4)
	if got != "a" || w != 1 {
		t.Fatalf("fit wide: got (%q,%d), want (%q,%d)", got, w, "a", 1)
	}
}
