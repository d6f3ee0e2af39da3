package domain

import "testing"

func TestLevelForSelectsFirstCoveringTier(t *testing.T) {
	cases := []struct {
		percent float64
		want    string
	}{
		{0, "[ Strangers in the Night ]"},
		{20, "[ Strangers in the Night ]"},
		{20.01, "[ Social Snackers ]"},
		{50, "[ Social Snackers ]"},
		{74.9, "[ Besties ]"},
		{75, "[ Besties ]"},
		{89.99, "[ Partners in Crime ]"},
		{90, "[ Partners in Crime ]"},
		{99.99, "[ Soulmates Forever ]"},
	}

	for _, tc := range cases {
		if got := LevelFor(tc.percent); got.Title != tc.want {
			t.Errorf("LevelFor(%v) = %q, want %q", tc.percent, got.Title, tc.want)
		}
	}
}

func TestLevelsAreOrderedByUpperBound(t *testing.T) {
	prev := -1.0
	for _, lvl := range RelationshipLevels {
		if lvl.UpperBound <= prev {
			t.Fatalf("tier %q breaks ascending order", lvl.Title)
		}
		prev = lvl.UpperBound
	}
	if prev != 100 {
		t.Fatalf("last tier should cover up to 100, got %v", prev)
	}
}
