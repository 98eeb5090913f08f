package progadmin

import "testing"

func TestCalculateLevel(t *testing.T) {
	cases := []struct {
		name                           string
		problems, ideations, solutions int
		want                           int
	}{
		{"no activity", 0, 0, 0, LevelLow},
		{"few problems pins low despite everything else", 4, 100, 100, LevelLow},
		{"boundary five problems alone stays low", 5, 0, 0, LevelLow},
		{"medium across all thresholds", 11, 6, 4, LevelMedium},
		{"medium boundary not met on solutions", 11, 6, 3, LevelLow},
		{"high across all thresholds", 26, 16, 11, LevelHigh},
		{"high problems but medium ideations degrades", 26, 15, 11, LevelMedium},
		{"exactly at high boundary is medium", 25, 16, 11, LevelMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calculateLevel(tc.problems, tc.ideations, tc.solutions)
			if got != tc.want {
				t.Fatalf("calculateLevel(%d,%d,%d) = %d, want %d", tc.problems, tc.ideations, tc.solutions, got, tc.want)
			}
		})
	}
}

func TestLevelColor(t *testing.T) {
	if levelColor(LevelLow) != "red" || levelColor(LevelMedium) != "yellow" || levelColor(LevelHigh) != "green" {
		t.Fatalf("unexpected color mapping")
	}
	if levelColor(0) != "" {
		t.Fatalf("unknown level should map to empty color")
	}
}
