package service

import "testing"

func TestOversEncoding(t *testing.T) {
	cases := []struct {
		balls int
		overs float64
	}{
		{0, 0},
		{1, 0.1},
		{5, 0.5},
		{6, 1.0},
		{7, 1.1},
		{22, 3.4},
		{120, 20.0},
	}
	for _, tc := range cases {
		if got := oversFromBalls(tc.balls); got != tc.overs {
			t.Errorf("oversFromBalls(%d) = %v, want %v", tc.balls, got, tc.overs)
		}
		if got := ballsFromOvers(tc.overs); got != tc.balls {
			t.Errorf("ballsFromOvers(%v) = %d, want %d", tc.overs, got, tc.balls)
		}
	}
}

func TestBestBowling(t *testing.T) {
	cases := []struct {
		current  string
		wickets  int
		conceded int
		want     string
	}{
		{"0/0", 0, 12, "0/0"},
		{"0/0", 2, 18, "2/18"},
		{"2/18", 2, 10, "2/10"},
		{"3/25", 2, 5, "3/25"},
		{"", 0, 0, "0/0"},
	}
	for _, tc := range cases {
		if got := bestBowling(tc.current, tc.wickets, tc.conceded); got != tc.want {
			t.Errorf("bestBowling(%q, %d, %d) = %q, want %q", tc.current, tc.wickets, tc.conceded, got, tc.want)
		}
	}
}
