package timeutil

import "testing"

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0min"},
		{30, "30min"},
		{60, "1h"},
		{90, "1h30"},
		{125, "2h05"},
		{-10, "0min"},
	}
	for _, tc := range cases {
		if got := FormatMinutes(tc.minutes); got != tc.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
