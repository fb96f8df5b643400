package model

import "testing"

func TestFormatReadingTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m 0s"},
		{125, "2m 5s"},
		{3600, "1h 0s"},
		{3661, "1h 1m 1s"},
		{3725, "1h 2m 5s"},
		{-5, "0s"},
	}

	for _, tt := range tests {
		if got := FormatReadingTime(tt.seconds); got != tt.want {
			t.Errorf("FormatReadingTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
