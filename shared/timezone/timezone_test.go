package timezone_test

import (
	"testing"
	"time"

	"maludy/shared/timezone"
)

func TestStartOfDay(t *testing.T) {
	loc := timezone.GetLocation()

	tests := []struct {
		name  string
		input time.Time
	}{
		{
			name:  "midnight stays midnight",
			input: time.Date(2026, 3, 14, 0, 0, 0, 0, loc),
		},
		{
			name:  "late evening truncates",
			input: time.Date(2026, 3, 14, 23, 59, 59, 999, loc),
		},
		{
			name:  "midday truncates",
			input: time.Date(2026, 3, 14, 12, 30, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timezone.StartOfDay(tt.input)

			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
				t.Errorf("expected midnight, got %v", got)
			}

			if got.Year() != 2026 || got.Month() != 3 || got.Day() != 14 {
				t.Errorf("calendar day changed: %v", got)
			}
		})
	}
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2026-08-28")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if got := timezone.Format(parsed, "2006-01-02"); got != "2026-08-28" {
		t.Errorf("expected 2026-08-28, got %s", got)
	}

	if parsed.Location().String() != timezone.GetLocation().String() {
		t.Errorf("expected app location, got %s", parsed.Location())
	}
}

func TestTodayIsMidnight(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("expected local midnight, got %v", today)
	}
}
