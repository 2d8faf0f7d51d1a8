package main

import (
	"strings"
	"testing"
	"time"
)

func TestParseDateFlagsDefault(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC) // a Wednesday

	dates, err := parseDateFlags("", false, false, now)
	if err != nil {
		t.Fatalf("parseDateFlags returned an unexpected error: %v", err)
	}
	if got, want := len(dates), 1; got != want {
		t.Fatalf("got %d dates want %d", got, want)
	}
	if !dates[0].Equal(now) {
		t.Errorf("got %s want %s", dates[0], now)
	}
}

func TestParseDateFlagsTomorrow(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	dates, err := parseDateFlags("", true, false, now)
	if err != nil {
		t.Fatalf("parseDateFlags returned an unexpected error: %v", err)
	}
	if got, want := dates[0].Format("2006-01-02"), "2026-03-05"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestParseDateFlagsSpecificDate(t *testing.T) {
	dates, err := parseDateFlags("2026-05-01", false, false, time.Now())
	if err != nil {
		t.Fatalf("parseDateFlags returned an unexpected error: %v", err)
	}
	if got, want := dates[0].Format("2006-01-02"), "2026-05-01"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestParseDateFlagsInvalidDate(t *testing.T) {
	_, err := parseDateFlags("01/05/2026", false, false, time.Now())
	if err == nil {
		t.Fatal("expected an error for a malformed date")
	}
	if !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Errorf("error should state the expected format, got: %v", err)
	}
}

// TestParseDateFlagsWeek checks that week mode always yields Monday to
// Friday of the current week, whatever weekday now is.
func TestParseDateFlagsWeek(t *testing.T) {

	tests := []struct {
		name string
		now  time.Time
	}{
		{"from Monday", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{"from Wednesday", time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)},
		{"from Sunday", time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := parseDateFlags("", false, true, tt.now)
			if err != nil {
				t.Fatalf("parseDateFlags returned an unexpected error: %v", err)
			}
			if got, want := len(dates), 5; got != want {
				t.Fatalf("got %d dates want %d", got, want)
			}
			if got, want := dates[0].Format("2006-01-02"), "2026-03-02"; got != want {
				t.Errorf("got week start %s want %s", got, want)
			}
			if got, want := dates[4].Format("2006-01-02"), "2026-03-06"; got != want {
				t.Errorf("got week end %s want %s", got, want)
			}
			if got, want := dates[0].Weekday(), time.Monday; got != want {
				t.Errorf("got weekday %s want %s", got, want)
			}
		})
	}
}

func TestParseDateFlagsMutuallyExclusive(t *testing.T) {

	tests := []struct {
		name     string
		dateStr  string
		tomorrow bool
		week     bool
	}{
		{"tomorrow and week", "", true, true},
		{"date and tomorrow", "2026-05-01", true, false},
		{"date and week", "2026-05-01", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDateFlags(tt.dateStr, tt.tomorrow, tt.week, time.Now())
			if err == nil {
				t.Fatal("expected a mutual-exclusivity error")
			}
			if !strings.Contains(err.Error(), "mutually exclusive") {
				t.Errorf("unexpected error message: %v", err)
			}
		})
	}
}
