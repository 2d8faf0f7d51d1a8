package menu

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"nutricli/apiclients/nutrislice"
)

func testDay() Day {
	return Day{
		Date:    "2026-03-02",
		Weekday: "Monday",
		Breakfast: []Item{
			{Name: "Pancakes", Entree: true},
			{Name: "Milk"},
		},
		Lunch: []Item{
			{Name: "Cheese Pizza", Entree: true},
			{Name: "Turkey Sandwich", Entree: true},
			{Name: "Apple Slices"},
			{Name: "Green Beans"},
			{Name: "Milk"},
		},
	}
}

func TestFormatFull(t *testing.T) {
	out, err := Format([]Day{testDay()}, ModeFull)
	if err != nil {
		t.Fatalf("Format returned an unexpected error: %v", err)
	}

	for _, want := range []string{
		"Monday, 2026-03-02",
		"🥣 Breakfast:",
		"   • Pancakes",
		"🍽️  Lunch:",
		"   • Green Beans",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("full output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatFullEmptyMeal(t *testing.T) {
	day := testDay()
	day.Breakfast = nil

	out, err := Format([]Day{day}, ModeFull)
	if err != nil {
		t.Fatalf("Format returned an unexpected error: %v", err)
	}
	if !strings.Contains(out, "🥣 Breakfast: No menu available") {
		t.Errorf("expected a no-menu marker, got:\n%s", out)
	}
}

func TestFormatFullMultipleDays(t *testing.T) {
	tuesday := testDay()
	tuesday.Date = "2026-03-03"
	tuesday.Weekday = "Tuesday"

	out, err := Format([]Day{testDay(), tuesday}, ModeFull)
	if err != nil {
		t.Fatalf("Format returned an unexpected error: %v", err)
	}
	if !strings.Contains(out, daySeparator) {
		t.Error("expected a separator between days")
	}
	if !strings.Contains(out, "Tuesday, 2026-03-03") {
		t.Errorf("expected the second day header, got:\n%s", out)
	}
}

// TestFormatCompactTruncation checks that a meal with more items than
// the threshold shows exactly the threshold count plus a "+N more"
// suffix where N = total - threshold.
func TestFormatCompactTruncation(t *testing.T) {
	out, err := Format([]Day{testDay()}, ModeCompact)
	if err != nil {
		t.Fatalf("Format returned an unexpected error: %v", err)
	}

	want := "Monday: 🥣 Pancakes, Milk | 🍽️ Cheese Pizza, Turkey Sandwich, Apple Slices (+2 more)"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestFormatCompactEmpty(t *testing.T) {
	day := Day{Date: "2026-03-02", Weekday: "Monday"}
	out, err := Format([]Day{day}, ModeCompact)
	if err != nil {
		t.Fatalf("Format returned an unexpected error: %v", err)
	}
	if got, want := out, "Monday: 🥣 None | 🍽️ None"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

// TestFormatJSONShape checks single-day object versus multi-day array
// output and the stable field names.
func TestFormatJSONShape(t *testing.T) {
	single, err := Format([]Day{testDay()}, ModeJSON)
	if err != nil {
		t.Fatalf("Format returned an unexpected error: %v", err)
	}
	if !strings.HasPrefix(single, "{") {
		t.Errorf("single day should encode as an object, got:\n%s", single)
	}

	var decoded struct {
		Date      string   `json:"date"`
		DayOfWeek string   `json:"day_of_week"`
		Breakfast []string `json:"breakfast"`
		Lunch     []string `json:"lunch"`
	}
	if err := json.Unmarshal([]byte(single), &decoded); err != nil {
		t.Fatalf("JSON output did not decode: %v", err)
	}
	if got, want := decoded.DayOfWeek, "Monday"; got != want {
		t.Errorf("got day_of_week %s want %s", got, want)
	}

	multi, err := Format([]Day{testDay(), testDay()}, ModeJSON)
	if err != nil {
		t.Fatalf("Format returned an unexpected error: %v", err)
	}
	if !strings.HasPrefix(multi, "[") {
		t.Errorf("multiple days should encode as an array, got:\n%s", multi)
	}
}

// TestFormatJSONEmptyMeals checks that meals with no items encode as
// empty arrays, not null, both for a day with no menus and for a day
// emptied by the entrees-only filter.
func TestFormatJSONEmptyMeals(t *testing.T) {
	empty := NewDay(
		time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		nutrislice.WeekMenu{}, nutrislice.WeekMenu{},
	)
	noEntrees := FilterEntrees([]Day{{
		Date:      "2026-03-05",
		Weekday:   "Thursday",
		Breakfast: []Item{{Name: "Milk"}},
		Lunch:     []Item{{Name: "Green Beans"}},
	}})[0]

	for _, day := range []Day{empty, noEntrees} {
		out, err := Format([]Day{day}, ModeJSON)
		if err != nil {
			t.Fatalf("Format returned an unexpected error: %v", err)
		}
		for _, want := range []string{`"breakfast": []`, `"lunch": []`} {
			if !strings.Contains(out, want) {
				t.Errorf("JSON output should contain %q, got:\n%s", want, out)
			}
		}
		if strings.Contains(out, "null") {
			t.Errorf("JSON output should not contain null, got:\n%s", out)
		}
	}
}

// TestFormatJSONMatchesFull checks that no items are dropped or
// duplicated by the choice of output mode.
func TestFormatJSONMatchesFull(t *testing.T) {
	day := testDay()

	jsonOut, err := Format([]Day{day}, ModeJSON)
	if err != nil {
		t.Fatalf("Format returned an unexpected error: %v", err)
	}
	var decoded struct {
		Breakfast []string `json:"breakfast"`
		Lunch     []string `json:"lunch"`
	}
	if err := json.Unmarshal([]byte(jsonOut), &decoded); err != nil {
		t.Fatalf("JSON output did not decode: %v", err)
	}

	fullOut, err := Format([]Day{day}, ModeFull)
	if err != nil {
		t.Fatalf("Format returned an unexpected error: %v", err)
	}

	var fromFull []string
	for _, line := range strings.Split(fullOut, "\n") {
		if name, ok := strings.CutPrefix(line, "   • "); ok {
			fromFull = append(fromFull, name)
		}
	}

	fromJSON := append(append([]string{}, decoded.Breakfast...), decoded.Lunch...)
	if diff := cmp.Diff(fromFull, fromJSON); diff != "" {
		t.Errorf("item sets differ between modes (-full +json):\n%s", diff)
	}
}

// TestItemMarshalsAsName checks the flattened JSON form of an Item.
func TestItemMarshalsAsName(t *testing.T) {
	b, err := json.Marshal(Item{Name: "Bean Burrito", Entree: true})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `"Bean Burrito"`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestFormatUnknownMode(t *testing.T) {
	_, err := Format([]Day{testDay()}, Mode(99))
	if err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
	if !strings.Contains(err.Error(), fmt.Sprintf("%d", 99)) {
		t.Errorf("error should name the mode, got: %v", err)
	}
}
