// Package menu holds the display model built from Nutrislice menu weeks,
// the school resolver and the output formatters.
package menu

import (
	"encoding/json"
	"strings"
	"time"

	"nutricli/apiclients/nutrislice"
)

// Item is a single food item on a day's menu. Entree reports whether the
// item appeared under an entree section heading.
type Item struct {
	Name   string
	Entree bool
}

// MarshalJSON implements the json.Marshaler interface, flattening an Item
// to its bare name so JSON output keeps the upstream-compatible shape of
// plain string arrays.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Name)
}

// Day is the view-model for a single day's menus.
type Day struct {
	Date      string `json:"date"`
	Weekday   string `json:"day_of_week"`
	Breakfast []Item `json:"breakfast"`
	Lunch     []Item `json:"lunch"`
}

// NewDay builds a Day for date from the fetched breakfast and lunch menu
// weeks.
func NewDay(date time.Time, breakfast, lunch nutrislice.WeekMenu) Day {
	dateStr := date.Format("2006-01-02")
	return Day{
		Date:      dateStr,
		Weekday:   date.Weekday().String(),
		Breakfast: ItemsForDay(breakfast, dateStr),
		Lunch:     ItemsForDay(lunch, dateStr),
	}
}

// ItemsForDay flattens the menu week entries for the given "YYYY-MM-DD"
// date into display items. Section-title markers are consumed to tag the
// items that follow them: items under a section whose title contains
// "ENTREE" are entrees. Repeated food names within the day are
// deduplicated, keeping the first occurrence. The result is never nil
// so empty meals encode to JSON as empty arrays.
func ItemsForDay(week nutrislice.WeekMenu, date string) []Item {
	items := []Item{}
	day, ok := week.Day(date)
	if !ok {
		return items
	}

	seen := make(map[string]bool)
	inEntreeSection := false
	for _, entry := range day.Items {
		if entry.SectionTitle {
			inEntreeSection = strings.Contains(strings.ToUpper(entry.Text), "ENTREE")
			continue
		}
		name := string(entry.Food)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		items = append(items, Item{Name: name, Entree: inEntreeSection})
	}
	return items
}

// EntreesOnly filters items to entrees, never returning nil. Applying
// it to already-filtered items changes nothing.
func EntreesOnly(items []Item) []Item {
	entrees := []Item{}
	for _, item := range items {
		if item.Entree {
			entrees = append(entrees, item)
		}
	}
	return entrees
}

// FilterEntrees applies the entrees-only filter to every meal of every
// day.
func FilterEntrees(days []Day) []Day {
	filtered := make([]Day, len(days))
	for i, day := range days {
		day.Breakfast = EntreesOnly(day.Breakfast)
		day.Lunch = EntreesOnly(day.Lunch)
		filtered[i] = day
	}
	return filtered
}
