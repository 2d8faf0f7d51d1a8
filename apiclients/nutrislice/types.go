package nutrislice

import (
	"encoding/json"
)

// MealType is a menu-type path segment in menu week requests.
type MealType string

// The meal types published by Nutrislice districts.
const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
)

// School represents a school record as returned by the /menu/api/schools
// endpoint. The slug is the identifier used in subsequent menu queries.
type School struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// FlattenedName flattens an obj.Name string to a string.
type FlattenedName string

// UnmarshalJSON implements the json.Unmarshaler interface for a FlattenedName,
// extracting the "name" field of the object pointed to by the struct tag into
// the string field. A JSON null (menu items without a food record) becomes the
// empty string.
func (fn *FlattenedName) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*fn = ""
		return nil
	}
	var helper struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &helper); err != nil {
		return err
	}
	*fn = FlattenedName(helper.Name)
	return nil
}

// WeekMenu is the top-level structure of a menu week API response.
type WeekMenu struct {
	StartDate string    `json:"start_date"`
	Days      []MenuDay `json:"days"`
}

// MenuDay is a single day within a WeekMenu. Dates are "YYYY-MM-DD"
// strings upstream.
type MenuDay struct {
	Date  string     `json:"date"`
	Items []MenuItem `json:"menu_items"`
}

// MenuItem is one entry in a day's menu_items list. Entries are either
// section-title markers (SectionTitle true, Text set) or food entries
// whose nested food object is flattened to its name.
type MenuItem struct {
	SectionTitle bool          `json:"is_section_title"`
	Text         string        `json:"text"`
	Food         FlattenedName `json:"food"`
}

// Day returns the day matching the given "YYYY-MM-DD" date, if present.
func (wm WeekMenu) Day(date string) (MenuDay, bool) {
	for _, d := range wm.Days {
		if d.Date == date {
			return d, true
		}
	}
	return MenuDay{}, false
}
