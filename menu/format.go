package menu

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects the output format for formatted menus.
type Mode int

// The available output modes. Raw output bypasses the formatter
// entirely and is handled by the caller.
const (
	ModeFull Mode = iota
	ModeCompact
	ModeJSON
)

// compactItemLimit is the number of items shown per meal in compact
// mode before truncation.
const compactItemLimit = 3

// daySeparator divides days in full-mode output.
var daySeparator = strings.Repeat("─", 40)

// headerStyle styles the full-mode date header. On non-terminal output
// it degrades to plain text.
var headerStyle = lipgloss.NewStyle().Bold(true)

// Format renders one or more days in the requested mode. JSON mode
// emits a single object for one day and an array for several, with
// stable field names.
func Format(days []Day, mode Mode) (string, error) {
	switch mode {
	case ModeJSON:
		var v any = days
		if len(days) == 1 {
			v = days[0]
		}
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode menu as JSON: %w", err)
		}
		return string(b), nil

	case ModeCompact:
		lines := make([]string, len(days))
		for i, day := range days {
			lines[i] = formatCompact(day)
		}
		return strings.Join(lines, "\n"), nil

	case ModeFull:
		sections := make([]string, len(days))
		for i, day := range days {
			sections[i] = formatFull(day)
		}
		return strings.Join(sections, "\n\n"+daySeparator+"\n\n"), nil
	}

	return "", fmt.Errorf("unknown output mode %d", mode)
}

// formatFull renders a day with a date header and one item per line,
// grouped by meal.
func formatFull(day Day) string {
	lines := []string{
		headerStyle.Render(fmt.Sprintf("📅 %s, %s", day.Weekday, day.Date)),
		"",
	}
	lines = append(lines, mealLines("🥣 Breakfast", day.Breakfast)...)
	lines = append(lines, "")
	lines = append(lines, mealLines("🍽️  Lunch", day.Lunch)...)
	return strings.Join(lines, "\n")
}

// mealLines renders one meal group of a full-mode day.
func mealLines(heading string, items []Item) []string {
	if len(items) == 0 {
		return []string{heading + ": No menu available"}
	}
	lines := []string{heading + ":"}
	for _, item := range items {
		lines = append(lines, "   • "+item.Name)
	}
	return lines
}

// formatCompact renders a day on a single line, truncating each meal's
// item list after compactItemLimit entries.
func formatCompact(day Day) string {
	return fmt.Sprintf("%s: 🥣 %s | 🍽️ %s",
		day.Weekday, compactItems(day.Breakfast), compactItems(day.Lunch))
}

// compactItems joins item names, truncating with a "(+N more)" suffix
// where N is the count beyond the limit.
func compactItems(items []Item) string {
	if len(items) == 0 {
		return "None"
	}
	names := make([]string, 0, compactItemLimit)
	for i, item := range items {
		if i == compactItemLimit {
			break
		}
		names = append(names, item.Name)
	}
	joined := strings.Join(names, ", ")
	if extra := len(items) - compactItemLimit; extra > 0 {
		joined += fmt.Sprintf(" (+%d more)", extra)
	}
	return joined
}
