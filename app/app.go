// Package app holds the core application logic for nutricli, decoupled
// from the CLI surface so it can be tested without exec.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"nutricli/apiclients/nutrislice"
	"nutricli/config"
	"nutricli/menu"
)

// menuService is the part of the Nutrislice client the app depends on.
type menuService interface {
	GetSchools(ctx context.Context) ([]nutrislice.School, error)
	GetWeekMenu(ctx context.Context, school string, meal nutrislice.MealType, date time.Time) (nutrislice.WeekMenu, error)
	GetWeekMenuRaw(ctx context.Context, school string, meal nutrislice.MealType, date time.Time) ([]byte, error)
}

// sectionStyle styles list-schools group headings.
var sectionStyle = lipgloss.NewStyle().Bold(true)

// MenuRequest carries everything a menu invocation needs, resolved from
// flags by the CLI layer. Dates has one entry per requested day.
type MenuRequest struct {
	ConfigPath  string
	District    string
	Query       string
	Dates       []time.Time
	EntreesOnly bool
	Compact     bool
	JSON        bool
	Raw         bool
}

// App is the central orchestrator for the application's business logic.
// It coordinates configuration, the Nutrislice API client, the school
// resolver and the menu formatter.
type App struct {
	out io.Writer
	log *slog.Logger

	// newService is replaceable in tests.
	newService func(district string, timeout time.Duration) menuService
}

// New creates and returns a new App instance writing to out.
func New(out io.Writer, logger *slog.Logger) *App {
	a := &App{out: out, log: logger}
	a.newService = func(district string, timeout time.Duration) menuService {
		return nutrislice.NewClient(district, &http.Client{Timeout: timeout}, logger)
	}
	return a
}

// ListSchools prints the schools available in a district, grouped by
// school type.
func (a *App) ListSchools(ctx context.Context, cfgPath, district string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	district, err = requireDistrict(district, cfg)
	if err != nil {
		return err
	}

	svc := a.newService(district, cfg.Timeout)
	schools, err := svc.GetSchools(ctx)
	if err != nil {
		return err
	}
	if len(schools) == 0 {
		return fmt.Errorf("no schools found for district %q; check that the district slug is correct", district)
	}

	fmt.Fprintf(a.out, "Schools in %q (%d total):\n\n", district, len(schools))

	sort.Slice(schools, func(i, j int) bool {
		return schools[i].Name < schools[j].Name
	})

	// Group by type based on slug patterns.
	var high, middle, elementary, other []nutrislice.School
	for _, school := range schools {
		switch {
		case strings.Contains(school.Slug, "high-school"):
			high = append(high, school)
		case strings.Contains(school.Slug, "middle-school"):
			middle = append(middle, school)
		case strings.Contains(school.Slug, "elementary"):
			elementary = append(elementary, school)
		default:
			other = append(other, school)
		}
	}

	a.printSchoolSection("HIGH SCHOOLS", high)
	a.printSchoolSection("MIDDLE SCHOOLS", middle)
	a.printSchoolSection("ELEMENTARY SCHOOLS", elementary)
	a.printSchoolSection("OTHER", other)
	return nil
}

// printSchoolSection prints one group of the school listing, skipping
// empty groups.
func (a *App) printSchoolSection(title string, schools []nutrislice.School) {
	if len(schools) == 0 {
		return
	}
	fmt.Fprintln(a.out, sectionStyle.Render(title+":"))
	for _, school := range schools {
		fmt.Fprintf(a.out, "  %-45s %s\n", school.Slug, school.Name)
	}
	fmt.Fprintln(a.out)
}

// ShowMenu resolves the requested school and prints its menus for the
// requested dates in the requested output mode.
func (a *App) ShowMenu(ctx context.Context, req MenuRequest) error {
	cfg, err := config.Load(req.ConfigPath)
	if err != nil {
		return err
	}
	district, err := requireDistrict(req.District, cfg)
	if err != nil {
		return err
	}

	query := req.Query
	if query == "" {
		query = cfg.School
	}
	if query == "" {
		return fmt.Errorf("a school name is required (or use --list-schools)")
	}

	svc := a.newService(district, cfg.Timeout)

	schools, err := svc.GetSchools(ctx)
	if err != nil {
		return err
	}
	school, err := menu.Resolve(query, schools)
	if err != nil {
		return fmt.Errorf("%w\nuse --list-schools to see available schools in %q", err, district)
	}
	a.log.Debug(fmt.Sprintf("resolved %q to school %s", query, school.Slug))

	if req.Raw {
		return a.showRaw(ctx, svc, school.Slug, req.Dates)
	}

	// One breakfast and one lunch fetch per date, sequentially.
	days := make([]menu.Day, 0, len(req.Dates))
	for _, date := range req.Dates {
		breakfast, err := svc.GetWeekMenu(ctx, school.Slug, nutrislice.Breakfast, date)
		if err != nil {
			return err
		}
		lunch, err := svc.GetWeekMenu(ctx, school.Slug, nutrislice.Lunch, date)
		if err != nil {
			return err
		}
		days = append(days, menu.NewDay(date, breakfast, lunch))
	}

	if req.EntreesOnly {
		days = menu.FilterEntrees(days)
	}

	mode := menu.ModeFull
	switch {
	case req.JSON:
		mode = menu.ModeJSON
	case req.Compact:
		mode = menu.ModeCompact
	}

	out, err := menu.Format(days, mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)
	return nil
}

// showRaw prints the unmodified upstream lunch menu response for each
// requested date. For debugging; the shape is not guaranteed stable.
func (a *App) showRaw(ctx context.Context, svc menuService, school string, dates []time.Time) error {
	for _, date := range dates {
		body, err := svc.GetWeekMenuRaw(ctx, school, nutrislice.Lunch, date)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "=== Raw API Response for %s ===\n", date.Format("2006-01-02"))
		fmt.Fprintf(a.out, "%s\n", body)
	}
	return nil
}

// requireDistrict applies the config fallback for the district flag.
func requireDistrict(district string, cfg *config.Config) (string, error) {
	if district == "" {
		district = cfg.District
	}
	if district == "" {
		return "", fmt.Errorf("a district is required: use --district or set one in the config file")
	}
	return district, nil
}
