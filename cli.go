package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"nutricli/app"
)

// Applicator defines the interface for the core application logic.
// This allows the CLI to be tested independently of the main app
// implementation.
type Applicator interface {
	ListSchools(ctx context.Context, cfgPath, district string) error
	ShowMenu(ctx context.Context, req app.MenuRequest) error
}

// BuildCLI creates the full CLI command structure for the application.
// It injects the core application logic (the Applicator) into the
// command action.
func BuildCLI(application Applicator, logger *log.Logger) *cli.Command {

	return &cli.Command{
		Name:      "nutricli",
		Usage:     "Fetch school breakfast and lunch menus from Nutrislice",
		UsageText: "nutricli --district DISTRICT [options] [school]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "district",
				Aliases: []string{"d"},
				Usage:   "district slug (found in your school's Nutrislice URL)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to an optional defaults file",
			},
			&cli.BoolFlag{
				Name:    "list-schools",
				Aliases: []string{"l"},
				Usage:   "list all schools in the district",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "specific date (YYYY-MM-DD format)",
			},
			&cli.BoolFlag{
				Name:    "tomorrow",
				Aliases: []string{"t"},
				Usage:   "get tomorrow's menu",
			},
			&cli.BoolFlag{
				Name:    "week",
				Aliases: []string{"w"},
				Usage:   "get this week's menus (Mon-Fri)",
			},
			&cli.BoolFlag{
				Name:    "entrees",
				Aliases: []string{"e"},
				Usage:   "only show entree items (main dishes)",
			},
			&cli.BoolFlag{
				Name:    "compact",
				Aliases: []string{"c"},
				Usage:   "compact output format",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "output as JSON",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "show the raw API response (for debugging)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("verbose") {
				logger.SetLevel(log.DebugLevel)
			}

			if c.Bool("list-schools") {
				return application.ListSchools(ctx, c.String("config"), c.String("district"))
			}

			dates, err := parseDateFlags(c.String("date"), c.Bool("tomorrow"), c.Bool("week"), time.Now())
			if err != nil {
				return err
			}

			return application.ShowMenu(ctx, app.MenuRequest{
				ConfigPath:  c.String("config"),
				District:    c.String("district"),
				Query:       c.Args().First(),
				Dates:       dates,
				EntreesOnly: c.Bool("entrees"),
				Compact:     c.Bool("compact"),
				JSON:        c.Bool("json"),
				Raw:         c.Bool("raw"),
			})
		},
	}
}

// parseDateFlags computes the requested dates from the date-related
// flags, which are mutually exclusive. The default is today; --week
// covers Monday to Friday of the current week.
func parseDateFlags(dateStr string, tomorrow, week bool, now time.Time) ([]time.Time, error) {

	var set int
	for _, b := range []bool{dateStr != "", tomorrow, week} {
		if b {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("--date, --tomorrow and --week flags are mutually exclusive")
	}

	switch {
	case dateStr != "":
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --date format %q: use YYYY-MM-DD", dateStr)
		}
		return []time.Time{date}, nil

	case tomorrow:
		return []time.Time{now.AddDate(0, 0, 1)}, nil

	case week:
		// Days back to Monday, with Go's Sunday-first week numbering.
		offset := (int(now.Weekday()) + 6) % 7
		monday := now.AddDate(0, 0, -offset)
		dates := make([]time.Time, 5)
		for i := range dates {
			dates[i] = monday.AddDate(0, 0, i)
		}
		return dates, nil
	}

	return []time.Time{now}, nil
}
