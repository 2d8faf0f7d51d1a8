package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"nutricli/app"
)

// main is the entry point for the application. It initializes the core
// application logic, builds the CLI interface, and executes the command
// provided by the user.
func main() {
	// Menus go to stdout; logs go to stderr so piped JSON stays clean.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})

	// Create the core application object which contains the business logic.
	application := app.New(os.Stdout, slog.New(logger))

	// Build the CLI command structure, injecting the application logic.
	cmd := BuildCLI(application, logger)

	// Run the CLI, passing command-line arguments.
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
