// Package app provides the application context and dependency management
// for the cds-beard CLI: configuration, logging, and command execution.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/CERNDocumentServer/cds-beard/cmd/cds-beard/cmd"
	"github.com/CERNDocumentServer/cds-beard/pkg/errors"
	"github.com/CERNDocumentServer/cds-beard/pkg/logging"
)

// App represents the cds-beard application with its dependencies.
type App struct {
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}

	logging.Configure(&logging.Config{
		Level:   config.LogLevel,
		Format:  config.LogFormat,
		NoColor: config.NoColor,
	})
	logger := logging.Default()
	if config.Quiet {
		quiet := logger.Level(zerolog.ErrorLevel)
		logger = &quiet
	}

	return &App{
		version: version,
		commit:  commit,
		date:    date,
		config:  config,
		logger:  logger,
	}, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Execute runs the CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	ctx = logging.WithLogger(ctx, a.logger)

	root := cmd.NewRoot(cmd.Info{
		Version: a.version,
		Commit:  a.commit,
		Date:    a.date,
		Workers: a.config.Workers,
		Output:  a.config.Output,
	})
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
