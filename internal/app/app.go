// Package app wires configuration, logging, and the editor session into
// the richnote command-line tool. It exposes a small set of commands for
// working with note archives: inspect, normalize, convert, and watch.
package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dshills/richnote/internal/config"
)

// Options configures a new Application.
type Options struct {
	// ConfigPath is the configuration file to load. Empty means the
	// default location; a missing file is not an error.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer

	// Stderr receives log output. Defaults to os.Stderr.
	Stderr io.Writer
}

// Application runs richnote commands against note archives.
type Application struct {
	cfg    *config.Config
	logger *Logger
	stdout io.Writer

	shutdownOnce sync.Once
	done         chan struct{}
}

// New creates an application, loading configuration and setting up
// logging. Configuration errors fail here rather than mid-command.
func New(opts Options) (*Application, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: opts.Stderr,
		Prefix: "richnote",
	})

	return &Application{
		cfg:    cfg,
		logger: logger,
		stdout: opts.Stdout,
		done:   make(chan struct{}),
	}, nil
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Run dispatches a command with its arguments. The first element of
// args is the command name.
func (app *Application) Run(args []string) error {
	if len(args) == 0 {
		return ErrMissingCommand
	}
	command, rest := args[0], args[1:]

	app.logger.Debug("running command %q with %d argument(s)", command, len(rest))

	switch command {
	case "inspect":
		return app.runInspect(rest)
	case "normalize":
		return app.runNormalize(rest)
	case "convert":
		return app.runConvert(rest)
	case "watch":
		return app.runWatch(rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// Shutdown stops a running watch command. It is safe to call from a
// signal handler and safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		close(app.done)
	})
}
