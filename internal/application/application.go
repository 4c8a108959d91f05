package application

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/combinatorics-calculator/internal/calculator"
	"github.com/eugenenazirov/combinatorics-calculator/internal/config"
	"github.com/eugenenazirov/combinatorics-calculator/internal/console"
	"github.com/eugenenazirov/combinatorics-calculator/internal/storage"
)

// App encapsulates the application dependencies and the interactive console.
type App struct {
	storage storage.Storage
	console *console.Console
	logger  *zap.Logger
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, in io.Reader, out io.Writer) *App {
	store := storage.NewMemoryStorage()
	term := console.New(calculator.New(), store, logger, in, out,
		console.WithDisplayLimit(cfg.DisplayLimit),
		console.WithColor(UseColor(cfg.Color, out)),
	)

	return &App{
		storage: store,
		console: term,
		logger:  logger,
	}
}

// Storage returns the symbol store of the current session.
func (a *App) Storage() storage.Storage {
	return a.storage
}

// Run serves the interactive console until the user exits.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("calculator starting")
	err := a.console.Run(ctx)
	a.logger.Debug("calculator stopped")
	return err
}

// UseColor resolves the configured colour mode against the output device.
func UseColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return console.IsTerminal(out)
	}
}
