package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eugenenazirov/combinatorics-calculator/internal/calculator"
	"github.com/eugenenazirov/combinatorics-calculator/internal/storage"
)

const defaultDisplayLimit = 50

// step tells the session loop what to do after a menu action.
type step int

const (
	stepContinue step = iota
	stepRestart
	stepExit
)

// Console runs the interactive menu on top of a calculator and a symbol store.
type Console struct {
	calculator calculator.Calculator
	storage    storage.Storage
	logger     *zap.Logger

	in  *bufio.Reader
	out io.Writer

	displayLimit int
	newSessionID func() string

	bold    *color.Color
	heading *color.Color
	alert   *color.Color
	note    *color.Color

	options []option
}

// Option configures Console behaviour.
type Option func(*Console)

// WithDisplayLimit sets the largest result set that is listed in full.
func WithDisplayLimit(limit int) Option {
	return func(c *Console) {
		c.displayLimit = limit
	}
}

// WithColor enables or disables ANSI colours regardless of the output device.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		for _, col := range []*color.Color{c.bold, c.heading, c.alert, c.note} {
			if enabled {
				col.EnableColor()
			} else {
				col.DisableColor()
			}
		}
	}
}

// WithSessionIDs overrides the session id source, primarily for tests.
func WithSessionIDs(gen func() string) Option {
	return func(c *Console) {
		c.newSessionID = gen
	}
}

// New constructs a Console reading from in and writing to out.
func New(calc calculator.Calculator, store storage.Storage, logger *zap.Logger, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		calculator:   calc,
		storage:      store,
		logger:       logger,
		in:           bufio.NewReader(in),
		out:          out,
		displayLimit: defaultDisplayLimit,
		newSessionID: uuid.NewString,
		bold:         color.New(color.Bold),
		heading:      color.New(color.FgCyan, color.Bold),
		alert:        color.New(color.FgRed),
		note:         color.New(color.FgYellow),
	}
	c.options = c.menu()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run collects a symbol set and serves the menu until the user exits, input
// ends, or ctx is cancelled. Re-entering elements restarts collection in place.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := c.session(ctx)
		if err != nil {
			return err
		}
		if next != stepRestart {
			return nil
		}
	}
}

func (c *Console) session(ctx context.Context) (step, error) {
	c.printBanner()

	line, err := c.prompt("\nEnter the elements separated by spaces (e.g. a b c d): ")
	if err != nil {
		return endOfInput(err)
	}

	symbols, err := storage.ParseSymbols(line)
	if err == nil {
		err = c.storage.SetSymbols(symbols)
	}
	if err != nil {
		c.logger.Info("invalid input set, ending session", zap.Error(err))
		c.printError(err)
		return stepExit, nil
	}

	logger := c.logger.With(zap.String("session_id", c.newSessionID()))
	logger.Info("session started", zap.Int("elements", len(symbols)))
	c.printSet(symbols)

	for {
		if err := ctx.Err(); err != nil {
			return stepExit, err
		}

		c.printMenu()
		choice, err := c.prompt("\nSelect an option (1-6): ")
		if err != nil {
			return endOfInput(err)
		}

		opt, err := c.lookup(choice)
		if err != nil {
			logger.Info("invalid menu choice", zap.String("choice", choice))
			c.printError(err)
			continue
		}

		next, err := opt.handler(logger)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stepExit, nil
			}
			return stepExit, fmt.Errorf("option %s: %w", opt.key, err)
		}
		if next != stepContinue {
			return next, nil
		}
	}
}

func (c *Console) lookup(choice string) (option, error) {
	for _, opt := range c.options {
		if opt.key == choice {
			return opt, nil
		}
	}
	return option{}, ErrInvalidMenuChoice
}

func (c *Console) prompt(text string) (string, error) {
	c.printf("%s", text)
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// endOfInput treats a closed input stream as a regular exit.
func endOfInput(err error) (step, error) {
	if errors.Is(err, io.EOF) {
		return stepExit, nil
	}
	return stepExit, fmt.Errorf("read input: %w", err)
}
