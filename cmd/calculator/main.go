package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/combinatorics-calculator/internal/application"
	"github.com/eugenenazirov/combinatorics-calculator/internal/config"
	"github.com/eugenenazirov/combinatorics-calculator/internal/logging"
)

func main() {
	overrides, err := parseFlags(os.Args[1:])
	kingpin.FatalIfError(err, "invalid arguments")

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger, os.Stdin, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		logger.Fatal("calculator stopped unexpectedly", zap.Error(err))
	}
}

// parseFlags maps command-line flags onto configuration overrides. Flags
// left unset do not override lower-precedence sources.
func parseFlags(args []string) (*config.CLIOverrides, error) {
	kingpinApp := kingpin.New("combinatorics-calculator", "Permutations and combinations calculator - counts and enumerates arrangements of a set of symbols")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	var displayLimitSet bool
	displayLimit := kingpinApp.Flag("display-limit", "Largest result set listed in full (0 hides every listing)").IsSetByUser(&displayLimitSet).Int()
	logLevel := kingpinApp.Flag("log-level", "Log level: debug, info, warn or error").String()
	logOutput := kingpinApp.Flag("log-output", "Log destination: stderr, stdout or a file path").String()
	colorMode := kingpinApp.Flag("color", "Colour mode: auto, always or never").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return nil, err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if displayLimitSet {
		if *displayLimit < 0 {
			return nil, fmt.Errorf("--display-limit must be >= 0, got %d", *displayLimit)
		}
		overrides.DisplayLimit = displayLimit
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *logOutput != "" {
		overrides.LogOutput = logOutput
	}

	if *colorMode != "" {
		overrides.Color = colorMode
	}

	return overrides, nil
}
