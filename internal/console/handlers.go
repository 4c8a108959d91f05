package console

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/combinatorics-calculator/internal/calculator"
)

type option struct {
	key     string
	label   string
	handler func(logger *zap.Logger) (step, error)
}

func (c *Console) menu() []option {
	return []option{
		{key: "1", label: "Permutations of distinct objects", handler: c.handlePermutationsDistinct},
		{key: "2", label: "Permutations with repeated objects", handler: c.handlePermutationsRepeated},
		{key: "3", label: "Combinations of distinct objects", handler: c.handleCombinationsDistinct},
		{key: "4", label: "Combinations with repeated objects", handler: c.handleCombinationsRepeated},
		{key: "5", label: "Enter a new set", handler: c.handleRestart},
		{key: "6", label: "Exit", handler: c.handleExit},
	}
}

func (c *Console) handlePermutationsDistinct(logger *zap.Logger) (step, error) {
	c.printHeading("PERMUTATIONS OF DISTINCT OBJECTS")
	return c.compute(logger, "permutations_distinct", -1, func(symbols []string) (calculator.Result, error) {
		return c.calculator.PermutationsDistinct(symbols)
	})
}

func (c *Console) handlePermutationsRepeated(logger *zap.Logger) (step, error) {
	c.printHeading("PERMUTATIONS WITH REPEATED OBJECTS")
	return c.compute(logger, "permutations_repeated", -1, func(symbols []string) (calculator.Result, error) {
		if !calculator.HasRepeats(symbols) {
			c.printNote("Note: there are no repeated elements. The result equals permutations of distinct objects.")
		}
		return c.calculator.PermutationsRepeated(symbols)
	})
}

func (c *Console) handleCombinationsDistinct(logger *zap.Logger) (step, error) {
	c.printHeading("COMBINATIONS OF DISTINCT OBJECTS")
	return c.withSelection(logger, "combinations_distinct", c.calculator.CombinationsDistinct)
}

func (c *Console) handleCombinationsRepeated(logger *zap.Logger) (step, error) {
	c.printHeading("COMBINATIONS WITH REPEATED OBJECTS")
	return c.withSelection(logger, "combinations_repeated", c.calculator.CombinationsRepeated)
}

func (c *Console) handleRestart(logger *zap.Logger) (step, error) {
	logger.Info("re-entering elements")
	return stepRestart, nil
}

func (c *Console) handleExit(logger *zap.Logger) (step, error) {
	logger.Info("session finished")
	c.printf("\nThanks for using the calculator. Goodbye!\n")
	return stepExit, nil
}

// withSelection asks for the selection size r before running fn.
func (c *Console) withSelection(logger *zap.Logger, operation string, fn func([]string, int) (calculator.Result, error)) (step, error) {
	symbols, err := c.storage.GetSymbols()
	if err != nil {
		return stepExit, err
	}

	raw, err := c.prompt(fmt.Sprintf("How many objects do you want to select? (1-%d): ", len(symbols)))
	if err != nil {
		return stepExit, err
	}

	r, err := parseSelection(raw)
	if err != nil {
		logger.Info("malformed selection size", zap.String("input", raw))
		c.printError(err)
		return stepContinue, nil
	}

	return c.compute(logger, operation, r, func(symbols []string) (calculator.Result, error) {
		return fn(symbols, r)
	})
}

// compute runs fn against the stored symbols and renders its outcome.
// Calculation errors are reported to the user and keep the menu running.
func (c *Console) compute(logger *zap.Logger, operation string, r int, fn func([]string) (calculator.Result, error)) (step, error) {
	symbols, err := c.storage.GetSymbols()
	if err != nil {
		return stepExit, err
	}

	fields := []zap.Field{zap.String("operation", operation), zap.Int("n", len(symbols))}
	if r >= 0 {
		fields = append(fields, zap.Int("r", r))
	}

	start := time.Now()
	result, err := fn(symbols)
	elapsed := time.Since(start)

	if err != nil {
		logger.Info("computation rejected", append(fields, zap.Error(err))...)
		c.printError(err)
		return stepContinue, nil
	}

	logger.Debug("computation finished", append(fields,
		zap.Int64("total", result.Total),
		zap.Duration("duration", elapsed),
	)...)
	c.printResult(result)
	return stepContinue, nil
}

func parseSelection(raw string) (int, error) {
	r, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInteger, raw)
	}
	return r, nil
}
