package console

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/eugenenazirov/combinatorics-calculator/internal/calculator"
)

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 60)
)

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) printBanner() {
	c.printf("\n%s\n%s\n%s\n", heavyRule, c.bold.Sprint("PERMUTATIONS AND COMBINATIONS CALCULATOR"), heavyRule)
}

func (c *Console) printSet(symbols []string) {
	c.printf("\nSet entered: {%s}\n", strings.Join(symbols, ", "))
	c.printf("Total elements: %d\n", len(symbols))

	if !calculator.HasRepeats(symbols) {
		return
	}
	counts := calculator.Multiplicities(symbols)
	parts := make([]string, len(counts))
	for i, m := range counts {
		parts[i] = fmt.Sprintf("%s: %d", m.Symbol, m.Count)
	}
	c.printf("Elements with repetitions: {%s}\n", strings.Join(parts, ", "))
}

func (c *Console) printMenu() {
	c.printf("\n%s\n%s\n", lightRule, c.bold.Sprint("MENU OPTIONS:"))
	for _, opt := range c.options {
		c.printf("%s. %s\n", opt.key, opt.label)
	}
	c.printf("%s\n", lightRule)
}

func (c *Console) printHeading(title string) {
	c.printf("\n%s\n", c.heading.Sprintf("*** %s ***", title))
}

func (c *Console) printNote(text string) {
	c.printf("\n%s\n", c.note.Sprint(text))
}

func (c *Console) printError(err error) {
	c.printf("\n%s\n", c.alert.Sprintf("Error: %s", err))
}

// printResult renders formula, calculation and total, then the numbered
// listing when it does not exceed the display limit.
func (c *Console) printResult(result calculator.Result) {
	show := len(result.Elements) <= c.displayLimit
	if !show {
		c.printNote(fmt.Sprintf("(There are %s results. Showing formula and total only)", humanize.Comma(result.Total)))
	}

	c.printf("\n%s\n", heavyRule)
	c.printf("Formula: %s\n", result.Formula)
	c.printf("Calculation: %s\n", result.Calculation)
	c.printf("Total: %s\n", humanize.Comma(result.Total))

	if show {
		c.printf("\nElements (%d):\n", len(result.Elements))
		for i, tuple := range result.Elements {
			c.printf("  %d. %s\n", i+1, strings.Join(tuple, " "))
		}
	}
	c.printf("%s\n\n", heavyRule)
}
