package calculator

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

const (
	// maxFactorial is the largest n for which n! fits into an int64.
	maxFactorial = 20
	// maxEnumeration caps the number of index tuples generated by one call.
	maxEnumeration = 5_000_000
)

type engine struct{}

// New creates a Calculator that enumerates results by index generation.
func New() Calculator {
	return &engine{}
}

func (e *engine) PermutationsDistinct(symbols []string) (Result, error) {
	n := len(symbols)
	if n == 0 {
		return Result{}, ErrEmptySet
	}
	total, err := factorial(n)
	if err != nil {
		return Result{}, err
	}
	if err := checkEnumeration(total); err != nil {
		return Result{}, err
	}

	elements := project(symbols, permutationIndexes(n))

	return Result{
		Formula:     fmt.Sprintf("P(%d) = %d!", n, n),
		Calculation: fmt.Sprintf("%d! = %d", n, total),
		Total:       total,
		Elements:    elements,
	}, nil
}

func (e *engine) PermutationsRepeated(symbols []string) (Result, error) {
	n := len(symbols)
	if n == 0 {
		return Result{}, ErrEmptySet
	}
	numerator, err := factorial(n)
	if err != nil {
		return Result{}, err
	}
	// distinct orderings are found by walking every positional permutation
	if err := checkEnumeration(numerator); err != nil {
		return Result{}, err
	}

	counts := Multiplicities(symbols)
	repeated := make([]string, 0, len(counts))
	factors := make([]string, 0, len(counts))
	denominator := int64(1)
	for _, m := range counts {
		if m.Count > 1 {
			repeated = append(repeated, fmt.Sprintf("%s:%d", m.Symbol, m.Count))
		}
		factors = append(factors, fmt.Sprintf("%d!", m.Count))
		f, err := factorial(m.Count)
		if err != nil {
			return Result{}, err
		}
		denominator *= f
	}
	total := numerator / denominator

	prefix := fmt.Sprintf("P(%d)", n)
	if len(repeated) > 0 {
		prefix = fmt.Sprintf("P(%d; %s)", n, strings.Join(repeated, ", "))
	}

	elements := unique(project(symbols, permutationIndexes(n)), false)

	return Result{
		Formula:     fmt.Sprintf("%s = %d! / (%s)", prefix, n, strings.Join(factors, " × ")),
		Calculation: fmt.Sprintf("%d / %d = %d", numerator, denominator, total),
		Total:       total,
		Elements:    elements,
	}, nil
}

func (e *engine) CombinationsDistinct(symbols []string, r int) (Result, error) {
	n := len(symbols)
	if n == 0 {
		return Result{}, ErrEmptySet
	}
	if r < 0 || r > n {
		return Result{}, &SelectionError{Requested: r, Available: n}
	}

	total, err := choose(n, r)
	if err != nil {
		return Result{}, err
	}

	calculation, err := binomialCalculation(n, r, total)
	if err != nil {
		return Result{}, err
	}

	elements := project(symbols, combinationIndexes(n, r))

	return Result{
		Formula:     fmt.Sprintf("C(%d, %d) = %d! / (%d! × (%d-%d)!)", n, r, n, r, n, r),
		Calculation: calculation,
		Total:       total,
		Elements:    elements,
	}, nil
}

// binomialCalculation substitutes factorial values when n! fits into an
// int64 and falls back to the plain coefficient otherwise.
func binomialCalculation(n, r int, total int64) (string, error) {
	if n > maxFactorial {
		return fmt.Sprintf("C(%d, %d) = %d", n, r, total), nil
	}
	numerator, err := factorial(n)
	if err != nil {
		return "", err
	}
	rFact, err := factorial(r)
	if err != nil {
		return "", err
	}
	restFact, err := factorial(n - r)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d / (%d × %d) = %d", numerator, rFact, restFact, total), nil
}

// CombinationsRepeated samples every size-r positional subsequence of the
// input and keeps the distinct sorted value tuples. The count is therefore
// bounded by the multiplicities present in symbols and is not C(n+r-1, r).
func (e *engine) CombinationsRepeated(symbols []string, r int) (Result, error) {
	n := len(symbols)
	if n == 0 {
		return Result{}, ErrEmptySet
	}
	if r < 0 || r > n {
		return Result{}, &SelectionError{Requested: r, Available: n}
	}
	if _, err := choose(n, r); err != nil {
		return Result{}, err
	}

	elements := unique(project(symbols, combinationIndexes(n, r)), true)
	total := int64(len(elements))

	return Result{
		Formula:     fmt.Sprintf("Combinations with repetition of %d elements", r),
		Calculation: fmt.Sprintf("Total unique combinations: %d", total),
		Total:       total,
		Elements:    elements,
	}, nil
}

// Multiplicities groups symbols by value in order of first appearance.
func Multiplicities(symbols []string) []Multiplicity {
	index := make(map[string]int, len(symbols))
	out := make([]Multiplicity, 0, len(symbols))
	for _, s := range symbols {
		if i, ok := index[s]; ok {
			out[i].Count++
			continue
		}
		index[s] = len(out)
		out = append(out, Multiplicity{Symbol: s, Count: 1})
	}
	return out
}

// HasRepeats reports whether any symbol occurs more than once.
func HasRepeats(symbols []string) bool {
	return len(Multiplicities(symbols)) != len(symbols)
}

func factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of negative number %d", n)
	}
	if n > maxFactorial {
		return 0, fmt.Errorf("%d!: %w", n, ErrTooLarge)
	}
	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i)
	}
	return result, nil
}

// choose returns C(n, r), failing when the positional combinations would
// exceed the enumeration limit.
func choose(n, r int) (int64, error) {
	if combin.GeneralizedBinomial(float64(n), float64(r)) > maxEnumeration {
		return 0, fmt.Errorf("C(%d, %d) exceeds the enumeration limit of %d: %w", n, r, maxEnumeration, ErrTooLarge)
	}
	total := int64(combin.Binomial(n, r))
	if err := checkEnumeration(total); err != nil {
		return 0, err
	}
	return total, nil
}

func checkEnumeration(count int64) error {
	if count > maxEnumeration {
		return fmt.Errorf("%d results exceed the enumeration limit of %d: %w", count, maxEnumeration, ErrTooLarge)
	}
	return nil
}

func permutationIndexes(n int) [][]int {
	perms := combin.Permutations(n, n)
	sortIndexes(perms)
	return perms
}

func combinationIndexes(n, r int) [][]int {
	combs := combin.Combinations(n, r)
	sortIndexes(combs)
	return combs
}

func sortIndexes(tuples [][]int) {
	slices.SortFunc(tuples, func(a, b []int) int {
		return slices.Compare(a, b)
	})
}

func project(symbols []string, indexes [][]int) [][]string {
	out := make([][]string, len(indexes))
	for i, tuple := range indexes {
		values := make([]string, len(tuple))
		for j, idx := range tuple {
			values[j] = symbols[idx]
		}
		out[i] = values
	}
	return out
}

// unique drops repeated value tuples, keeping first-seen order. When
// sorted is set every tuple is sorted before comparison.
func unique(tuples [][]string, sorted bool) [][]string {
	seen := make(map[string]struct{}, len(tuples))
	out := make([][]string, 0, len(tuples))
	for _, tuple := range tuples {
		if sorted {
			slices.Sort(tuple)
		}
		key := fmt.Sprintf("%q", tuple)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tuple)
	}
	return out
}
