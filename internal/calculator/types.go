package calculator

// Result is the outcome of a single computation. Elements holds the
// enumerated tuples in the order they were generated.
type Result struct {
	Formula     string
	Calculation string
	Total       int64
	Elements    [][]string
}

// Multiplicity is the number of occurrences of a symbol in the input.
type Multiplicity struct {
	Symbol string
	Count  int
}

// Calculator describes the combinatorial computations offered to the console.
type Calculator interface {
	PermutationsDistinct(symbols []string) (Result, error)
	PermutationsRepeated(symbols []string) (Result, error)
	CombinationsDistinct(symbols []string, r int) (Result, error)
	CombinationsRepeated(symbols []string, r int) (Result, error)
}
