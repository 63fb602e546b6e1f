package filter

import (
	"context"
)

// Row is one object of a Koios JSON array response. Numbers decode as
// float64; lovelace amounts are usually strings.
type Row = map[string]any

// Filter defines the basic interface for row filters
type Filter interface {
	// Match checks if a row matches the filter criteria
	Match(row Row) (bool, error)
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string

	// IsThreadSafe indicates if the filter can be evaluated concurrently
	IsThreadSafe() bool
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Evaluator evaluates filters against rows
type Evaluator interface {
	// Select returns the indexes of matching rows in input order
	Select(ctx context.Context, filter CompiledFilter, rows []Row) ([]int, error)
}
