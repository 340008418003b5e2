package filter

import (
	"github.com/shopsavvy/savvyctl/shopsavvy"
)

// Filter defines the basic interface for offer filters
type Filter interface {
	// Evaluate checks if an offer matches the filter criteria
	Evaluate(offer shopsavvy.Offer) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}
