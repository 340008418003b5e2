package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/shopsavvy/savvyctl/shopsavvy"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler() Compiler {
	return &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Compile with static environment for validation
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Allow offer properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &exprFilter{
		expression: expression,
		program:    program,
	}, nil
}

// Evaluate evaluates the filter against an offer
func (f *exprFilter) Evaluate(offer shopsavvy.Offer) bool {
	env := createRuntimeEnvironment(offer)

	result, err := expr.Run(f.program, env)
	if err != nil {
		// Skip offers that cause evaluation errors
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Date helpers
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(offer shopsavvy.Offer) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	// Offer data
	env["Offer"] = offer

	// Direct offer properties for convenience
	env["ID"] = offer.ID
	env["Retailer"] = offer.Retailer
	env["Price"] = priceValue(offer.Price)
	env["HasPrice"] = offer.Price != nil
	env["Currency"] = offer.Currency
	env["Availability"] = offer.Availability
	env["Condition"] = offer.Condition
	env["Seller"] = offer.Seller
	env["URL"] = offer.URL

	// Offer-specific helpers
	env["fromRetailer"] = createFromRetailerFunc(offer.Retailer)
	env["inStock"] = createInStockFunc(offer.Availability)
	env["priceBelow"] = createPriceBelowFunc(offer.Price)
	env["priceAbove"] = createPriceAboveFunc(offer.Price)

	return env
}

// priceValue flattens an optional price to a float; offers without a price
// evaluate as 0 and should be guarded with HasPrice.
func priceValue(price *float64) float64 {
	if price == nil {
		return 0
	}
	return *price
}

func createFromRetailerFunc(retailer string) func(string) bool {
	return func(name string) bool {
		return strings.EqualFold(retailer, name)
	}
}

func createInStockFunc(availability string) func() bool {
	return func() bool {
		return strings.EqualFold(availability, "in_stock")
	}
}

func createPriceBelowFunc(price *float64) func(float64) bool {
	return func(limit float64) bool {
		return price != nil && *price < limit
	}
}

func createPriceAboveFunc(price *float64) func(float64) bool {
	return func(limit float64) bool {
		return price != nil && *price > limit
	}
}
