// Package filter narrows fetched rosters client-side with expr-lang
// expressions.
//
// Expressions see a record's schema fields as plain variables, with
// pointers flattened to zero values so comparisons never nil-panic:
//
//	last_name == "Nguyen" and program == "Primary"
//	birth_date > date("2019-01-01")
//	"7" in grade or years_since(birth_date) >= 6
package filter

import (
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled filter expression, safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// programCache avoids recompiling preset expressions that run once per
// record.
var programCache sync.Map // expression -> *vm.Program

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if cached, ok := programCache.Load(expression); ok {
		return &Filter{expression: expression, program: cached.(*vm.Program)}, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // record fields are injected at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
			Err:        err,
		}
	}

	programCache.Store(expression, program)
	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one record environment.
func (f *Filter) Match(env map[string]any) (bool, error) {
	full := helperFunctions()
	for k, v := range env {
		full[k] = v
	}

	out, err := expr.Run(f.program, full)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     err.Error(),
			Err:        err,
		}
	}

	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "expression did not evaluate to a boolean",
		}
	}
	return matched, nil
}

// helperFunctions returns the functions available inside expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		"now": func() time.Time {
			return time.Now()
		},
		"date": func(s string) time.Time {
			t, err := time.ParseInLocation("2006-01-02", s, time.Local)
			if err != nil {
				return time.Time{}
			}
			return t
		},
		"years_since": func(t time.Time) int {
			if t.IsZero() {
				return 0
			}
			years := time.Now().Year() - t.Year()
			if time.Now().YearDay() < t.YearDay() {
				years--
			}
			return years
		},
	}
}
