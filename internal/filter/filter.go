// Package filter compiles CEL expressions into entry predicates for the
// advanced search mode. The entry under test is bound to the variable "_",
// so queries read like `_.members > 50 && _.kind == "room"`.
package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/rosterview/internal/roster"
)

// Evaluator compiles and evaluates CEL filter expressions.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates an evaluator with the strings, lists and math
// extension libraries loaded.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("_", cel.DynType),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Compile parses and type-checks expr, returning a predicate over entries.
// Evaluation errors and non-boolean results count as no-match rather than
// aborting the search.
func (e *Evaluator) Compile(expr string) (func(roster.Entry) bool, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}

	return func(entry roster.Entry) bool {
		out, _, err := prg.Eval(map[string]any{"_": entry.Fields()})
		if err != nil {
			return false
		}
		b, ok := out.(types.Bool)
		return ok && bool(b)
	}, nil
}

// Matcher compiles expr into a roster.Matcher. The query text passed to
// the matcher at call time is ignored; the expression is fixed at compile
// time.
func (e *Evaluator) Matcher(expr string) (roster.Matcher, error) {
	pred, err := e.Compile(expr)
	if err != nil {
		return nil, err
	}
	return roster.PredicateMatch(pred), nil
}
