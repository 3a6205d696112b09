package query

import (
	"fmt"

	"github.com/jacoelho/dq/document"
)

// Select evaluates q against any Go value. q is either a query string, which
// is compiled first, or a precompiled Path. The input is converted with
// document.FromAny; conversion failures are evaluation errors.
func Select[Q string | Path](input any, q Q) ([]document.Value, error) {
	return Evaluator{}.Select(input, q)
}

// Select is the package-level Select using e's options.
func (e Evaluator) Select(input any, q any) ([]document.Value, error) {
	var p Path
	switch t := q.(type) {
	case Path:
		p = t
	case string:
		compiled, err := Compile(t)
		if err != nil {
			return nil, err
		}
		p = compiled
	default:
		return nil, fmt.Errorf("query: unsupported query type %T", q)
	}

	doc, err := document.FromAny(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEvaluation, err)
	}

	return e.Evaluate(doc, p)
}
