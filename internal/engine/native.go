package engine

import (
	"log/slog"

	"github.com/jacoelho/dq/document"
	"github.com/jacoelho/dq/query"
)

// Native evaluates queries with the query package.
type Native struct {
	StrictKeys bool
	logger     *slog.Logger
}

func (*Native) Name() string { return NameNative }

func (n *Native) Prepare(q string) (Selector, error) {
	p, err := query.Compile(q)
	if err != nil {
		return nil, err
	}
	if n.logger != nil {
		n.logger.Debug("query compiled", "query", q, "canonical", p.String(), "operators", len(p))
	}
	return &nativeSelector{path: p, evaluator: query.Evaluator{StrictKeys: n.StrictKeys}}, nil
}

type nativeSelector struct {
	path      query.Path
	evaluator query.Evaluator
}

func (s *nativeSelector) Select(doc document.Value) ([]document.Value, error) {
	return s.evaluator.Evaluate(doc, s.path)
}
