package engine

import (
	"fmt"
	"log/slog"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/dq/document"
	"github.com/jacoelho/dq/query"
)

// JSONPath delegates evaluation to an RFC 9535 JSONPath engine. Queries use
// JSONPath syntax ("$.friends[1].name") rather than the native grammar.
//
// Documents pass through plain Go maps, so object members inside results are
// ordered by key rather than by document order.
type JSONPath struct {
	logger *slog.Logger
}

func (*JSONPath) Name() string { return NameJSONPath }

func (j *JSONPath) Prepare(q string) (Selector, error) {
	path, err := jsonpath.Parse(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", query.ErrSyntax, err)
	}
	if j.logger != nil {
		j.logger.Debug("query compiled", "query", q)
	}
	return &jsonPathSelector{path: path}, nil
}

type jsonPathSelector struct {
	path *jsonpath.Path
}

func (s *jsonPathSelector) Select(doc document.Value) ([]document.Value, error) {
	nodes := s.path.Select(document.ToAny(doc))

	results := make([]document.Value, 0, len(nodes))
	for _, node := range nodes {
		v, err := document.FromAny(node)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", query.ErrEvaluation, err)
		}
		results = append(results, v)
	}
	return results, nil
}
