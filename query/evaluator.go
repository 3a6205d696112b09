package query

import (
	"github.com/jacoelho/dq/document"
	"github.com/jacoelho/dq/internal/stack"
)

// Evaluator applies compiled paths to documents. The zero value is ready to use.
type Evaluator struct {
	// StrictKeys makes an Identifier naming an absent object key fail with
	// ErrKeyNotFound instead of contributing no results.
	StrictKeys bool
}

// frame is a pending visit: a node and the operators still to apply to it.
type frame struct {
	node document.Value
	ops  Path
}

// Evaluate applies p to doc with the default Evaluator.
func Evaluate(doc document.Value, p Path) ([]document.Value, error) {
	var e Evaluator
	return e.Evaluate(doc, p)
}

// Evaluate returns every value of doc selected by p, in depth-first document
// order. The first error aborts the evaluation and no results are returned.
//
// Traversal uses an explicit stack, so document depth does not grow the Go
// call stack; only nested Pipe operators recurse.
func (e Evaluator) Evaluate(doc document.Value, p Path) ([]document.Value, error) {
	results := []document.Value{}
	pending := stack.NewWithCapacity[frame](len(p) + 1)
	pending.Push(frame{node: doc, ops: p})

	for pending.Len() > 0 {
		f, _ := pending.Pop()

		if len(f.ops) == 0 {
			results = append(results, f.node)
			continue
		}

		children, err := e.step(f.node, f.ops[0])
		if err != nil {
			return nil, err
		}

		rest := f.ops[1:]
		frames := make([]frame, len(children))
		for i, child := range children {
			frames[i] = frame{node: child, ops: rest}
		}
		pending.PushReversed(frames...)
	}

	return results, nil
}

// step applies a single operator to node and returns the selected children
// in document order.
func (e Evaluator) step(node document.Value, op Operator) ([]document.Value, error) {
	if pipe, ok := op.(Pipe); ok {
		return e.Evaluate(node, Path(pipe))
	}

	switch n := node.(type) {
	case document.Array:
		return e.stepArray(n, op)
	case *document.Object:
		return e.stepObject(n, op)
	}
	// scalars have no children
	return nil, nil
}

func (e Evaluator) stepArray(arr document.Array, op Operator) ([]document.Value, error) {
	switch o := op.(type) {
	case Identifier:
		i, err := parseIndex(string(o))
		if err != nil {
			return nil, evaluationError(ErrNotArrayIndex, "%q", string(o))
		}
		if i >= uint64(len(arr)) {
			return nil, evaluationError(ErrIndexOutOfRange, "index %d, length %d", i, len(arr))
		}
		return []document.Value{arr[i]}, nil

	case Generic:
		var out []document.Value
		for i, item := range arr {
			if matchKey(IndexKey(uint64(i)), o.Expr) {
				out = append(out, item)
			}
		}
		return out, nil
	}
	return nil, nil
}

func (e Evaluator) stepObject(obj *document.Object, op Operator) ([]document.Value, error) {
	switch o := op.(type) {
	case Identifier:
		v, ok := obj.Get(string(o))
		if !ok {
			if e.StrictKeys {
				return nil, evaluationError(ErrKeyNotFound, "%q", string(o))
			}
			return nil, nil
		}
		return []document.Value{v}, nil

	case Generic:
		var out []document.Value
		for k, v := range obj.All() {
			if matchKey(ParseKey(k), o.Expr) {
				out = append(out, v)
			}
		}
		return out, nil
	}
	return nil, nil
}
