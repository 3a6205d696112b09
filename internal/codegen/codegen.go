// Package codegen renders compiled queries as Go source so that callers can
// embed a precompiled query.Path instead of compiling at startup.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"

	"github.com/jacoelho/dq/query"
)

// ImportPath is the import path of the query package used by generated code.
const ImportPath = "github.com/jacoelho/dq/query"

var ErrInvalidIdentifier = errors.New("codegen: invalid Go identifier")

// Options controls the generated file.
type Options struct {
	Package  string // package clause, defaults to "main"
	Variable string // name of the declared variable
	Source   string // query text, written as a comment
}

// Generate returns a gofmt-ed Go file declaring Options.Variable as p.
func Generate(p query.Path, opts Options) ([]byte, error) {
	pkg := opts.Package
	if pkg == "" {
		pkg = "main"
	}

	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("%w: package %q", ErrInvalidIdentifier, pkg)
	}
	if !token.IsIdentifier(opts.Variable) {
		return nil, fmt.Errorf("%w: variable %q", ErrInvalidIdentifier, opts.Variable)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by dq compile; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import %q\n\n", ImportPath)
	if opts.Source != "" {
		fmt.Fprintf(&buf, "// %s is the compiled form of %q.\n", opts.Variable, opts.Source)
	}
	fmt.Fprintf(&buf, "var %s = %#v\n", opts.Variable, p)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: format generated source: %w", err)
	}
	return src, nil
}
