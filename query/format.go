package query

import (
	"strconv"
	"strings"
)

// String renders p in canonical query syntax. Compiling the result yields p
// again for any path produced by Compile whose identifiers contain neither
// '.' nor '['.
func (p Path) String() string {
	var b strings.Builder
	for _, op := range p {
		b.WriteString(op.String())
	}
	return b.String()
}

func (i Identifier) String() string {
	return string(identifierSeparator) + string(i)
}

func (g Generic) String() string {
	if g.Expr == nil {
		return "[]"
	}
	return string(genericStart) + g.Expr.String() + string(genericEnd)
}

// String renders the nested path in parentheses. Pipe has no query syntax,
// so the result does not compile back.
func (p Pipe) String() string {
	return "|(" + Path(p).String() + ")"
}

func (Wildcard) String() string { return "" }

func (s Slice) String() string {
	var b strings.Builder
	for i, sl := range s {
		if i > 0 {
			if _, ok := sl.(SliceTo); !ok {
				b.WriteByte(genericSeparator)
			}
		}
		switch v := sl.(type) {
		case Index:
			b.WriteString(strconv.FormatUint(uint64(v), 10))
		case SliceFrom:
			b.WriteString(strconv.FormatUint(uint64(v), 10))
			b.WriteByte(genericSlice)
		case SliceTo:
			b.WriteString(strconv.FormatUint(uint64(v), 10))
		case Ident:
			b.WriteString(string(v))
		}
	}
	return b.String()
}

// GoString renders p as a Go composite literal referring to this package.
func (p Path) GoString() string {
	return "query.Path{" + joinGo(p) + "}"
}

func (i Identifier) GoString() string {
	return "query.Identifier(" + strconv.Quote(string(i)) + ")"
}

func (g Generic) GoString() string {
	if g.Expr == nil {
		return "query.Generic{}"
	}
	return "query.Generic{Expr: " + goString(g.Expr) + "}"
}

func (p Pipe) GoString() string {
	return "query.Pipe{" + joinGo(Path(p)) + "}"
}

func (Wildcard) GoString() string { return "query.Wildcard{}" }

func (s Slice) GoString() string {
	parts := make([]string, 0, len(s))
	for _, sl := range s {
		parts = append(parts, goString(sl))
	}
	return "query.Slice{" + strings.Join(parts, ", ") + "}"
}

func (i Index) GoString() string {
	return "query.Index(" + strconv.FormatUint(uint64(i), 10) + ")"
}

func (s SliceFrom) GoString() string {
	return "query.SliceFrom(" + strconv.FormatUint(uint64(s), 10) + ")"
}

func (s SliceTo) GoString() string {
	return "query.SliceTo(" + strconv.FormatUint(uint64(s), 10) + ")"
}

func (i Ident) GoString() string {
	return "query.Ident(" + strconv.Quote(string(i)) + ")"
}

type goStringer interface {
	GoString() string
}

func goString(v any) string {
	if gs, ok := v.(goStringer); ok {
		return gs.GoString()
	}
	return "nil"
}

func joinGo(p Path) string {
	parts := make([]string, 0, len(p))
	for _, op := range p {
		parts = append(parts, goString(op))
	}
	return strings.Join(parts, ", ")
}
