package query

// Operator is one step of a compiled query. The set of implementations is
// closed: Identifier, Generic and Pipe.
type Operator interface {
	operator()
	String() string
}

// Path is a compiled query: operators applied in order from the document root.
type Path []Operator

// Identifier selects an object field by name, or an array element when the
// name is an unsigned integer.
type Identifier string

// Generic selects every key or index admitted by a bracketed index expression.
// A nil Expr behaves as Wildcard.
type Generic struct {
	Expr IndexExpr
}

// Pipe evaluates a nested path with the current node as its root and feeds
// every result into the operators that follow. The compiler never produces it.
type Pipe Path

func (Identifier) operator() {}
func (Generic) operator()    {}
func (Pipe) operator()       {}

// IndexExpr is the content of a bracketed selector: Wildcard or Slice.
type IndexExpr interface {
	indexExpr()
	String() string
}

// Wildcard admits every key and index.
type Wildcard struct{}

// Slice admits a key when any of its slicers does.
type Slice []Slicer

func (Wildcard) indexExpr() {}
func (Slice) indexExpr()    {}

// Slicer is a single admission rule inside a Slice.
type Slicer interface {
	slicer()
}

type (
	// Index admits exactly one numeric key.
	Index uint64

	// SliceFrom opens an inclusive range closed by the SliceTo that follows it.
	SliceFrom uint64

	// SliceTo closes the range opened by the preceding SliceFrom.
	SliceTo uint64

	// Ident admits a key equal to its text, compared numerically when the
	// text is an unsigned integer.
	Ident string
)

func (Index) slicer()     {}
func (SliceFrom) slicer() {}
func (SliceTo) slicer()   {}
func (Ident) slicer()     {}
