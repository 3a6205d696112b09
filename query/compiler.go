package query

import (
	"errors"
	"strconv"
	"strings"
)

const (
	identifierSeparator = '.'
	genericStart        = '['
	genericEnd          = ']'
	genericSeparator    = ','
	genericSlice        = '-'
)

// lexer is a cursor over the query runes. pos counts runes consumed so far.
type lexer struct {
	input []rune
	pos   int
}

func (l *lexer) next() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	r := l.input[l.pos]
	l.pos++
	return r, true
}

func (l *lexer) remainder() string {
	return string(l.input[l.pos:])
}

func (l *lexer) errorf(kind LexErrorKind, expected, found string) *LexError {
	return &LexError{
		Kind:      kind,
		Expected:  expected,
		Found:     found,
		Position:  l.pos,
		Remainder: l.remainder(),
	}
}

// Compile turns a query such as ".friends[1,2].name" into a Path.
// The empty query compiles to an empty Path, which selects the whole document.
func Compile(q string) (Path, error) {
	l := &lexer{input: []rune(q)}
	path := Path{}

	var collect strings.Builder
	flush := func() {
		if collect.Len() > 0 {
			path = append(path, Identifier(collect.String()))
			collect.Reset()
		}
	}

	for {
		r, ok := l.next()
		if !ok {
			break
		}

		switch r {
		case identifierSeparator:
			flush()
		case genericStart:
			flush()
			expr, err := l.indexExpr()
			if err != nil {
				return nil, err
			}
			path = append(path, Generic{Expr: expr})
		default:
			collect.WriteRune(r)
		}
	}
	flush()

	return path, nil
}

// MustCompile is like Compile but panics if the query cannot be compiled.
// It simplifies initialization of package-level precompiled queries.
func MustCompile(q string) Path {
	p, err := Compile(q)
	if err != nil {
		panic(`query: Compile(` + strconv.Quote(q) + `): ` + err.Error())
	}
	return p
}

// indexExpr scans a bracketed index expression; the opening bracket has
// already been consumed.
func (l *lexer) indexExpr() (IndexExpr, error) {
	var slicers Slice
	var collect strings.Builder

	for {
		r, ok := l.next()
		if !ok {
			return nil, l.errorf(EndOfQuery, string(genericEnd), "")
		}

		switch r {
		case genericEnd:
			if collect.Len() == 0 {
				if len(slicers) == 0 {
					return Wildcard{}, nil
				}
				if rangeOpen(slicers) {
					return nil, l.errorf(MalformedRange, "integer", string(r))
				}
				return slicers, nil
			}

			s, err := l.slicer(collect.String(), slicers)
			if err != nil {
				return nil, err
			}
			return append(slicers, s), nil

		case genericSeparator:
			if collect.Len() == 0 {
				if rangeOpen(slicers) {
					return nil, l.errorf(MalformedRange, "integer", string(r))
				}
				if len(slicers) == 0 {
					return nil, l.errorf(UnexpectedCharacter, "integer or identifier", string(r))
				}
				continue
			}

			s, err := l.slicer(collect.String(), slicers)
			if err != nil {
				return nil, err
			}
			slicers = append(slicers, s)
			collect.Reset()

		case genericSlice:
			text := collect.String()
			if text == "" {
				return nil, l.errorf(UnexpectedCharacter, "integer", string(r))
			}
			if rangeOpen(slicers) {
				return nil, l.errorf(MalformedRange, string(genericEnd)+" or "+string(genericSeparator), string(r))
			}

			n, err := parseIndex(text)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return nil, l.parseIntError(text, err)
				}
				return nil, l.errorf(UnexpectedCharacter, "integer", text)
			}
			slicers = append(slicers, SliceFrom(n))
			collect.Reset()

		default:
			collect.WriteRune(r)
		}
	}
}

// slicer converts a collected token. After an open range the token must be
// the integer closing it; otherwise integers become Index and anything else
// an Ident.
func (l *lexer) slicer(text string, prior Slice) (Slicer, error) {
	if rangeOpen(prior) {
		n, err := parseIndex(text)
		if err != nil {
			return nil, l.parseIntError(text, err)
		}
		return SliceTo(n), nil
	}

	n, err := parseIndex(text)
	switch {
	case err == nil:
		return Index(n), nil
	case errors.Is(err, strconv.ErrRange):
		return nil, l.parseIntError(text, err)
	}
	return Ident(text), nil
}

func (l *lexer) parseIntError(text string, err error) *LexError {
	e := l.errorf(FailedToParseInt, "unsigned integer", text)
	e.Err = err
	return e
}

// rangeOpen reports whether the last slicer is a SliceFrom awaiting its SliceTo.
func rangeOpen(s Slice) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[len(s)-1].(SliceFrom)
	return ok
}

func parseIndex(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
