package query

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a malformed query. Every *LexError matches it.
	ErrSyntax = errors.New("query: syntax error")

	// ErrEvaluation indicates the query did not fit the shape of the document.
	ErrEvaluation = errors.New("query: evaluation error")
)

var (
	ErrEndOfQuery          = errors.New("unexpected end of query")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrParseInt            = errors.New("failed to parse integer")
	ErrMalformedRange      = errors.New("malformed range")
)

var (
	ErrNotArrayIndex   = errors.New("identifier is not an array index")
	ErrIndexOutOfRange = errors.New("array index out of range")
	ErrKeyNotFound     = errors.New("key not found")
)

// LexErrorKind classifies a LexError.
type LexErrorKind uint8

const (
	EndOfQuery LexErrorKind = iota + 1
	UnexpectedCharacter
	FailedToParseInt
	MalformedRange
)

func (k LexErrorKind) sentinel() error {
	switch k {
	case EndOfQuery:
		return ErrEndOfQuery
	case UnexpectedCharacter:
		return ErrUnexpectedCharacter
	case FailedToParseInt:
		return ErrParseInt
	case MalformedRange:
		return ErrMalformedRange
	}
	return nil
}

// LexError reports where and why a query failed to compile.
// Position counts the characters consumed when the error was detected and
// Remainder holds the text not yet consumed.
type LexError struct {
	Kind      LexErrorKind
	Expected  string
	Found     string
	Position  int
	Remainder string
	Err       error // underlying strconv error for FailedToParseInt
}

func (e *LexError) Error() string {
	msg := fmt.Sprintf("%v: %v at position %d", ErrSyntax, e.Kind.sentinel(), e.Position)
	if e.Found != "" {
		msg += fmt.Sprintf(": found %q", e.Found)
	}
	if e.Expected != "" {
		msg += fmt.Sprintf(", expected %q", e.Expected)
	}
	if e.Remainder != "" {
		msg += fmt.Sprintf(" (remaining %q)", e.Remainder)
	}
	return msg
}

func (e *LexError) Unwrap() []error {
	errs := []error{ErrSyntax}
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func evaluationError(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrEvaluation, cause, fmt.Sprintf(format, args...))
}
