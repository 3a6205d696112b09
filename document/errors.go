package document

import "errors"

var (
	// ErrSerialize indicates an input value could not be converted into a document tree.
	ErrSerialize = errors.New("document: cannot serialize value")

	// ErrMalformed indicates the encoded input is not a well-formed document.
	ErrMalformed = errors.New("document: malformed input")
)
