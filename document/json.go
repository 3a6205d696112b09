package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSONDecoder reads successive JSON values from a stream, such as
// newline-delimited JSON or concatenated documents.
type JSONDecoder struct {
	dec *json.Decoder
}

// NewJSONDecoder returns a decoder reading from r.
func NewJSONDecoder(r io.Reader) *JSONDecoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &JSONDecoder{dec: dec}
}

// Next decodes the next value from the stream. It returns io.EOF once the
// input is exhausted.
func (d *JSONDecoder) Next() (Value, error) {
	tok, err := d.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	v, err := decodeToken(d.dec, tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

// DecodeJSON decodes exactly one JSON value from r, preserving object key order.
func DecodeJSON(r io.Reader) (Value, error) {
	d := NewJSONDecoder(r)
	v, err := d.Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	if err != nil {
		return nil, err
	}

	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformed)
	}
	return v, nil
}

// ParseJSON is DecodeJSON over a byte slice.
func ParseJSON(data []byte) (Value, error) {
	return DecodeJSON(bytes.NewReader(data))
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	}
	return nil, fmt.Errorf("unexpected token %T", tok)
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %T", tok)
		}

		valueToken, err := dec.Token()
		if err != nil {
			return nil, err
		}

		v, err := decodeToken(dec, valueToken)
		if err != nil {
			return nil, err
		}
		obj.set(key, v)
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Array{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}

		v, err := decodeToken(dec, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}
