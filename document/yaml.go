package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// YAMLDecoder reads successive documents from a multi-document YAML stream.
type YAMLDecoder struct {
	dec *yaml.Decoder
}

// NewYAMLDecoder returns a decoder reading from r. Mapping key order is kept.
func NewYAMLDecoder(r io.Reader) *YAMLDecoder {
	return &YAMLDecoder{dec: yaml.NewDecoder(r, yaml.UseOrderedMap())}
}

// Next decodes the next document. It returns io.EOF once the stream is exhausted.
func (d *YAMLDecoder) Next() (Value, error) {
	var raw any
	if err := d.dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return FromAny(raw)
}

// DecodeYAML decodes the first document of a YAML stream.
func DecodeYAML(r io.Reader) (Value, error) {
	v, err := NewYAMLDecoder(r).Next()
	if errors.Is(err, io.EOF) {
		return Null{}, nil
	}
	return v, err
}

// ParseYAML is DecodeYAML over a byte slice.
func ParseYAML(data []byte) (Value, error) {
	return DecodeYAML(bytes.NewReader(data))
}
