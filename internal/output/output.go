// Package output renders query results.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/dq/document"
)

// Formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatRaw  = "raw"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Writer renders the results of one document evaluation.
// Implementations decide how consecutive results are separated.
type Writer interface {
	Write(results []document.Value) error
}

// Options tunes the writers that support it.
type Options struct {
	Compact bool // JSON on a single line
}

// New returns the writer for format, writing to w.
func New(format string, w io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if !opts.Compact {
			enc.SetIndent("", "  ")
		}
		return &jsonWriter{enc: enc}, nil
	case FormatYAML:
		return &yamlWriter{w: w}, nil
	case FormatRaw:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return &rawWriter{w: w, enc: enc}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// jsonWriter emits one JSON value per result, each followed by a newline.
type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(results []document.Value) error {
	for _, r := range results {
		if err := j.enc.Encode(r); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	}
	return nil
}

// yamlWriter emits one YAML document per result separated by "---".
type yamlWriter struct {
	w       io.Writer
	written bool
}

func (y *yamlWriter) Write(results []document.Value) error {
	for _, r := range results {
		payload, err := yaml.Marshal(document.ToYAML(r))
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if y.written {
			if _, err := io.WriteString(y.w, "---\n"); err != nil {
				return err
			}
		}
		if _, err := y.w.Write(payload); err != nil {
			return err
		}
		y.written = true
	}
	return nil
}

// rawWriter prints strings without quotes and everything else as compact JSON.
type rawWriter struct {
	w   io.Writer
	enc *json.Encoder
}

func (r *rawWriter) Write(results []document.Value) error {
	for _, v := range results {
		if s, ok := v.(document.String); ok {
			if _, err := fmt.Fprintln(r.w, string(s)); err != nil {
				return err
			}
			continue
		}

		if err := r.enc.Encode(v); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	}
	return nil
}
