package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jacoelho/dq/document"
	"github.com/jacoelho/dq/internal/logging"
)

const (
	NameNative   = "native"
	NameJSONPath = "jsonpath"
)

var ErrUnknownEngine = errors.New("unknown engine")

// Selector evaluates one prepared query against documents.
type Selector interface {
	Select(doc document.Value) ([]document.Value, error)
}

// Engine prepares queries for repeated evaluation.
type Engine interface {
	Name() string
	Prepare(query string) (Selector, error)
}

// Options configures engine construction.
type Options struct {
	StrictKeys bool
	Logger     *slog.Logger
}

// Names lists the supported engines.
func Names() []string {
	return []string{NameNative, NameJSONPath}
}

// New returns the engine registered under name.
func New(name string, opts Options) (Engine, error) {
	logger := logging.Default(opts.Logger).With("component", "engine", "engine", name)

	switch name {
	case NameNative, "":
		return &Native{StrictKeys: opts.StrictKeys, logger: logger}, nil
	case NameJSONPath:
		if opts.StrictKeys {
			logger.Warn("strict keys are not supported by this engine and will be ignored")
		}
		return &JSONPath{logger: logger}, nil
	}
	return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownEngine, name, Names())
}
