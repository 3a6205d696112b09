package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jacoelho/dq/internal/engine"
)

// Input formats.
const (
	InputAuto = "auto"
	InputJSON = "json"
	InputYAML = "yaml"
)

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputRaw  = "raw"
)

// Stdin is the file name that selects standard input.
const Stdin = "-"

var (
	ErrInvalidEngine     = errors.New("invalid engine")
	ErrInvalidInput      = errors.New("invalid input format")
	ErrInvalidOutput     = errors.New("invalid output format")
	ErrNegativeRate      = errors.New("rate limit cannot be negative")
	ErrInputFileNotFound = errors.New("input file not found")
	ErrStdinRepeated     = errors.New("standard input can only be read once")
)

// Config represents the complete configuration for the dq tool.
type Config struct {
	Query string   // empty selects the whole document
	Files []string // empty reads standard input

	// Evaluation
	Engine    string
	Strict    bool
	RateLimit float64 // documents per second (0 = unlimited)

	// Input and output
	Input   string
	Output  string
	Compact bool
	Stream  bool

	Debug bool

	// compile --go
	GoPackage string
	GoVar     string
}

// Defaults returns a Config with every option at its default value.
func Defaults() Config {
	return Config{
		Engine:    engine.NameNative,
		Input:     InputAuto,
		Output:    OutputJSON,
		GoPackage: "main",
		GoVar:     "Query",
	}
}

// Inputs returns the files to read, substituting standard input when none
// were given.
func (c *Config) Inputs() []string {
	if len(c.Files) == 0 {
		return []string{Stdin}
	}
	return c.Files
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if !slices.Contains(engine.Names(), c.Engine) {
		return fmt.Errorf("%w %q, want one of %v", ErrInvalidEngine, c.Engine, engine.Names())
	}

	switch c.Input {
	case InputAuto, InputJSON, InputYAML:
	default:
		return fmt.Errorf("%w %q", ErrInvalidInput, c.Input)
	}

	switch c.Output {
	case OutputJSON, OutputYAML, OutputRaw:
	default:
		return fmt.Errorf("%w %q", ErrInvalidOutput, c.Output)
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeRate, c.RateLimit)
	}

	stdin := 0
	for _, file := range c.Files {
		if file == Stdin {
			stdin++
			continue
		}
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInputFileNotFound, file, err)
		}
	}
	if stdin > 1 {
		return ErrStdinRepeated
	}

	return nil
}
