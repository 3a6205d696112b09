package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jacoelho/dq/document"
	"github.com/jacoelho/dq/internal/config"
	"github.com/jacoelho/dq/internal/engine"
	"github.com/jacoelho/dq/internal/logging"
	"github.com/jacoelho/dq/internal/output"
	"github.com/jacoelho/dq/internal/ratelimit"
)

// Runner evaluates one query against every configured input.
type Runner struct {
	config   *config.Config
	selector engine.Selector
	limiter  *ratelimit.Limiter
	writer   output.Writer
	stdin    io.Reader
	logger   *slog.Logger
}

// Options carries the process streams; nil fields fall back to os.Stdin,
// os.Stdout and a discarding logger.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
}

// New prepares the query and output writer described by cfg. Query syntax
// errors surface here, before any input is opened.
func New(cfg *config.Config, opts Options) (*Runner, error) {
	logger := logging.Default(opts.Logger).With("component", "runner")

	eng, err := engine.New(cfg.Engine, engine.Options{StrictKeys: cfg.Strict, Logger: opts.Logger})
	if err != nil {
		return nil, err
	}

	selector, err := eng.Prepare(cfg.Query)
	if err != nil {
		return nil, err
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	writer, err := output.New(cfg.Output, stdout, output.Options{Compact: cfg.Compact})
	if err != nil {
		return nil, err
	}

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	return &Runner{
		config:   cfg,
		selector: selector,
		limiter:  ratelimit.New(cfg.RateLimit, 1),
		writer:   writer,
		stdin:    stdin,
		logger:   logger,
	}, nil
}

// Run processes every input in order. A failing input does not stop the
// inputs after it; the first failure is returned alongside the summary.
// Cancelling ctx stops the run between documents.
func (r *Runner) Run(ctx context.Context) (*output.Summary, error) {
	inputs := r.config.Inputs()
	s := output.NewSummary(len(inputs))

	overallStart := time.Now()
	var firstError error

	for _, name := range inputs {
		if err := ctx.Err(); err != nil {
			s.SetTotalDuration(time.Since(overallStart))
			return s, err
		}

		start := time.Now()
		result, err := r.runInput(ctx, name)
		result.Duration = time.Since(start)
		result.Error = err
		s.Add(result)

		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				s.SetTotalDuration(time.Since(overallStart))
				return s, err
			}
			r.logger.Warn("input failed", "input", name, "error", err)
			if firstError == nil {
				firstError = err
			}
			continue
		}

		r.logger.Debug("input done", "input", name, "documents", result.Documents, "results", result.Results, "duration", result.Duration)
	}

	s.SetTotalDuration(time.Since(overallStart))
	return s, firstError
}

func (r *Runner) runInput(ctx context.Context, name string) (output.InputResult, error) {
	result := output.InputResult{Name: name}

	in, closeInput, err := r.open(name)
	if err != nil {
		return result, err
	}
	defer closeInput()

	format := r.formatFor(name)
	r.logger.Debug("input opened", "input", name, "format", format, "stream", r.config.Stream)

	if !r.config.Stream {
		doc, err := decodeOne(format, in)
		if err != nil {
			return result, fmt.Errorf("%s: %w", name, err)
		}
		n, err := r.evaluate(ctx, doc)
		result.Documents = 1
		result.Results = n
		if err != nil {
			return result, fmt.Errorf("%s: %w", name, err)
		}
		return result, nil
	}

	dec := newDecoder(format, in)
	for {
		doc, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return result, fmt.Errorf("%s: document %d: %w", name, result.Documents+1, err)
		}

		result.Documents++
		n, err := r.evaluate(ctx, doc)
		result.Results += n
		if err != nil {
			return result, fmt.Errorf("%s: document %d: %w", name, result.Documents, err)
		}
	}
}

func (r *Runner) evaluate(ctx context.Context, doc document.Value) (int, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	results, err := r.selector.Select(doc)
	if err != nil {
		return 0, err
	}

	if err := r.writer.Write(results); err != nil {
		return 0, fmt.Errorf("write results: %w", err)
	}
	return len(results), nil
}

func (r *Runner) open(name string) (io.Reader, func(), error) {
	if name == config.Stdin {
		return r.stdin, func() {}, nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input %s: %w", name, err)
	}
	return file, func() { _ = file.Close() }, nil
}

// formatFor resolves the auto input format: .yaml and .yml files are YAML,
// everything else, standard input included, is JSON.
func (r *Runner) formatFor(name string) string {
	if r.config.Input != config.InputAuto && r.config.Input != "" {
		return r.config.Input
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return config.InputYAML
	}
	return config.InputJSON
}

type decoder interface {
	Next() (document.Value, error)
}

func newDecoder(format string, in io.Reader) decoder {
	if format == config.InputYAML {
		return document.NewYAMLDecoder(in)
	}
	return document.NewJSONDecoder(in)
}

func decodeOne(format string, in io.Reader) (document.Value, error) {
	if format == config.InputYAML {
		return document.DecodeYAML(in)
	}
	return document.DecodeJSON(in)
}
