package exit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/dq/query"
)

// Exit codes.
const (
	CodeOK         = 0
	CodeFailure    = 1 // usage, configuration, I/O, malformed input
	CodeSyntax     = 2
	CodeEvaluation = 3
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	if r.Message == "" {
		return
	}
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a successful exit result with exit code 0 and no message.
func Success() *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeOK,
	}
}

// Error creates an error exit result that outputs to stderr with exit code 1.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeFailure,
		Message:  message,
	}
}

// Errorf creates an error exit result with formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// FromError maps err to an exit result. A nil error is success.
func FromError(err error) *Result {
	if err == nil {
		return Success()
	}

	r := Errorf("Error: %v\n", err)
	r.ExitCode = Code(err)
	return r
}

// Code returns the exit code for err. Syntax takes precedence over
// evaluation when both are wrapped.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, query.ErrSyntax):
		return CodeSyntax
	case errors.Is(err, query.ErrEvaluation):
		return CodeEvaluation
	}
	return CodeFailure
}
