package exit

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jacoelho/dq/document"
	"github.com/jacoelho/dq/query"
)

func TestCode(t *testing.T) {
	t.Parallel()

	_, syntaxErr := query.Compile(".a[")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: CodeOK},
		{name: "syntax", err: syntaxErr, want: CodeSyntax},
		{name: "wrapped_syntax", err: fmt.Errorf("prepare: %w", query.ErrSyntax), want: CodeSyntax},
		{name: "evaluation", err: fmt.Errorf("doc.json: %w", query.ErrIndexOutOfRange), want: CodeFailure},
		{name: "evaluation_sentinel", err: fmt.Errorf("doc.json: %w: %w", query.ErrEvaluation, query.ErrIndexOutOfRange), want: CodeEvaluation},
		{name: "malformed_input", err: fmt.Errorf("doc.json: %w", document.ErrMalformed), want: CodeFailure},
		{name: "io", err: os.ErrNotExist, want: CodeFailure},
		{name: "other", err: errors.New("boom"), want: CodeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestCode_FromEvaluator(t *testing.T) {
	t.Parallel()

	doc, err := document.ParseJSON([]byte(`{"a":[1]}`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	_, err = query.Evaluate(doc, query.MustCompile(".a.5"))
	if got := Code(err); got != CodeEvaluation {
		t.Errorf("Code(%v) = %d, want %d", err, got, CodeEvaluation)
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	if r := FromError(nil); r.ExitCode != CodeOK || r.Message != "" {
		t.Errorf("FromError(nil) = %+v, want success without message", r)
	}

	r := FromError(fmt.Errorf("compile: %w", query.ErrSyntax))
	if r.ExitCode != CodeSyntax {
		t.Errorf("ExitCode = %d, want %d", r.ExitCode, CodeSyntax)
	}
	if r.Output != os.Stderr {
		t.Error("error results should go to stderr")
	}
	if want := "Error: compile: query: syntax error\n"; r.Message != want {
		t.Errorf("Message = %q, want %q", r.Message, want)
	}
}

func TestResult_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	(&Result{Output: &buf, Message: "hello\n"}).Print()
	(&Result{Output: &buf}).Print()

	if got := buf.String(); got != "hello\n" {
		t.Errorf("Print() wrote %q", got)
	}
}

func TestErrorf(t *testing.T) {
	t.Parallel()

	r := Errorf("bad %s %d", "flag", 2)
	if r.ExitCode != CodeFailure || r.Message != "bad flag 2" {
		t.Errorf("Errorf() = %+v", r)
	}
}
