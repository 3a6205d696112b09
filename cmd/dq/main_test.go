package main

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacoelho/dq/internal/exit"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(context.Background(), args, streams{
		stdin:  strings.NewReader(stdin),
		stdout: &out,
		stderr: &errOut,
	})
	return out.String(), errOut.String(), code
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	usersJSON := filepath.Join(dir, "users.json")
	if err := os.WriteFile(usersJSON, []byte(`{"users":[{"name":"ana","age":31},{"name":"bo","age":27}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	usersYAML := filepath.Join(dir, "users.yaml")
	if err := os.WriteFile(usersYAML, []byte("users:\n  - name: cy\n    age: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  string
		wantErr  string
		wantCode int
	}{
		{
			name:     "file_query",
			args:     []string{".users[].name", usersJSON, "--compact"},
			wantOut:  "\"ana\"\n\"bo\"\n",
			wantCode: exit.CodeOK,
		},
		{
			name:     "stdin_query",
			args:     []string{".users.1", "--output", "raw"},
			stdin:    `{"users":["x","y"]}`,
			wantOut:  "y\n",
			wantCode: exit.CodeOK,
		},
		{
			name:     "empty_query_selects_document",
			args:     []string{"", "--compact"},
			stdin:    `{"b":1,"a":2}`,
			wantOut:  "{\"b\":1,\"a\":2}\n",
			wantCode: exit.CodeOK,
		},
		{
			name:     "yaml_to_yaml",
			args:     []string{".users[0]", usersYAML, "--output", "yaml"},
			wantOut:  "name: cy\nage: 40\n",
			wantCode: exit.CodeOK,
		},
		{
			name:     "stream",
			args:     []string{".v", "--stream", "--compact", "-"},
			stdin:    "{\"v\":1}\n{\"v\":[2]}\n",
			wantOut:  "1\n[2]\n",
			wantCode: exit.CodeOK,
		},
		{
			name:     "jsonpath_engine",
			args:     []string{"$.users[-1].name", usersJSON, "--engine", "jsonpath", "--output", "raw"},
			wantOut:  "bo\n",
			wantCode: exit.CodeOK,
		},
		{
			name:     "syntax_error",
			args:     []string{".users[0", usersJSON},
			wantErr:  "query: syntax error",
			wantCode: exit.CodeSyntax,
		},
		{
			name:     "evaluation_error",
			args:     []string{".users.name", usersJSON},
			wantErr:  "query: evaluation error",
			wantCode: exit.CodeEvaluation,
		},
		{
			name:     "strict_missing_key",
			args:     []string{".groups", usersJSON, "--strict"},
			wantErr:  "key not found",
			wantCode: exit.CodeEvaluation,
		},
		{
			name:     "missing_query",
			args:     []string{},
			wantErr:  "requires at least 1 arg",
			wantCode: exit.CodeFailure,
		},
		{
			name:     "invalid_output",
			args:     []string{".a", "--output", "csv"},
			wantErr:  "invalid output format",
			wantCode: exit.CodeFailure,
		},
		{
			name:     "missing_file",
			args:     []string{".a", filepath.Join(dir, "nope.json")},
			wantErr:  "input file not found",
			wantCode: exit.CodeFailure,
		},
		{
			name:     "malformed_input",
			args:     []string{".a"},
			stdin:    `{"a":`,
			wantErr:  "malformed input",
			wantCode: exit.CodeFailure,
		},
		{
			name:     "compile_canonical",
			args:     []string{"compile", ".a[]"},
			wantOut:  ".a[]\n",
			wantCode: exit.CodeOK,
		},
		{
			name:     "compile_syntax_error",
			args:     []string{"compile", ".a[,2]"},
			wantErr:  "unexpected character",
			wantCode: exit.CodeSyntax,
		},
		{
			name:     "compile_bad_variable",
			args:     []string{"compile", "--go", "--var", "1x", ".a"},
			wantErr:  "invalid Go identifier",
			wantCode: exit.CodeFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr, code := execute(t, tt.stdin, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantOut != "" || tt.wantCode == exit.CodeOK {
				if stdout != tt.wantOut {
					t.Errorf("stdout = %q, want %q", stdout, tt.wantOut)
				}
			}
			if tt.wantErr != "" && !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantErr)
			}
		})
	}
}

func TestRun_CompileGo(t *testing.T) {
	t.Parallel()

	stdout, stderr, code := execute(t, "", "compile", "--go", "--package", "queries", "--var", "Names", ".friends[0-2,x].name")
	if code != exit.CodeOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	if _, err := parser.ParseFile(token.NewFileSet(), "names.go", stdout, parser.AllErrors); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, stdout)
	}

	for _, want := range []string{
		"package queries",
		`import "github.com/jacoelho/dq/query"`,
		"var Names = query.Path{",
		`query.Identifier("friends")`,
		`query.SliceFrom(0), query.SliceTo(2), query.Ident("x")`,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("generated source missing %q:\n%s", want, stdout)
		}
	}
}

func TestRun_Debug(t *testing.T) {
	t.Parallel()

	_, stderr, code := execute(t, `{"a":1}`, ".a", "--debug")
	if code != exit.CodeOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	for _, want := range []string{"query compiled", "run complete", "summary.documents=1"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("debug log missing %q:\n%s", want, stderr)
		}
	}
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	code := run(ctx, []string{".a"}, streams{stdin: strings.NewReader(`{"a":1}`), stdout: &out, stderr: &errOut})
	if code != exit.CodeFailure {
		t.Errorf("exit code = %d, want %d", code, exit.CodeFailure)
	}
	if out.Len() != 0 {
		t.Errorf("cancelled run wrote %q", out.String())
	}
}
