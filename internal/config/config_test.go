package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	want := Config{
		Engine:    "native",
		Input:     InputAuto,
		Output:    OutputJSON,
		GoPackage: "main",
		GoVar:     "Query",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Defaults() = %+v, want %+v", cfg, want)
	}
}

func TestConfig_Inputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{name: "stdin_by_default", files: nil, want: []string{Stdin}},
		{name: "explicit_files", files: []string{"a.json", "b.yaml"}, want: []string{"a.json", "b.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Config{Files: tt.files}
			if got := cfg.Inputs(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Inputs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	existing := writeFile(t, "doc.json", `{"a":1}`)
	missing := filepath.Join(t.TempDir(), "missing.json")

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "valid_defaults",
			modify: func(*Config) {},
		},
		{
			name: "valid_everything_set",
			modify: func(c *Config) {
				c.Engine = "jsonpath"
				c.Input = InputYAML
				c.Output = OutputRaw
				c.RateLimit = 2.5
				c.Files = []string{existing, Stdin}
			},
		},
		{
			name:   "empty_query_selects_document",
			modify: func(c *Config) { c.Query = "" },
		},
		{
			name:    "unknown_engine",
			modify:  func(c *Config) { c.Engine = "jq" },
			wantErr: ErrInvalidEngine,
		},
		{
			name:    "unknown_input",
			modify:  func(c *Config) { c.Input = "toml" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown_output",
			modify:  func(c *Config) { c.Output = "csv" },
			wantErr: ErrInvalidOutput,
		},
		{
			name:    "negative_rate",
			modify:  func(c *Config) { c.RateLimit = -1 },
			wantErr: ErrNegativeRate,
		},
		{
			name:    "missing_file",
			modify:  func(c *Config) { c.Files = []string{existing, missing} },
			wantErr: ErrInputFileNotFound,
		},
		{
			name:    "stdin_twice",
			modify:  func(c *Config) { c.Files = []string{Stdin, Stdin} },
			wantErr: ErrStdinRepeated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Defaults()
			cfg.Query = ".a"
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateMissingFileWrapsOSError(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.Query = ".a"
	cfg.Files = []string{filepath.Join(t.TempDir(), "nope.json")}

	if err := cfg.Validate(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Validate() error = %v, want os.ErrNotExist", err)
	}
}
