// Command dq evaluates path queries against JSON and YAML documents.
//
// Logging:
//   - The logger is created here, on stderr, and injected into components
//   - --debug lowers the level from warn to debug
//   - No global slog configuration
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jacoelho/dq/internal/codegen"
	"github.com/jacoelho/dq/internal/config"
	"github.com/jacoelho/dq/internal/engine"
	"github.com/jacoelho/dq/internal/exit"
	"github.com/jacoelho/dq/internal/logging"
	"github.com/jacoelho/dq/internal/runner"
	"github.com/jacoelho/dq/query"
)

var version = "dev"

// streams are the process streams, replaced in tests.
type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], streams{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, s streams) int {
	cmd := newRootCommand(s)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	result := exit.FromError(err)
	if err != nil {
		result.Output = s.stderr
	}
	result.Print()
	return result.ExitCode
}

func newRootCommand(s streams) *cobra.Command {
	cfg := config.Defaults()

	rootCmd := &cobra.Command{
		Use:   "dq [flags] QUERY [FILE...]",
		Short: "Evaluate a path query against JSON or YAML documents",
		Long: `dq evaluates QUERY against each FILE, or standard input when no FILE
or "-" is given, and prints every selected value.

Query syntax:
  .name          object field, or array element when name is an index
  [0,2,5-7]      indices, inclusive ranges and keys, comma separated
  []             every element or member`,
		Example: `  dq .users[0-2].name users.json
  dq '.items[].id' --stream events.ndjson
  dq --output yaml .spec.containers[] deployment.yaml
  dq --engine jsonpath '$.store.book[*].title' store.json`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Query = args[0]
			cfg.Files = args[1:]
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.New(s.stderr, cfg.Debug)

			r, err := runner.New(&cfg, runner.Options{Stdin: s.stdin, Stdout: s.stdout, Logger: logger})
			if err != nil {
				return err
			}

			summary, err := r.Run(cmd.Context())
			logger.Debug("run complete", "summary", summary)
			return err
		},
	}

	rootCmd.SetIn(s.stdin)
	rootCmd.SetOut(s.stdout)
	rootCmd.SetErr(s.stderr)

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.Engine, "engine", cfg.Engine, "query engine: "+strings.Join(engine.Names(), " or "))
	flags.StringVar(&cfg.Input, "input", cfg.Input, "input format: auto, json or yaml (auto picks yaml for .yaml and .yml files)")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "output format: json, yaml or raw")
	flags.BoolVar(&cfg.Compact, "compact", false, "print JSON results on a single line")
	flags.BoolVar(&cfg.Stream, "stream", false, "evaluate every document of each input (NDJSON, multi-document YAML)")
	flags.BoolVar(&cfg.Strict, "strict", false, "fail when a named object key is missing")
	flags.Float64Var(&cfg.RateLimit, "rate", 0, "maximum documents evaluated per second (0 for unlimited)")
	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", false, "log debug records to stderr")

	rootCmd.AddCommand(newCompileCommand(&cfg))

	return rootCmd
}

func newCompileCommand(cfg *config.Config) *cobra.Command {
	var emitGo bool

	cmd := &cobra.Command{
		Use:   "compile [--go] QUERY",
		Short: "Print the canonical form of a query, or Go source declaring it",
		Example: `  dq compile '.a[2-4,x]'
  dq compile --go --package queries --var FriendNames '.friends[].name' > friends_query.go`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(cmd.ErrOrStderr(), cfg.Debug).With("component", "compile")

			p, err := query.Compile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("query compiled", "query", args[0], "operators", len(p))

			if !emitGo {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), p.String())
				return err
			}

			src, err := codegen.Generate(p, codegen.Options{
				Package:  cfg.GoPackage,
				Variable: cfg.GoVar,
				Source:   args[0],
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(src)
			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&emitGo, "go", false, "emit a Go file declaring the compiled query.Path")
	flags.StringVar(&cfg.GoPackage, "package", cfg.GoPackage, "package clause of the generated file")
	flags.StringVar(&cfg.GoVar, "var", cfg.GoVar, "name of the generated variable")

	return cmd
}
