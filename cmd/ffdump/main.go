// Command ffdump lexes and parses ff source files and prints the parsed
// top-level collections, either as a tree-shaped text dump or as JSON for
// a downstream code-generator process. It performs no code generation
// itself — it is the front-end's one outward-facing tool, built to let a
// generator pipeline inspect pkg/parser's output without linking against
// this module directly.
package main

import (
	"fmt"
	"os"

	"github.com/fflang/ffc/cmd/ffdump/internal/dump"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ffdump",
		Short: "Lex and parse ff source, dumping the parsed top-level collections",
	}
	root.AddCommand(newParseCmd())

	return root
}

func newParseCmd() *cobra.Command {
	var (
		asJSON  bool
		expr    string
		traceID string
	)

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse one or more ff files (or a single --expr string) and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if expr == "" && len(args) == 0 {
				return fmt.Errorf("ffdump parse: pass one or more files, or --expr")
			}
			if traceID == "" {
				traceID = uuid.NewString()
			}

			var units []dump.Unit
			if expr != "" {
				units = append(units, dump.Unit{Label: "<expr>", Source: expr})
			}
			for _, path := range args {
				src, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("ffdump parse: %w", err)
				}
				units = append(units, dump.Unit{Label: path, Source: string(src)})
			}

			results := dump.ParseAll(units)

			out := cmd.OutOrStdout()
			failed := false
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "[trace=%s] %s: %v\n", traceID, r.Unit.Label, r.Err)
					failed = true

					continue
				}
				if asJSON {
					b, err := dump.ToJSON(r.Result)
					if err != nil {
						return fmt.Errorf("ffdump parse: marshal %s: %w", r.Unit.Label, err)
					}
					fmt.Fprintf(out, "[trace=%s] %s:\n%s\n", traceID, r.Unit.Label, b)
				} else {
					fmt.Fprintf(out, "[trace=%s] %s:\n%s\n", traceID, r.Unit.Label, dump.ToText(r.Result))
				}
			}
			if failed {
				return fmt.Errorf("ffdump parse: one or more units failed to parse")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print each unit's result as JSON instead of a text tree")
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "parse a single expression-or-program string instead of reading files")
	cmd.Flags().StringVar(&traceID, "trace-id", "", "trace id attached to each unit's header line and each error line (auto-generated via google/uuid if omitted)")

	return cmd
}
