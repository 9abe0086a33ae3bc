// Command infc is a minimal demo driver over pkg/frontend — it contributes
// no design of its own (spec.md §1 keeps the CLI out of the core's scope);
// it exists to show pkg/frontend.Compile wired end to end the way
// termfx-morfx's demo/cmd/main.go wires a root cobra.Command with
// subcommands over its own core package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Inferara/inference-sub000/internal/config"
	"github.com/Inferara/inference-sub000/internal/cst"
	"github.com/Inferara/inference-sub000/internal/modules"
	"github.com/Inferara/inference-sub000/pkg/frontend"
)

// noGrammarParser is the stand-in modules.Parser this demo ships with: the
// Inference tree-sitter grammar itself is out of this module's scope
// (spec.md §1 Non-goals). A real host wires its own grammar's
// cst.WrapTreeSitter-adapted root node in here instead.
func noGrammarParser(source []byte, path string) (cst.Node, error) {
	return nil, fmt.Errorf("infc: no Inference grammar is wired into this demo build; embed pkg/frontend.Compile with your own modules.Parser")
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Resolve modules and run the four-pass type checker over a root file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				entry, ok := modules.FindEntryFile(path)
				if !ok {
					return fmt.Errorf("no entry file found under %s (tried %v)", path, config.EntryFileCandidates)
				}
				path = entry
			}

			result, err := frontend.Compile(path, noGrammarParser, nil)
			if err != nil {
				return err
			}
			if result.LoadErr != nil {
				return result.LoadErr
			}
			if len(result.Errors) > 0 {
				for _, e := range result.Errors {
					loc := e.Loc()
					fmt.Fprintf(os.Stderr, "%s:%s: %s\n", path, loc.String(), e.Error())
				}
				os.Exit(1)
			}

			fmt.Printf("%s: ok (%d source files, %d typed nodes)\n",
				path, len(result.Typed.SourceFiles()), result.Typed.NodeCount())
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:   "infc",
		Short: "Demo driver for the Inference semantic analysis core",
	}
	root.AddCommand(newCheckCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
