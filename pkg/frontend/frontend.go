// Package frontend is the public, stable API surface of the semantic
// analysis core: one call resolves a root source file's modules and runs
// the four-pass type checker over the result. Grounded on the teacher's
// cmd/lsp/module_loader.go and cmd/funxy/main.go, which each wrap the same
// "load, then analyze" sequence behind one function so the LSP server and
// the CLI don't each re-wire the phase pipeline themselves.
package frontend

import (
	"github.com/Inferara/inference-sub000/internal/analyzer"
	"github.com/Inferara/inference-sub000/internal/config"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
	"github.com/Inferara/inference-sub000/internal/modules"
	"github.com/Inferara/inference-sub000/internal/pipeline"
)

// Parser produces a CST from one file's source. The Inference grammar
// itself is out of this module's scope (spec.md §1 Non-goals); callers
// supply a tree-sitter parser bound to it (internal/cst.WrapTreeSitter
// adapts the resulting nodes).
type Parser = modules.Parser

// Result is what Compile returns: the typed arena and symbol table on a
// clean compile, or the accumulated diagnostics on a failed one. At most
// one of Typed/Errors is meaningful per spec.md §4.6's propagation policy:
// a module-load failure reports LoadErr and leaves both empty.
type Result struct {
	Typed   *analyzer.TypedContext
	Errors  []diagnostics.CheckError
	LoadErr error
}

// Compile resolves rootPath and every file it transitively pulls in via
// `mod` declarations, then runs the four-pass checker over the unified
// result. cfg may be nil, in which case config.Load's defaults apply.
func Compile(rootPath string, parse Parser, cfg *config.Config) (*Result, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	p := pipeline.New(
		pipeline.NewLoadModulesProcessor(parse),
		&pipeline.CheckProcessor{},
	)
	ctx := p.Run(&pipeline.Context{FilePath: rootPath, Limits: cfg.Limits})

	return &Result{Typed: ctx.Typed, Errors: ctx.Errors, LoadErr: ctx.LoadErr}, nil
}
