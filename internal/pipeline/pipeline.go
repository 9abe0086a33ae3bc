// Package pipeline provides the thin ordered-stage runner pkg/frontend and
// cmd/infc compose the compile stages with — grounded on the teacher's
// internal/pipeline.Pipeline/Processor pair and its
// internal/analyzer.SemanticAnalyzerProcessor /
// internal/backend.ExecutionProcessor stages, which each check the prior
// stage's output before doing any work and keep running so later stages can
// still contribute diagnostics even after an earlier one failed.
package pipeline

import (
	"github.com/Inferara/inference-sub000/internal/analyzer"
	"github.com/Inferara/inference-sub000/internal/arena"
	"github.com/Inferara/inference-sub000/internal/config"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
)

// Context carries one compile's state through the pipeline. Unlike the
// teacher's PipelineContext (which threads an interpreter's runtime value
// and symbol table through as well), this Context only ever needs to carry
// what semantic analysis consumes and produces — there is no backend stage
// in this module's scope.
type Context struct {
	FilePath string
	Limits   config.Limits

	Arena *arena.Arena
	Typed *analyzer.TypedContext

	// LoadErr is set by LoadModulesProcessor on file I/O or CST parse
	// failure — these happen before any AST exists, so unlike Errors they
	// cannot carry a token.Location and don't belong in
	// diagnostics.CheckError's closed taxonomy (spec.md §7 scopes that
	// taxonomy to semantic-analysis diagnostics).
	LoadErr error
	Errors  []diagnostics.CheckError
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs an ordered list of Processors over one Context.
type Pipeline struct {
	processors []Processor
}

// New returns a Pipeline that runs processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order. A stage that finds nothing to do
// (ctx.Arena == nil after a failed load, for instance) is expected to
// return ctx unchanged rather than panic — Run does not stop early on
// errors, the same "continue on errors to collect diagnostics from all
// stages" choice the teacher's Pipeline.Run documents, since a driver
// printing results wants every diagnostic the run could produce, not just
// the first stage's.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
