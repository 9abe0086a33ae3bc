package pipeline

import (
	"github.com/Inferara/inference-sub000/internal/analyzer"
	"github.com/Inferara/inference-sub000/internal/modules"
)

// LoadModulesProcessor resolves ctx.FilePath and every file it transitively
// pulls in via `mod` declarations into one unified arena, mirroring the
// teacher's SemanticAnalyzerProcessor's own use of modules.Loader ahead of
// running the analyzer.
type LoadModulesProcessor struct {
	Parse modules.Parser
}

// NewLoadModulesProcessor returns a stage that loads ctx.FilePath with parse
// as the injected CST parser (the Inference grammar itself is out of this
// module's scope; callers supply a tree-sitter parser bound to it).
func NewLoadModulesProcessor(parse modules.Parser) *LoadModulesProcessor {
	return &LoadModulesProcessor{Parse: parse}
}

func (p *LoadModulesProcessor) Process(ctx *Context) *Context {
	loader := modules.NewLoader(p.Parse)
	a, err := loader.Load(ctx.FilePath)
	if err != nil {
		ctx.LoadErr = err
		return ctx
	}
	ctx.Arena = a
	return ctx
}

// CheckProcessor runs the four-pass type checker over the arena a prior
// stage produced, mirroring the teacher's SemanticAnalyzerProcessor: skip
// outright if there's nothing to check (ctx.Arena == nil, the previous
// stage having already recorded why).
type CheckProcessor struct{}

func (p *CheckProcessor) Process(ctx *Context) *Context {
	if ctx.Arena == nil {
		return ctx
	}
	typed, errs := analyzer.InferTypes(ctx.Arena)
	if len(errs) > 0 {
		ctx.Errors = append(ctx.Errors, errs...)
		return ctx
	}
	ctx.Typed = typed
	return ctx
}
