package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Inferara/inference-sub000/internal/arena"
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/builder"
	"github.com/Inferara/inference-sub000/internal/cst"
	"github.com/Inferara/inference-sub000/internal/token"
)

// Parser produces a CST from one file's sanitized source. The grammar that
// backs it is out of scope for this module (spec.md §1 Non-goals) — callers
// supply it, typically a tree-sitter parser bound to the Inference grammar.
type Parser func(source []byte, path string) (cst.Node, error)

// queueEntry is one pending file parse, optionally populating an already
// allocated ModuleDefinition's Body in place (spec.md §4.3).
type queueEntry struct {
	filePath string
	module   *ast.ModuleDefinition // nil for the root file and for inline `mod { ... }`
}

// Loader drives a multi-file compile: it scans each file for mod
// declarations, recursively resolves external submodule files, and merges
// every file's contribution into one arena sharing a single id allocator
// (spec.md §4.3).
type Loader struct {
	parse Parser
	b     *builder.Builder
	queue []queueEntry
}

// NewLoader returns a Loader that will parse files with parse, accumulating
// into a freshly allocated arena.
func NewLoader(parse Parser) *Loader {
	return &Loader{parse: parse, b: builder.New()}
}

// Load resolves rootPath and every file it transitively pulls in via `mod`
// declarations, returning the unified arena.
func (l *Loader) Load(rootPath string) (*arena.Arena, error) {
	l.queue = append(l.queue, queueEntry{filePath: rootPath})

	for len(l.queue) > 0 {
		entry := l.queue[len(l.queue)-1]
		l.queue = l.queue[:len(l.queue)-1]

		source, err := os.ReadFile(entry.filePath)
		if err != nil {
			return nil, fmt.Errorf("modules: reading %s: %w", entry.filePath, err)
		}

		_, defs, err := l.parseFile(entry.filePath, source, entry.module != nil)
		if err != nil {
			return nil, fmt.Errorf("modules: parsing %s: %w", entry.filePath, err)
		}

		if entry.module != nil {
			entry.module.Body = defs
		}

		for _, def := range defs {
			if mod, ok := def.(*ast.ModuleDefinition); ok {
				if err := l.processModule(mod, entry.filePath); err != nil {
					return nil, err
				}
			}
		}
	}

	return l.b.Arena(), nil
}

// parseFile scans source for mod declarations, hands the sanitized bytes to
// the injected Parser, and lowers the result through the builder. isSubmodule
// mirrors parser_context.rs's store_definitions (inverted): a file reached
// only to populate an external ModuleDefinition's Body has that body as the
// canonical home for its definitions, so this SourceFile node's own
// Directives/Definitions are cleared once the caller has what it needs —
// keeping the arena from holding the same definitions reachable two ways.
func (l *Loader) parseFile(path string, source []byte, isSubmodule bool) (*ast.SourceFile, []ast.Definition, error) {
	decls, sanitized := scanModules(source)

	root, err := l.parse(sanitized, path)
	if err != nil {
		return nil, nil, err
	}

	file, err := l.b.AddSourceCode(root, sanitized, path)
	if err != nil {
		return nil, nil, err
	}

	for _, decl := range decls {
		mod, err := l.buildModuleFromDecl(path, source, sanitized, source, 0, decl, file.NodeID())
		if err != nil {
			return nil, nil, err
		}
		file.Definitions = append(file.Definitions, mod)
	}
	sort.SliceStable(file.Definitions, func(i, j int) bool {
		return file.Definitions[i].Location().OffsetStart < file.Definitions[j].Location().OffsetStart
	})

	defs := file.Definitions
	if isSubmodule {
		file.Directives = nil
		file.Definitions = nil
	}

	return file, defs, nil
}

// buildModuleFromDecl allocates the ModuleDefinition/Identifier pair for one
// scanned mod declaration directly (bypassing buildDefinition's CST
// dispatch, since this text never reaches the parser — spec.md §4.3), and
// recursively lowers an inline body's text.
//
// original/sanitized are the byte slices scanModules was called against to
// produce decl (so decl's spans are relative to them); rootSource is the
// whole file's untouched bytes and baseOffset is original's absolute byte
// offset within it — together they let a nested `pub mod` body still report
// correct line/column positions against the file diagnostics are rendered
// for, rather than against the body's own local substring.
func (l *Loader) buildModuleFromDecl(path string, original, sanitized, rootSource []byte, baseOffset int, decl moduleDecl, parentID uint32) (*ast.ModuleDefinition, error) {
	alloc := l.b.Allocator()
	arenaRef := l.b.Arena()

	modID := alloc.Next()
	nameID := alloc.Next()

	nameLoc := locationOf(rootSource, baseOffset+decl.nameSpan.start, baseOffset+decl.nameSpan.end)
	name := &ast.Identifier{Base: ast.Base{Id: nameID, Loc: nameLoc}, Name: decl.name}
	arenaRef.AddNode(name, modID)

	declLoc := locationOf(rootSource, baseOffset+decl.decl.start, baseOffset+decl.decl.end)
	mod := &ast.ModuleDefinition{
		Base:       ast.Base{Id: modID, Loc: declLoc},
		Name:       name,
		Visibility: decl.visibility,
	}
	arenaRef.AddNode(mod, parentID)

	if decl.body == nil {
		modPath, ok := findSubmodulePath(path, decl.name)
		if !ok {
			return mod, nil
		}
		l.queue = append(l.queue, queueEntry{filePath: modPath, module: mod})
		return mod, nil
	}

	bodySource := sanitized[decl.body.start:decl.body.end]
	bodyBaseOffset := baseOffset + decl.body.start
	bodyDecls, bodySanitized := scanModules(bodySource)

	bodyRoot, err := l.parse(bodySanitized, path)
	if err != nil {
		return nil, err
	}

	bodyDefs, err := l.buildInlineBody(bodyRoot, bodySanitized, modID)
	if err != nil {
		return nil, err
	}

	for _, bd := range bodyDecls {
		nested, err := l.buildModuleFromDecl(path, bodySource, bodySanitized, rootSource, bodyBaseOffset, bd, modID)
		if err != nil {
			return nil, err
		}
		bodyDefs = append(bodyDefs, nested)
	}

	mod.Body = bodyDefs
	return mod, nil
}

// buildInlineBody lowers an inline `pub mod name { ... }` body's root node
// (itself shaped like a source_file by the injected Parser) into a plain
// definition list, without allocating a second SourceFile node.
func (l *Loader) buildInlineBody(root cst.Node, source []byte, parentID uint32) ([]ast.Definition, error) {
	var defs []ast.Definition
	count := root.ChildCount()
	for i := 0; i < count; i++ {
		child := root.Child(i)
		if child == nil || child.Kind() == "use_directive" {
			continue
		}
		def, err := l.b.BuildDefinitionForModule(child, source, parentID)
		if err != nil {
			return nil, err
		}
		if def != nil {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// findSubmodulePath resolves `mod name;` to a file, trying
// `{dir}/{name}.inf` then `{dir}/{name}/mod.inf` (spec.md §4.3).
func findSubmodulePath(currentFile, moduleName string) (string, bool) {
	dir := filepath.Dir(currentFile)

	fileCandidate := filepath.Join(dir, moduleName+".inf")
	if fileExists(fileCandidate) {
		return fileCandidate, true
	}

	modCandidate := filepath.Join(dir, moduleName, "mod.inf")
	if fileExists(modCandidate) {
		return modCandidate, true
	}

	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// processModule recurses into an already-resolved inline module's nested
// mod declarations, mirroring parser_context.rs's process_module. An
// external module's file has already been queued by buildModuleFromDecl.
func (l *Loader) processModule(mod *ast.ModuleDefinition, currentFile string) error {
	if mod.Body == nil {
		// An external module's Body stays nil until its queued file is
		// parsed (an empty inline body is nil too); nothing to recurse into.
		return nil
	}
	for _, def := range mod.Body {
		if child, ok := def.(*ast.ModuleDefinition); ok {
			if err := l.processModule(child, currentFile); err != nil {
				return err
			}
		}
	}
	return nil
}

// locationOf converts a byte span in source into a token.Location with
// 1-based line/column positions.
func locationOf(source []byte, start, end int) token.Location {
	idx := newLineIndex(source)
	startLine, startCol := idx.lineCol(start)
	endLine, endCol := idx.lineCol(end)
	return token.Location{
		OffsetStart: start,
		OffsetEnd:   end,
		Start:       token.Position{Line: startLine, Column: startCol},
		End:         token.Position{Line: endLine, Column: endCol},
	}
}

// lineIndex maps byte offsets to 1-based line/column pairs via a
// precomputed table of line-start offsets, avoiding an O(n) rescan per
// lookup (mirrors the original's own LineIndex).
type lineIndex struct {
	starts []int
}

func newLineIndex(source []byte) *lineIndex {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (idx *lineIndex) lineCol(offset int) (line, col int) {
	// binary search for the last line start <= offset
	lo, hi := 0, len(idx.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if idx.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - idx.starts[lo] + 1
}
