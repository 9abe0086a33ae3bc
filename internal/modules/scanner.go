// Package modules resolves `mod name;` / `pub mod name { ... }` declarations
// across multiple source files into one unified arena (spec.md §4.3).
//
// Resolution happens at the byte level, before the CST parser ever sees the
// file: scanModules walks the raw source skipping `//` comments and string
// literals, finds every top-level `mod`/`pub mod` declaration, and blanks
// out its span (preserving line numbers) so the parser is handed source
// that no longer contains `mod` syntax at all. The blanked spans are
// reparsed independently — recursively, for inline bodies — and the
// resulting ModuleDefinition nodes are spliced back into the file's
// definition list by source offset. Inside an inline body, nested
// ModuleDefinition nodes are appended after the body's other definitions.
package modules

import "github.com/Inferara/inference-sub000/internal/ast"

// span is a half-open byte range into the scanned source.
type span struct {
	start, end int
}

// moduleDecl is one recognized `mod`/`pub mod` declaration.
type moduleDecl struct {
	name       string
	visibility ast.Visibility
	decl       span // the whole declaration, blanked out of the sanitized source
	nameSpan   span
	body       *span // nil for `mod name;`
}

// scanModules finds every top-level mod declaration in source and returns
// them alongside a sanitized copy of source with every declaration's bytes
// replaced by spaces (newlines preserved, so byte offsets/line numbers of
// everything else stay correct).
func scanModules(source []byte) ([]moduleDecl, []byte) {
	var decls []moduleDecl
	n := len(source)
	depth := 0

	i := 0
	for i < n {
		if source[i] == '/' && i+1 < n && source[i+1] == '/' {
			i = skipLineComment(source, i+2)
			continue
		}
		if source[i] == '"' {
			i = skipString(source, i+1)
			continue
		}
		switch source[i] {
		case '{':
			depth++
			i++
			continue
		case '}':
			if depth > 0 {
				depth--
			}
			i++
			continue
		}

		if depth == 0 && isIdentStart(source[i]) {
			ident, identStart, identEnd := parseIdent(source, i)
			if ident == "pub" {
				j := skipWSAndComments(source, identEnd)
				if j < n && isIdentStart(source[j]) {
					next, _, modEnd := parseIdent(source, j)
					if next == "mod" {
						if decl, nextIdx, ok := parseModuleDecl(source, identStart, modEnd, ast.Public); ok {
							decls = append(decls, decl)
							i = nextIdx
							continue
						}
					}
				}
			} else if ident == "mod" {
				if decl, nextIdx, ok := parseModuleDecl(source, identStart, identEnd, ast.Private); ok {
					decls = append(decls, decl)
					i = nextIdx
					continue
				}
			}
			i = identEnd
			continue
		}

		i++
	}

	sanitized := make([]byte, n)
	copy(sanitized, source)
	for _, d := range decls {
		for idx := d.decl.start; idx < d.decl.end; idx++ {
			if sanitized[idx] != '\n' && sanitized[idx] != '\r' {
				sanitized[idx] = ' '
			}
		}
	}

	return decls, sanitized
}

func parseModuleDecl(source []byte, declStart, modEnd int, visibility ast.Visibility) (moduleDecl, int, bool) {
	n := len(source)
	i := skipWSAndComments(source, modEnd)
	if i >= n || !isIdentStart(source[i]) {
		return moduleDecl{}, 0, false
	}
	name, nameStart, nameEnd := parseIdent(source, i)
	i = skipWSAndComments(source, nameEnd)
	if i >= n {
		return moduleDecl{}, 0, false
	}

	if source[i] == ';' {
		return moduleDecl{
			name:       name,
			visibility: visibility,
			decl:       span{declStart, i + 1},
			nameSpan:   span{nameStart, nameEnd},
			body:       nil,
		}, i + 1, true
	}

	if source[i] == '{' {
		bodyStart := i + 1
		bodyEnd, ok := findMatchingBrace(source, bodyStart)
		if !ok {
			return moduleDecl{}, 0, false
		}
		b := span{bodyStart, bodyEnd}
		return moduleDecl{
			name:       name,
			visibility: visibility,
			decl:       span{declStart, bodyEnd + 1},
			nameSpan:   span{nameStart, nameEnd},
			body:       &b,
		}, bodyEnd + 1, true
	}

	return moduleDecl{}, 0, false
}

func findMatchingBrace(source []byte, start int) (int, bool) {
	n := len(source)
	i := start
	depth := 1
	for i < n {
		if source[i] == '/' && i+1 < n && source[i+1] == '/' {
			i = skipLineComment(source, i+2)
			continue
		}
		if source[i] == '"' {
			i = skipString(source, i+1)
			continue
		}
		switch source[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i++
	}
	return 0, false
}

func skipLineComment(source []byte, i int) int {
	n := len(source)
	for i < n && source[i] != '\n' {
		i++
	}
	return i
}

func skipString(source []byte, i int) int {
	n := len(source)
	for i < n {
		switch {
		case source[i] == '\\' && i+1 < n:
			i += 2
		case source[i] == '"':
			return i + 1
		default:
			i++
		}
	}
	return i
}

func skipWSAndComments(source []byte, i int) int {
	n := len(source)
	for i < n {
		switch {
		case source[i] == ' ' || source[i] == '\t' || source[i] == '\n' || source[i] == '\r':
			i++
		case source[i] == '/' && i+1 < n && source[i+1] == '/':
			i = skipLineComment(source, i+2)
		default:
			return i
		}
	}
	return i
}

func parseIdent(source []byte, start int) (string, int, int) {
	n := len(source)
	i := start
	for i < n && isIdentContinue(source[i]) {
		i++
	}
	return string(source[start:i]), start, i
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}
