// Package utils holds small path/name helpers — grounded on the teacher's
// internal/utils/path_utils.go, adapted from its dot-import-path resolution
// to Inference's directory-and-extension conventions. No other package in
// this module imports it.
package utils

import (
	"path/filepath"
	"strings"

	"github.com/Inferara/inference-sub000/internal/config"
)

// TrimSourceExt removes a trailing ".inf" from name, if present.
func TrimSourceExt(name string) string {
	if strings.HasSuffix(name, config.SourceFileExt) {
		return name[:len(name)-len(config.SourceFileExt)]
	}
	return name
}

// HasSourceExt reports whether path ends in the recognized source extension.
func HasSourceExt(path string) bool {
	return strings.HasSuffix(path, config.SourceFileExt)
}

// ModuleNameOf derives the implicit module name a file contributes when
// reached by directory-relative `mod name;` resolution: its base filename
// with the source extension trimmed. "src/sub.inf" -> "sub".
func ModuleNameOf(path string) string {
	return TrimSourceExt(filepath.Base(path))
}

// DirOf returns the directory a path should be resolved relative to: path's
// own directory if it names a source file, or path itself if it already
// names a directory (no recognized extension) — mirrors the teacher's
// GetModuleDir so module-relative paths resolve the same way regardless of
// whether a driver was given a file or a directory.
func DirOf(path string) string {
	if HasSourceExt(path) {
		return filepath.Dir(path)
	}
	return path
}
