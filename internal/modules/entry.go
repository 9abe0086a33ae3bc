package modules

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Inferara/inference-sub000/internal/config"
)

// MatchesSourceExt reports whether name (a bare filename, not a path) is a
// recognized Inference source file, using doublestar.Match the way
// termfx-morfx's FileWalker matches discovered paths against glob patterns
// rather than a bare strings.HasSuffix check — this lets the recognized-
// source-file pattern grow beyond a single literal extension (e.g. a future
// "*.inf" vs "*.test.inf") without touching call sites.
func MatchesSourceExt(name string) bool {
	matched, err := doublestar.Match("*"+config.SourceFileExt, name)
	return err == nil && matched
}

// FindEntryFile probes config.EntryFileCandidates under dir in order,
// returning the first one that exists — the directory-to-entry-file
// resolution a driver needs when handed a project directory rather than an
// explicit root file (spec.md §4.3 names file-based `mod` resolution but
// leaves "what is the root file" to the embedding driver; SPEC_FULL.md's
// ambient config section assigns that search order to internal/config,
// with the match itself performed here).
func FindEntryFile(dir string) (string, bool) {
	for _, candidate := range config.EntryFileCandidates {
		full := filepath.Join(dir, candidate)
		if info, err := os.Stat(full); err == nil && !info.IsDir() && MatchesSourceExt(filepath.Base(full)) {
			return full, true
		}
	}
	return "", false
}
