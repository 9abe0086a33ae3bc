// Package config carries compiler-wide tunables: the recognized source
// extension, the entry-file search order, and a Limits struct governing how
// aggressively a driver should stop on diagnostics. Mirrors the teacher's
// internal/config: plain constants/defaults plus optional env overrides,
// not a general-purpose settings framework.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SourceFileExt is the only recognized Inference source extension.
const SourceFileExt = ".inf"

// EntryFileCandidates is the search order for an implicit entry file when a
// driver is given a directory instead of a file path: src/lib.inf first
// (library-style root), then src/main.inf (binary-style root), then a bare
// lib.inf/main.inf at the directory root for single-file projects.
var EntryFileCandidates = []string{
	"src/lib.inf",
	"src/main.inf",
	"lib.inf",
	"main.inf",
}

// Limits bounds how a checking run behaves under pathological input.
// Load fills it and pkg/frontend carries it on pipeline.Context, but no
// stage reads it: the builder, modules.Loader and analyzer.InferTypes take
// no limits, so neither field changes how a run behaves.
type Limits struct {
	// MaxDiagnostics is an error cap for pass 4 (0 means unlimited).
	// spec.md does not mandate a cap. No stage reads this field, so pass 4
	// always checks every definition.
	MaxDiagnostics int

	// StrictMissingNodes selects whether a CST MISSING node (tree-sitter's
	// marker for a token the grammar expected but didn't find) is a hard
	// build error (spec.md §9 Open Questions: behavior on MISSING nodes is
	// left to the implementation). No stage reads this field: the builder
	// never calls IsMissing and lowers a MISSING node like any other node.
	StrictMissingNodes bool
}

// DefaultLimits is used when Load finds no environment overrides.
var DefaultLimits = Limits{MaxDiagnostics: 0, StrictMissingNodes: false}

// Config is the resolved ambient configuration for one compiler invocation.
type Config struct {
	SourceFileExt string
	Limits        Limits
}

// Load returns the default Config, optionally overridden by a `.env` file in
// the current directory and by INFC_MAX_DIAGNOSTICS/INFC_STRICT_MISSING
// environment variables — the same opt-in, no-config-file-required pattern
// as the teacher's IsTestMode/IsLSPMode globals, except sourced from the
// environment rather than set by a driver's main(). A missing .env file is
// not an error: godotenv.Load only supplies values that aren't already in
// the environment, so a deployment with no .env and no env vars set falls
// straight through to DefaultLimits.
func Load() (*Config, error) {
	_ = godotenv.Load()

	limits := DefaultLimits
	if v, ok := os.LookupEnv("INFC_MAX_DIAGNOSTICS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			limits.MaxDiagnostics = n
		}
	}
	if v, ok := os.LookupEnv("INFC_STRICT_MISSING"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			limits.StrictMissingNodes = b
		}
	}

	return &Config{SourceFileExt: SourceFileExt, Limits: limits}, nil
}
