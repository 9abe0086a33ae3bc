package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("INFC_MAX_DIAGNOSTICS")
	os.Unsetenv("INFC_STRICT_MISSING")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SourceFileExt != ".inf" {
		t.Errorf("SourceFileExt = %q, want .inf", cfg.SourceFileExt)
	}
	if cfg.Limits != DefaultLimits {
		t.Errorf("Limits = %+v, want defaults %+v", cfg.Limits, DefaultLimits)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INFC_MAX_DIAGNOSTICS", "25")
	t.Setenv("INFC_STRICT_MISSING", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Limits.MaxDiagnostics != 25 {
		t.Errorf("MaxDiagnostics = %d, want 25", cfg.Limits.MaxDiagnostics)
	}
	if !cfg.Limits.StrictMissingNodes {
		t.Error("StrictMissingNodes = false, want true")
	}
}

func TestLoadIgnoresUnparsableOverrides(t *testing.T) {
	t.Setenv("INFC_MAX_DIAGNOSTICS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Limits.MaxDiagnostics != DefaultLimits.MaxDiagnostics {
		t.Errorf("MaxDiagnostics = %d, want default %d kept on parse failure", cfg.Limits.MaxDiagnostics, DefaultLimits.MaxDiagnostics)
	}
}
