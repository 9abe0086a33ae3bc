package analyzer

import (
	"strings"
	"testing"

	"github.com/Inferara/inference-sub000/internal/arena"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
)

// expectCheckError runs the checker over a and returns the first error for
// which match returns true, failing the test otherwise. Adapted from
// funxy's analyzer_errors_test.go expectAnalyzerError: the teacher matches
// by a numeric ErrorCode since its DiagnosticError is one struct carrying a
// code; this module's diagnostics are a closed taxonomy of distinct structs
// instead; so the test names what it wants with a predicate (usually a type
// assertion) rather than a code.
func expectCheckError(t *testing.T, a *arena.Arena, wantDesc string, match func(diagnostics.CheckError) bool) diagnostics.CheckError {
	t.Helper()
	_, errs := InferTypes(a)
	if len(errs) == 0 {
		t.Fatalf("expected %s, got no errors", wantDesc)
	}
	for _, e := range errs {
		if match(e) {
			return e
		}
	}
	t.Fatalf("expected %s, got:\n%s", wantDesc, joinErrors(errs))
	return nil
}

// expectNoErrors asserts InferTypes(a) produced no diagnostics and returns
// the resulting TypedContext, mirroring funxy's expectNoAnalyzerErrors.
func expectNoErrors(t *testing.T, a *arena.Arena) *TypedContext {
	t.Helper()
	ctx, errs := InferTypes(a)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got:\n%s", joinErrors(errs))
	}
	return ctx
}

func joinErrors(errs []diagnostics.CheckError) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}
