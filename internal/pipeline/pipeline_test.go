package pipeline

import (
	"os"
	"testing"

	"github.com/Inferara/inference-sub000/internal/cst"
)

func failingParser(source []byte, path string) (cst.Node, error) {
	return nil, os.ErrNotExist
}

func TestLoadModulesProcessorRecordsLoadErr(t *testing.T) {
	proc := NewLoadModulesProcessor(failingParser)
	ctx := proc.Process(&Context{FilePath: "/does/not/exist.inf"})
	if ctx.LoadErr == nil {
		t.Fatal("expected LoadErr to be set for an unreadable root file")
	}
	if ctx.Arena != nil {
		t.Error("expected no arena on a failed load")
	}
}

func TestCheckProcessorSkipsWithoutArena(t *testing.T) {
	proc := &CheckProcessor{}
	ctx := proc.Process(&Context{})
	if ctx.Typed != nil {
		t.Error("expected no typed context when no arena was loaded")
	}
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	p := New(NewLoadModulesProcessor(failingParser), &CheckProcessor{})
	ctx := p.Run(&Context{FilePath: "/does/not/exist.inf"})
	if ctx.LoadErr == nil {
		t.Fatal("expected the load stage's error to survive into the final context")
	}
	if ctx.Typed != nil {
		t.Error("check stage should not have run past a failed load")
	}
}
