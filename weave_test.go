package weave

import (
	"context"
	"testing"

	"github.com/weavelang/weave/syntax"
)

func TestParseFileLosslessByDefault(t *testing.T) {
	src := "function f() {\n  return 1;\n}\n"
	comp := ParseFile("f.wv", []byte(src), Options{})
	if comp.HasErrors() {
		t.Fatalf("unexpected errors: %v", comp.Diags.Records())
	}
	if got := comp.Root.FullText(); got != src {
		t.Errorf("FullText() mismatch:\n got: %q\nwant: %q", got, src)
	}
}

func TestParseFileTriviaModeNone(t *testing.T) {
	src := "function f() {\n  // comment\n  return 1;\n}\n"
	comp := ParseFile("f.wv", []byte(src), Options{TriviaMode: syntax.TriviaModeNone})
	if comp.HasErrors() {
		t.Fatalf("unexpected errors: %v", comp.Diags.Records())
	}
	if got := comp.Root.FullText(); got == src {
		t.Errorf("expected TriviaModeNone to drop trivia, losing the lossless round trip")
	}
}

func TestParseFileReportsErrorsWithoutAborting(t *testing.T) {
	comp := ParseFile("f.wv", []byte("function f() { return 1 }\n"), Options{})
	if !comp.HasErrors() {
		t.Fatalf("expected a diagnostic for the missing ';'")
	}
	if comp.Root == nil {
		t.Fatalf("expected a root node even in the presence of errors")
	}
}

func TestCompileAllRunsEachFileInItsOwnArena(t *testing.T) {
	files := []File{
		{Name: "a.wv", Src: []byte("const a = 1;\n")},
		{Name: "b.wv", Src: []byte("const b = 2;\n")},
	}
	results, err := CompileAll(context.Background(), files, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected two compilations, got %d", len(results))
	}
	if results[0].Arena == results[1].Arena {
		t.Errorf("expected each file to get its own Arena")
	}
	for i, r := range results {
		if r.HasErrors() {
			t.Errorf("file %d: unexpected errors: %v", i, r.Diags.Records())
		}
	}
}

func TestCompileAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	files := []File{{Name: "a.wv", Src: []byte("const a = 1;\n")}}
	if _, err := CompileAll(ctx, files, Options{}); err == nil {
		t.Errorf("expected CompileAll to report the canceled context")
	}
}
