package diagexport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/weavelang/weave/syntax"
	"gopkg.in/yaml.v3"
)

func TestWriteYAMLRoundTrips(t *testing.T) {
	sink := syntax.NewDiagnosticSink()
	sink.AddError(syntax.NewSourceSpan(3, 7), "unexpected token")
	sink.AddWarning(syntax.EmptySpanAt(10), "unreachable statement")

	var buf bytes.Buffer
	if err := WriteYAML(&buf, "f.wv", sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("failed to unmarshal written YAML: %v", err)
	}
	if doc.File != "f.wv" {
		t.Errorf("File = %q, want %q", doc.File, "f.wv")
	}
	if len(doc.Diagnostics) != 2 {
		t.Fatalf("expected two diagnostics, got %d", len(doc.Diagnostics))
	}
	if doc.Diagnostics[0].Severity != "error" || doc.Diagnostics[0].Start != 3 || doc.Diagnostics[0].End != 7 {
		t.Errorf("unexpected first record: %+v", doc.Diagnostics[0])
	}
	if doc.Diagnostics[1].Severity != "warning" || doc.Diagnostics[1].Message != "unreachable statement" {
		t.Errorf("unexpected second record: %+v", doc.Diagnostics[1])
	}
}

func TestWriteYAMLEmptySink(t *testing.T) {
	sink := syntax.NewDiagnosticSink()
	var buf bytes.Buffer
	if err := WriteYAML(&buf, "f.wv", sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "file: f.wv") {
		t.Errorf("expected output to contain the filename, got %q", buf.String())
	}
}
