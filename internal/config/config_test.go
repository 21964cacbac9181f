package config

import "testing"

func TestParseMinimalManifest(t *testing.T) {
	data := []byte(`
[project]
name = "demo"
entrypoint = "main.wv"
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Project.Name != "demo" || m.Project.Entrypoint != "main.wv" {
		t.Errorf("unexpected project info: %+v", m.Project)
	}
	if m.Parser.Trivia != "" {
		t.Errorf("expected default (empty) trivia mode, got %q", m.Parser.Trivia)
	}
}

func TestParseParserOverrides(t *testing.T) {
	data := []byte(`
[project]
name = "demo"
entrypoint = "main.wv"

[parser]
trivia = "documentation-only"
max-nesting-depth = 64
max-source-bytes = 1048576
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Parser.Trivia != TriviaModeDocumentationOnly {
		t.Errorf("trivia = %q, want %q", m.Parser.Trivia, TriviaModeDocumentationOnly)
	}
	if m.Parser.MaxNestingDepth != 64 {
		t.Errorf("max-nesting-depth = %d, want 64", m.Parser.MaxNestingDepth)
	}
	if m.Parser.MaxSourceBytes != 1048576 {
		t.Errorf("max-source-bytes = %d, want 1048576", m.Parser.MaxSourceBytes)
	}
}

func TestParseRejectsMissingRequiredFields(t *testing.T) {
	if _, err := Parse([]byte(`[project]
name = "demo"
`)); err == nil {
		t.Errorf("expected an error for a manifest missing project.entrypoint")
	}
}

func TestParseRecordsUnknownTopLevelKeys(t *testing.T) {
	data := []byte(`
[project]
name = "demo"
entrypoint = "main.wv"

[unexpected]
field = 1
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.UnknownFields) == 0 {
		t.Errorf("expected the [unexpected] table to be recorded as an unknown field")
	}
}
