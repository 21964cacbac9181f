// Package diagexport serializes a DiagnosticSink's records to YAML for
// editor and CI tooling. This is a serialization of the records
// already produced by the core, not a rendering of them: no color, no
// source snippets, no line-context — the core's "diagnostic rendering
// is out of scope" boundary stays intact.
package diagexport

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/weavelang/weave/syntax"
)

// Record is the YAML-friendly shape of one syntax.Diagnostic.
type Record struct {
	Severity string `yaml:"severity"`
	Start    uint32 `yaml:"start"`
	End      uint32 `yaml:"end"`
	Message  string `yaml:"message"`
}

// Document is the top-level YAML document written by WriteYAML.
type Document struct {
	File        string   `yaml:"file"`
	Diagnostics []Record `yaml:"diagnostics"`
}

// WriteYAML serializes every diagnostic recorded in sink, in insertion
// order, to w as a YAML document tagged with filename.
func WriteYAML(w io.Writer, filename string, sink *syntax.DiagnosticSink) error {
	records := sink.Records()
	doc := Document{File: filename, Diagnostics: make([]Record, len(records))}
	for i, d := range records {
		doc.Diagnostics[i] = Record{
			Severity: d.Severity.String(),
			Start:    uint32(d.Span.Start),
			End:      uint32(d.Span.End),
			Message:  d.Message,
		}
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}
