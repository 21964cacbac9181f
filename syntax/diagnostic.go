package syntax

// Severity classifies a Diagnostic (spec §3.7).
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

// String renders the severity's lowercase name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Diagnostic is a single append-only record: severity, source span,
// and message (spec §3.7).
type Diagnostic struct {
	Severity Severity
	Span     SourceSpan
	Message  string
}

// DiagnosticSink is an append-only collector of diagnostic records.
// Diagnostics are emitted in parse order, which may not be source
// order after error recovery (spec §4.2).
type DiagnosticSink struct {
	records []Diagnostic
}

// NewDiagnosticSink returns an empty sink.
func NewDiagnosticSink() *DiagnosticSink {
	return &DiagnosticSink{}
}

// AddError appends an error-severity diagnostic.
func (s *DiagnosticSink) AddError(span SourceSpan, message string) {
	s.add(SeverityError, span, message)
}

// AddWarning appends a warning-severity diagnostic.
func (s *DiagnosticSink) AddWarning(span SourceSpan, message string) {
	s.add(SeverityWarning, span, message)
}

// AddNote appends a note-severity diagnostic.
func (s *DiagnosticSink) AddNote(span SourceSpan, message string) {
	s.add(SeverityNote, span, message)
}

func (s *DiagnosticSink) add(severity Severity, span SourceSpan, message string) {
	s.records = append(s.records, Diagnostic{Severity: severity, Span: span, Message: message})
}

// Records returns the diagnostics in insertion (parse) order. The
// returned slice is owned by the sink and must not be mutated.
func (s *DiagnosticSink) Records() []Diagnostic {
	return s.records
}

// Len returns the number of recorded diagnostics.
func (s *DiagnosticSink) Len() int {
	return len(s.records)
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *DiagnosticSink) HasErrors() bool {
	for _, d := range s.records {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
