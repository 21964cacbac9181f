// Package weave is the driver facade over the syntax package: it owns
// the arena/sink/source-text wiring a caller would otherwise have to
// assemble by hand for every file.
package weave

import (
	"github.com/weavelang/weave/syntax"
)

// Options configures a single parse. The zero value matches the
// parser's own defaults: full trivia retention (syntax.TriviaModeAll)
// and the parser's built-in nesting-depth limit.
type Options struct {
	// TriviaMode controls how much trivia the lexer attaches to
	// tokens.
	TriviaMode syntax.TriviaMode

	// MaxNestingDepth overrides the parser's default recursion-depth
	// guard. Zero means "use the parser's built-in default."
	MaxNestingDepth int
}

// Compilation bundles the result of parsing one file: the root node,
// the diagnostics recorded along the way, the arena that owns both,
// and the SourceText the root's spans are relative to.
type Compilation struct {
	Filename string
	Source   *syntax.SourceText
	Arena    *syntax.Arena
	Diags    *syntax.DiagnosticSink
	Root     *syntax.SyntaxNode
}

// HasErrors reports whether parsing produced any error-severity
// diagnostic.
func (c *Compilation) HasErrors() bool {
	return c.Diags.HasErrors()
}

// ParseFile lexes and parses one file's source text, returning a
// Compilation that owns its own Arena. The parser never aborts on
// malformed input: Root is always non-nil. Under the default
// syntax.TriviaModeAll its FullText equals src exactly, even in the
// presence of recorded diagnostics; the other trivia modes drop
// trivia, so FullText then differs from src.
func ParseFile(filename string, src []byte, opts Options) *Compilation {
	text := syntax.NewSourceText(filename, src)
	diags := syntax.NewDiagnosticSink()
	arena := syntax.NewArena()

	lx := syntax.NewLexerWithMode(arena, text, diags, opts.TriviaMode)
	tokens := lx.Tokenize()

	p := syntax.NewParser(arena, tokens, diags)
	p.SetMaxNestingDepth(opts.MaxNestingDepth)
	root := p.ParseSourceFile()

	return &Compilation{
		Filename: filename,
		Source:   text,
		Arena:    arena,
		Diags:    diags,
		Root:     root,
	}
}
