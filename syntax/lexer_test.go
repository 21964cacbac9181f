package syntax

import "testing"

func lexAll(t *testing.T, src string) ([]*Token, *DiagnosticSink) {
	t.Helper()
	arena := NewArena()
	diags := NewDiagnosticSink()
	text := NewSourceText("test.wv", []byte(src))
	lx := NewLexer(arena, text, diags)
	return lx.Tokenize(), diags
}

func tokenKinds(tokens []*Token) []SyntaxKind {
	kinds := make([]SyntaxKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	tokens, diags := lexAll(t, "function main")
	if diags.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	want := []SyntaxKind{FunctionKeyword, IdentifierToken, EndOfFileToken}
	got := tokenKinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerNumberLiterals(t *testing.T) {
	tokens, _ := lexAll(t, "1 1.5 0x1F 0b101 1_000")
	want := []struct {
		kind SyntaxKind
	}{
		{IntegerLiteralToken}, {FloatLiteralToken}, {IntegerLiteralToken}, {IntegerLiteralToken}, {IntegerLiteralToken}, {EndOfFileToken},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind {
			t.Errorf("token %d kind = %v, want %v", i, tokens[i].Kind, w.kind)
		}
	}
	if tokens[2].IntegerValue != 0x1F {
		t.Errorf("0x1F decoded as %d, want 31", tokens[2].IntegerValue)
	}
	if tokens[4].IntegerValue != 1000 {
		t.Errorf("1_000 decoded as %d, want 1000", tokens[4].IntegerValue)
	}
}

func TestLexerStringAndCharLiterals(t *testing.T) {
	tokens, diags := lexAll(t, `"hi\n" 'a' '\x41'`)
	if diags.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if tokens[0].Kind != StringLiteralToken || tokens[0].StringValue != "hi\n" {
		t.Errorf("string literal decoded as %q", tokens[0].StringValue)
	}
	if tokens[1].Kind != CharacterLiteralToken || tokens[1].CharValue != 'a' {
		t.Errorf("char literal decoded as %q", tokens[1].CharValue)
	}
	if tokens[2].CharValue != 'A' {
		t.Errorf("\\x41 decoded as %q, want 'A'", tokens[2].CharValue)
	}
}

func TestLexerNumberLiteralSuffixIsNotASeparateIdentifier(t *testing.T) {
	tokens, diags := lexAll(t, "123u64 1.5f32 0xffu8")
	if diags.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	want := []SyntaxKind{IntegerLiteralToken, FloatLiteralToken, IntegerLiteralToken, EndOfFileToken}
	got := tokenKinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d: %v (suffix leaked into a separate identifier token)", len(got), got, len(want), want)
	}
	if tokens[0].Digits != "123" || tokens[0].Suffix != "u64" {
		t.Errorf("123u64 = {Digits: %q, Suffix: %q}, want {123, u64}", tokens[0].Digits, tokens[0].Suffix)
	}
	if tokens[1].Digits != "1.5" || tokens[1].Suffix != "f32" {
		t.Errorf("1.5f32 = {Digits: %q, Suffix: %q}, want {1.5, f32}", tokens[1].Digits, tokens[1].Suffix)
	}
	if tokens[2].NumberPrefix != NumberPrefixHex || tokens[2].Digits != "ff" || tokens[2].Suffix != "u8" {
		t.Errorf("0xffu8 = {Prefix: %v, Digits: %q, Suffix: %q}, want {Hex, ff, u8}", tokens[2].NumberPrefix, tokens[2].Digits, tokens[2].Suffix)
	}
	if tokens[0].NumberPrefix != NumberPrefixDecimal || tokens[1].NumberPrefix != NumberPrefixDecimal {
		t.Errorf("decimal literals should report NumberPrefixDecimal, got %v and %v", tokens[0].NumberPrefix, tokens[1].NumberPrefix)
	}
}

func TestLexerStringAndCharLiteralEncodingPrefix(t *testing.T) {
	tokens, diags := lexAll(t, `u8"hi" u16'a' "plain"`)
	if diags.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	want := []SyntaxKind{StringLiteralToken, CharacterLiteralToken, StringLiteralToken, EndOfFileToken}
	got := tokenKinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d: %v (prefix leaked into a separate identifier token)", len(got), got, len(want), want)
	}
	if tokens[0].StringPrefix != StringPrefixU8 || tokens[0].StringValue != "hi" {
		t.Errorf(`u8"hi" = {Prefix: %v, Value: %q}, want {U8, hi}`, tokens[0].StringPrefix, tokens[0].StringValue)
	}
	if tokens[1].StringPrefix != StringPrefixU16 || tokens[1].CharValue != 'a' {
		t.Errorf(`u16'a' = {Prefix: %v, Value: %q}, want {U16, a}`, tokens[1].StringPrefix, tokens[1].CharValue)
	}
	if tokens[2].StringPrefix != StringPrefixNone {
		t.Errorf(`"plain" should have StringPrefixNone, got %v`, tokens[2].StringPrefix)
	}
}

func TestLexerBareIdentifierResemblingPrefixIsNotMistaken(t *testing.T) {
	tokens, diags := lexAll(t, "u8 + u16x")
	if diags.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	want := []SyntaxKind{IdentifierToken, PlusToken, IdentifierToken, EndOfFileToken}
	got := tokenKinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexerTriviaAttachment(t *testing.T) {
	tokens, _ := lexAll(t, "  a // comment\n  b")
	if len(tokens) != 3 { // a, b, EOF
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
	a, b := tokens[0], tokens[1]
	if len(a.Leading.Items) != 1 || a.Leading.Items[0].Kind != WhitespaceTrivia {
		t.Errorf("expected 'a' to have leading whitespace, got %+v", a.Leading.Items)
	}
	if len(a.Trailing.Items) != 3 {
		t.Fatalf("expected 'a' trailing trivia = [ws, comment, eol], got %d items", len(a.Trailing.Items))
	}
	if a.Trailing.Items[1].Kind != SingleLineCommentTrivia {
		t.Errorf("expected trailing trivia to include the comment")
	}
	if a.Trailing.Items[2].Kind != EndOfLineTrivia {
		t.Errorf("expected trailing trivia to end at the newline")
	}
	if len(b.Leading.Items) != 1 || b.Leading.Items[0].Kind != WhitespaceTrivia {
		t.Errorf("expected 'b' leading trivia to be the indentation after the newline")
	}
}

func TestLexerLosslessRoundTrip(t *testing.T) {
	src := "function main() {\n  // comment\n  return 1 + 2;\n}\n"
	tokens, _ := lexAll(t, src)
	var rebuilt string
	for _, tok := range tokens {
		rebuilt += tok.FullText()
	}
	if rebuilt != src {
		t.Errorf("round trip mismatch:\n got: %q\nwant: %q", rebuilt, src)
	}
}

func TestLexerTriviaModeNoneDropsAllTrivia(t *testing.T) {
	arena := NewArena()
	diags := NewDiagnosticSink()
	text := NewSourceText("test.wv", []byte("  /// doc\n  a // trailing\n"))
	tokens := NewLexerWithMode(arena, text, diags, TriviaModeNone).Tokenize()
	for _, tok := range tokens {
		if len(tok.Leading.Items) != 0 || len(tok.Trailing.Items) != 0 {
			t.Errorf("token %v kept trivia under TriviaModeNone: leading=%v trailing=%v", tok.Kind, tok.Leading.Items, tok.Trailing.Items)
		}
	}
}

func TestLexerTriviaModeDocumentationOnlyKeepsOnlyDocComments(t *testing.T) {
	arena := NewArena()
	diags := NewDiagnosticSink()
	text := NewSourceText("test.wv", []byte("  /// doc\n  a // trailing\n"))
	tokens := NewLexerWithMode(arena, text, diags, TriviaModeDocumentationOnly).Tokenize()
	a := tokens[0]
	if len(a.Leading.Items) != 1 || a.Leading.Items[0].Kind != SingleLineDocumentationTrivia {
		t.Errorf("expected only the doc comment to survive as leading trivia, got %+v", a.Leading.Items)
	}
	if len(a.Trailing.Items) != 0 {
		t.Errorf("expected the ordinary trailing comment to be dropped, got %+v", a.Trailing.Items)
	}
}

func TestLexerUnknownCharacterProducesErrorToken(t *testing.T) {
	tokens, diags := lexAll(t, "a $ b")
	if diags.Len() == 0 {
		t.Fatalf("expected a diagnostic for the unrecognized character")
	}
	found := false
	for _, tok := range tokens {
		if tok.Kind == ErrorToken {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an ErrorToken in the stream")
	}
}
