package syntax

import "testing"

func TestKindNameAndSpelling(t *testing.T) {
	if got, want := OpenParenToken.Name(), "OpenParenToken"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if got, want := OpenParenToken.Spelling(), "("; got != want {
		t.Errorf("Spelling() = %q, want %q", got, want)
	}
	if got := IdentifierToken.Spelling(); got != "" {
		t.Errorf("IdentifierToken.Spelling() = %q, want empty", got)
	}
}

func TestKindClassification(t *testing.T) {
	if !IsTrivia(WhitespaceTrivia) {
		t.Errorf("expected WhitespaceTrivia to be trivia")
	}
	if IsTrivia(IdentifierToken) {
		t.Errorf("did not expect IdentifierToken to be trivia")
	}
	if !IsKeyword(IfKeyword) {
		t.Errorf("expected IfKeyword to be a keyword")
	}
	if IsKeyword(WhereContextualKeyword) {
		t.Errorf("WhereContextualKeyword must not classify as a reserved keyword")
	}
	if !IsContextualKeyword(WhereContextualKeyword) {
		t.Errorf("expected WhereContextualKeyword to be a contextual keyword")
	}
	if !IsNode(SourceFileSyntax) {
		t.Errorf("expected SourceFileSyntax to be a node")
	}
	if !IsExpression(AddExpressionSyntax) {
		t.Errorf("expected AddExpressionSyntax to be an expression")
	}
	if !IsStatement(BlockStatementSyntax) {
		t.Errorf("expected BlockStatementSyntax to be a statement")
	}
	if !IsDeclaration(FunctionDeclarationSyntax) {
		t.Errorf("expected FunctionDeclarationSyntax to be a declaration")
	}
}

func TestKindCountCoversEveryConstant(t *testing.T) {
	if KindCount() <= int(LiteralPatternSyntax) {
		t.Errorf("KindCount() = %d, too small to cover LiteralPatternSyntax (%d)", KindCount(), LiteralPatternSyntax)
	}
}

func TestKeywordLookup(t *testing.T) {
	kind, ok := TryMapIdentifierToKeyword("function")
	if !ok || kind != FunctionKeyword {
		t.Errorf("TryMapIdentifierToKeyword(\"function\") = (%v, %v), want (FunctionKeyword, true)", kind, ok)
	}
	if _, ok := TryMapIdentifierToKeyword("notAKeyword"); ok {
		t.Errorf("did not expect \"notAKeyword\" to be a keyword")
	}
	if _, ok := TryMapIdentifierToKeyword("where"); ok {
		t.Errorf("contextual keyword spellings must not be reserved keywords")
	}
}

func TestContextualKeywordLookup(t *testing.T) {
	kind, ok := TryMapIdentifierToContextualKeyword("where")
	if !ok || kind != WhereContextualKeyword {
		t.Errorf("TryMapIdentifierToContextualKeyword(\"where\") = (%v, %v), want (WhereContextualKeyword, true)", kind, ok)
	}
}
