package syntax

// keywordsBySpelling maps every reserved-word spelling to its keyword
// SyntaxKind, mirroring the original tokenizer's identifier-to-keyword
// lookup table (weave_syntax SyntaxKind.cxx TryMapIdentifierToKeyword).
// Contextual keywords are intentionally absent: they lex as plain
// IdentifierToken and are reclassified by the parser only in the
// productions that expect them (spec §9).
var keywordsBySpelling = map[string]SyntaxKind{
	"using":     UsingKeyword,
	"function":  FunctionKeyword,
	"delegate":  DelegateKeyword,
	"struct":    StructKeyword,
	"concept":   ConceptKeyword,
	"extend":    ExtendKeyword,
	"namespace": NamespaceKeyword,
	"type":      TypeKeyword,
	"enum":      EnumKeyword,
	"var":       VarKeyword,
	"let":       LetKeyword,
	"const":     ConstKeyword,

	"return":   ReturnKeyword,
	"while":    WhileKeyword,
	"break":    BreakKeyword,
	"continue": ContinueKeyword,
	"goto":     GotoKeyword,
	"yield":    YieldKeyword,
	"loop":     LoopKeyword,
	"for":      ForKeyword,
	"foreach":  ForeachKeyword,
	"checked":   CheckedKeyword,
	"unchecked": UncheckedKeyword,
	"unsafe":    UnsafeKeyword,
	"lazy":      LazyKeyword,
	"do":        DoKeyword,
	"switch":    SwitchKeyword,
	"case":      CaseKeyword,
	"try":       TryKeyword,
	"catch":     CatchKeyword,
	"finally":   FinallyKeyword,
	"throw":     ThrowKeyword,

	"true":        TrueKeyword,
	"false":       FalseKeyword,
	"if":          IfKeyword,
	"else":        ElseKeyword,
	"match":       MatchKeyword,
	"assert":      AssertKeyword,
	"self":        SelfKeyword,
	"unreachable": UnreachableKeyword,
	"eval":        EvalKeyword,

	"is":        IsKeyword,
	"as":        AsKeyword,
	"sizeof":    SizeOfKeyword,
	"typeof":    TypeOfKeyword,
	"alignof":   AlignOfKeyword,
	"nameof":    NameOfKeyword,
	"addressof": AddressOfKeyword,

	"params": ParamsKeyword,
	"ref":    RefKeyword,
	"out":    OutKeyword,
	"in":     InKeyword,
	"move":   MoveKeyword,

	"public":       PublicKeyword,
	"private":      PrivateKeyword,
	"internal":     InternalKeyword,
	"async":        AsyncKeyword,
	"discardable":  DiscardableKeyword,
	"dynamic":      DynamicKeyword,
	"explicit":     ExplicitKeyword,
	"export":       ExportKeyword,
	"extern":       ExternKeyword,
	"final":        FinalKeyword,
	"fixed":        FixedKeyword,
	"implicit":     ImplicitKeyword,
	"inline":       InlineKeyword,
	"native":       NativeKeyword,
	"override":     OverrideKeyword,
	"partial":      PartialKeyword,
	"precise":      PreciseKeyword,
	"pure":         PureKeyword,
	"readonly":     ReadonlyKeyword,
	"recursive":    RecursiveKeyword,
	"synchronized": SynchronizedKeyword,
	"tailcall":     TailCallKeyword,
	"threadlocal":  ThreadLocalKeyword,
	"transient":    TransientKeyword,
	"trusted":      TrustedKeyword,
	"unaligned":    UnalignedKeyword,
	"uniform":      UniformKeyword,

	"mutable":  MutableKeyword,
	"restrict": RestrictKeyword,
	"atomic":   AtomicKeyword,

	"_": UnderscoreKeyword,

	"and":      AndKeyword,
	"or":       OrKeyword,
	"not":      NotKeyword,
	"bitand":   BitAndKeyword,
	"bitor":    BitOrKeyword,
	"bitxor":   BitXorKeyword,
	"bitcompl": BitComplKeyword,
}

// contextualKeywordsBySpelling maps the identifier spellings that are
// reclassified to a contextual-keyword SyntaxKind only when a parser
// production expects one (spec §9). TryMapIdentifierToKeyword never
// consults this table; TryMapIdentifierToContextualKeyword does. The
// parser itself reclassifies through MatchContextualKeyword /
// TryMatchContextualKeyword (parser.go), which compare against the
// expected kind's spelling.
var contextualKeywordsBySpelling = map[string]SyntaxKind{
	"where":     WhereContextualKeyword,
	"requires":  RequiresContextualKeyword,
	"ensures":   EnsuresContextualKeyword,
	"invariant": InvariantContextualKeyword,
	"get":       GetContextualKeyword,
	"set":       SetContextualKeyword,
}

// TryMapIdentifierToKeyword reports whether spelling names a reserved
// keyword and, if so, its SyntaxKind. It is applied to every
// identifier-shaped lexeme as it is produced, before the token is
// emitted (spec §4.4): keywords never reach the parser tagged as
// IdentifierToken.
func TryMapIdentifierToKeyword(spelling string) (SyntaxKind, bool) {
	kind, ok := keywordsBySpelling[spelling]
	return kind, ok
}

// TryMapIdentifierToContextualKeyword reports whether spelling matches
// one of the identifier-shaped contextual keywords, and if so its
// SyntaxKind. Unlike TryMapIdentifierToKeyword this is never applied
// by the lexer; callers are parser productions that already expect one
// of these spellings in a specific grammar position.
func TryMapIdentifierToContextualKeyword(spelling string) (SyntaxKind, bool) {
	kind, ok := contextualKeywordsBySpelling[spelling]
	return kind, ok
}

// IsKeyword reports whether kind is one of the reserved keywords
// (not a contextual keyword, which lexes as IdentifierToken).
func IsKeyword(kind SyntaxKind) bool {
	return kind >= UsingKeyword && kind <= BitComplKeyword
}

// IsContextualKeyword reports whether kind is one of the
// identifier-shaped contextual keywords.
func IsContextualKeyword(kind SyntaxKind) bool {
	return kind >= WhereContextualKeyword && kind <= SetContextualKeyword
}
