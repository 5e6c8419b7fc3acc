package lexer_test

import (
	"testing"

	"drivec/internal/diag"
	"drivec/internal/lexer"
	"drivec/internal/source"
	"drivec/internal/token"
)

// makeTestLexer creates a lexer over an in-memory source string.
func makeTestLexer(input string, placeholders map[string]string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.drv", []byte(input))

	bag := diag.NewBag(16)
	lx := lexer.New(fs, fs.Get(fileID), lexer.Options{
		Placeholders: placeholders,
		Reporter:     diag.BagReporter{Bag: bag},
	})
	return lx, bag
}

// collect drains the lexer, dropping the trailing EndOfInput.
func collect(t *testing.T, input string, placeholders map[string]string) ([]token.Token, *diag.Bag) {
	t.Helper()
	lx, bag := makeTestLexer(input, placeholders)
	tokens := lx.Collect()
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EndOfInput {
		t.Fatalf("token stream did not end with EndOfInput: %v", tokens)
	}
	return tokens[:len(tokens)-1], bag
}

// expectTokens checks the kind sequence of the lexed input.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens, bag := collect(t, input, nil)

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\ndiags: %v",
			len(expected), len(tokens), input, tokens, bag.Items())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken checks that input lexes to exactly one token.
func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	tokens, bag := collect(t, input, nil)
	if len(tokens) != 1 {
		t.Fatalf("expected a single token for %q, got %v (diags: %v)", input, tokens, bag.Items())
	}
	if tokens[0].Kind != kind {
		t.Errorf("kind: expected %v, got %v", kind, tokens[0].Kind)
	}
	if tokens[0].Text != text {
		t.Errorf("text: expected %q, got %q", text, tokens[0].Text)
	}
}

// expectError checks that lexing fails with the given code.
func expectError(t *testing.T, input string, placeholders map[string]string, code diag.Code) {
	t.Helper()
	_, bag := collect(t, input, placeholders)
	first, ok := bag.First()
	if !ok {
		t.Fatalf("expected an error for %q, got none", input)
	}
	if first.Code != code {
		t.Errorf("expected code %v, got %v", code, first.Code)
	}
}

func TestKeywords(t *testing.T) {
	for _, kw := range []string{"driver", "fn", "namespace", "struct"} {
		expectSingleToken(t, kw, token.Keyword, kw)
	}
}

func TestKeywordBoundary(t *testing.T) {
	// A keyword followed by an alphanumeric character is an identifier.
	expectSingleToken(t, "driverX", token.Identifier, "driverX")
	expectSingleToken(t, "fn2", token.Identifier, "fn2")
	expectSingleToken(t, "structs", token.Identifier, "structs")
}

func TestBuiltinTypes(t *testing.T) {
	for _, bt := range []string{
		"u8", "u16", "u32", "u64",
		"i8", "i16", "i32", "i64",
		"f32", "f64",
		"bool", "char", "string", "bytes", "void",
	} {
		expectSingleToken(t, bt, token.BuiltinType, bt)
	}
	expectSingleToken(t, "u8x", token.Identifier, "u8x")
	expectSingleToken(t, "boolean", token.Identifier, "boolean")
}

func TestStringLikeTokens(t *testing.T) {
	expectSingleToken(t, `"hello world"`, token.StringLiteral, "hello world")
	expectSingleToken(t, "'c'", token.CharacterLiteral, "c")
	expectSingleToken(t, "[[ hal_write(x); ]]", token.RawCodeBlock, " hal_write(x); ")
}

func TestUnterminatedStringLike(t *testing.T) {
	expectError(t, `"no end`, nil, diag.LexUnterminatedString)
	expectError(t, "[[ no end", nil, diag.LexUnterminatedString)
}

func TestNumericLiterals(t *testing.T) {
	expectSingleToken(t, "42", token.NumericLiteral, "42")
	expectSingleToken(t, "0x42", token.NumericLiteral, "0x42")
	expectSingleToken(t, "0b1011", token.NumericLiteral, "0b1011")
	expectSingleToken(t, "0o755", token.NumericLiteral, "0o755")
}

func TestNumericLiteralStopsAtNonDigit(t *testing.T) {
	tokens, _ := collect(t, "0x42;", nil)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %v", tokens)
	}
	if tokens[0].Text != "0x42" || tokens[1].Text != ";" {
		t.Errorf("unexpected lexemes: %q %q", tokens[0].Text, tokens[1].Text)
	}
}

func TestSeparatorsAndOperators(t *testing.T) {
	expectTokens(t, "{ } ( ) [ ] ; ,", []token.Kind{
		token.Separator, token.Separator, token.Separator, token.Separator,
		token.Separator, token.Separator, token.Separator, token.Separator,
	})
	expectTokens(t, "< > : ->", []token.Kind{
		token.Operator, token.Operator, token.Operator, token.Operator,
	})
	expectSingleToken(t, "->", token.Operator, "->")
}

func TestComments(t *testing.T) {
	expectSingleToken(t, "// line comment", token.Comment, "// line comment")
	expectSingleToken(t, "/* block */", token.Comment, "/* block */")

	expectTokens(t, "driver // trailing\nx", []token.Kind{
		token.Keyword, token.Comment, token.Identifier,
	})
}

func TestUnterminatedComment(t *testing.T) {
	expectError(t, "/* never closed", nil, diag.LexUnterminatedComment)
}

func TestUnknownToken(t *testing.T) {
	expectError(t, "driver @", nil, diag.LexUnknownToken)
}

func TestDriverDefinition(t *testing.T) {
	expectTokens(t, "driver I2C<u8 Address> { }", []token.Kind{
		token.Keyword, token.Identifier,
		token.Operator, token.BuiltinType, token.Identifier, token.Operator,
		token.Separator, token.Separator,
	})
}

func TestPlaceholderExpansion(t *testing.T) {
	tokens, bag := collect(t, "driver {% Name %} { }", map[string]string{
		"Name": "UART",
	})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %v", tokens)
	}
	if tokens[1].Kind != token.Identifier || tokens[1].Text != "UART" {
		t.Errorf("expected identifier UART, got %v %q", tokens[1].Kind, tokens[1].Text)
	}
}

func TestPlaceholderChain(t *testing.T) {
	tokens, bag := collect(t, "driver {% A %} { }", map[string]string{
		"A": "{% B %}",
		"B": "Final",
	})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if tokens[1].Kind != token.Identifier || tokens[1].Text != "Final" {
		t.Errorf("expected identifier Final, got %v %q", tokens[1].Kind, tokens[1].Text)
	}
}

func TestPlaceholderExpandsToMultipleTokens(t *testing.T) {
	tokens, bag := collect(t, "fn f({% Params %}) { }", map[string]string{
		"Params": "u32 x, u8 y",
	})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	kinds := []token.Kind{
		token.Keyword, token.Identifier, token.Separator,
		token.BuiltinType, token.Identifier, token.Separator,
		token.BuiltinType, token.Identifier,
		token.Separator, token.Separator, token.Separator,
	}
	if len(tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, got %v", len(kinds), tokens)
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d: expected %v, got %v (%q)", i, k, tokens[i].Kind, tokens[i].Text)
		}
	}
}

func TestUnknownPlaceholder(t *testing.T) {
	expectError(t, "driver {% Missing %} { }", nil, diag.LexUnknownPlaceholder)
}

func TestPlaceholderCycle(t *testing.T) {
	expectError(t, "driver {% A %} { }", map[string]string{
		"A": "{% A %}",
	}, diag.LexPlaceholderCycle)

	// Indirect cycle through a second placeholder.
	expectError(t, "driver {% A %} { }", map[string]string{
		"A": "{% B %}",
		"B": "{% A %}",
	}, diag.LexPlaceholderCycle)
}

func TestPlaceholderReuseAfterCompletion(t *testing.T) {
	// The same placeholder twice in sequence is not a cycle.
	tokens, bag := collect(t, "{% A %} {% A %}", map[string]string{"A": "x"})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(tokens) != 2 || tokens[0].Text != "x" || tokens[1].Text != "x" {
		t.Fatalf("expected two x identifiers, got %v", tokens)
	}
}

func TestStreamTerminatesAfterError(t *testing.T) {
	lx, _ := makeTestLexer(`"unterminated`, nil)
	if tok := lx.Next(); tok.Kind != token.EndOfInput {
		t.Fatalf("expected EndOfInput after error, got %v", tok)
	}
	if !lx.Failed() {
		t.Error("lexer should report failure")
	}
	// Subsequent calls stay at EndOfInput.
	if tok := lx.Next(); tok.Kind != token.EndOfInput {
		t.Errorf("expected sticky EndOfInput, got %v", tok)
	}
}

func TestWhitespaceOnlySource(t *testing.T) {
	tokens, _ := collect(t, " \t\n  ", nil)
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
}
