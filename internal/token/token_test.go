package token_test

import (
	"testing"

	"drivec/internal/token"
)

func TestMatchesExactLexeme(t *testing.T) {
	actual := token.Token{Kind: token.Keyword, Text: "driver"}

	if !token.KeywordDriver.Matches(actual) {
		t.Error("keyword template should match the driver keyword")
	}
	if token.KeywordFn.Matches(actual) {
		t.Error("fn template must not match the driver keyword")
	}
}

func TestMatchesWildcard(t *testing.T) {
	// An empty template lexeme matches any lexeme of the kind.
	if !token.AnyIdentifier.Matches(token.Token{Kind: token.Identifier, Text: "foo"}) {
		t.Error("wildcard identifier template should match any identifier")
	}
	if token.AnyIdentifier.Matches(token.Token{Kind: token.Keyword, Text: "foo"}) {
		t.Error("wildcard must still honor the kind")
	}
}

func TestIsLiteral(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want bool
	}{
		{token.NumericLiteral, true},
		{token.StringLiteral, true},
		{token.CharacterLiteral, true},
		{token.Identifier, false},
		{token.RawCodeBlock, false},
		{token.EndOfInput, false},
	}
	for _, tc := range cases {
		tok := token.Token{Kind: tc.kind}
		if got := tok.IsLiteral(); got != tc.want {
			t.Errorf("%v: IsLiteral() = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if token.RawCodeBlock.String() != "RawCodeBlock" {
		t.Errorf("unexpected name: %s", token.RawCodeBlock.String())
	}
	if token.EndOfInput.String() != "EndOfInput" {
		t.Errorf("unexpected name: %s", token.EndOfInput.String())
	}
}
