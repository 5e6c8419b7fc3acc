package token

import (
	"drivec/internal/source"
)

// Token is a (kind, lexeme) pair with its location. Text is a view
// into the source buffer owned by the enclosing FileSet.
type Token struct {
	Kind Kind
	Text string
	Span source.Span
}

// Matches reports whether tok satisfies the template t: kinds must be
// equal, and when the template carries a non-empty lexeme the lexemes
// must be equal too. An empty template lexeme acts as a wildcard.
func (t Token) Matches(tok Token) bool {
	if t.Kind != tok.Kind {
		return false
	}
	return t.Text == "" || t.Text == tok.Text
}

// IsLiteral reports whether the token can appear as a template argument.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumericLiteral, StringLiteral, CharacterLiteral:
		return true
	default:
		return false
	}
}

// Match templates used by the parser. An empty Text matches any lexeme
// of the kind.
var (
	KeywordDriver    = Token{Kind: Keyword, Text: "driver"}
	KeywordFn        = Token{Kind: Keyword, Text: "fn"}
	KeywordNamespace = Token{Kind: Keyword, Text: "namespace"}

	AnyIdentifier   = Token{Kind: Identifier}
	AnyBuiltinType  = Token{Kind: BuiltinType}
	AnyRawCodeBlock = Token{Kind: RawCodeBlock}

	AnyNumericLiteral   = Token{Kind: NumericLiteral}
	AnyStringLiteral    = Token{Kind: StringLiteral}
	AnyCharacterLiteral = Token{Kind: CharacterLiteral}

	SeparatorOpenBrace        = Token{Kind: Separator, Text: "{"}
	SeparatorCloseBrace       = Token{Kind: Separator, Text: "}"}
	SeparatorOpenParenthesis  = Token{Kind: Separator, Text: "("}
	SeparatorCloseParenthesis = Token{Kind: Separator, Text: ")"}
	SeparatorSemicolon        = Token{Kind: Separator, Text: ";"}
	SeparatorComma            = Token{Kind: Separator, Text: ","}

	OperatorColon      = Token{Kind: Operator, Text: ":"}
	OperatorOpenAngle  = Token{Kind: Operator, Text: "<"}
	OperatorCloseAngle = Token{Kind: Operator, Text: ">"}
	OperatorArrow      = Token{Kind: Operator, Text: "->"}
)
