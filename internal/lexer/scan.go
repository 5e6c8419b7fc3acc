package lexer

import (
	"drivec/internal/diag"
	"drivec/internal/token"
)

// stringLikes are the delimited tokens of rule group 6, tried in
// order. The placeholder marker must be tested before the "{"
// separator, which the overall rule priority already guarantees.
var stringLikes = []struct {
	begin, end string
	kind       token.Kind
}{
	{`"`, `"`, token.StringLiteral},
	{"'", "'", token.CharacterLiteral},
	{"[[", "]]", token.RawCodeBlock},
	{"{%", "%}", token.Placeholder},
}

// scanToken scans exactly one token at the cursor. Rule priority is
// fixed; the first match wins. Returns ok=false after reporting an
// error.
func (lx *Lexer) scanToken(cur *Cursor) (token.Token, bool) {
	if cur.HasPrefix("//") || cur.HasPrefix("/*") {
		return lx.scanComment(cur)
	}

	if tok, ok := scanWord(cur, token.Keywords, token.Keyword); ok {
		return tok, true
	}
	if tok, ok := scanWord(cur, token.BuiltinTypes, token.BuiltinType); ok {
		return tok, true
	}

	for _, sl := range stringLikes {
		if cur.HasPrefix(sl.begin) {
			return lx.scanStringLike(cur, sl.begin, sl.end, sl.kind)
		}
	}

	if tok, ok := scanNumber(cur); ok {
		return tok, true
	}

	for _, sep := range token.Separators {
		if cur.HasPrefix(sep) {
			return fixedToken(cur, token.Separator, sep), true
		}
	}
	for _, op := range token.Operators {
		if cur.HasPrefix(op) {
			return fixedToken(cur, token.Operator, op), true
		}
	}

	if isAlpha(cur.Peek()) {
		return scanIdentifier(cur), true
	}

	mark := cur.Mark()
	cur.Bump()
	lx.fail(diag.LexUnknownToken, cur.SpanFrom(mark),
		"no token rule matches the input")
	return token.Token{}, false
}

// scanWord matches one of words at a word boundary: the character
// right after the match must not be alphanumeric, otherwise the whole
// run belongs to an identifier.
func scanWord(cur *Cursor, words []string, kind token.Kind) (token.Token, bool) {
	for _, w := range words {
		if !cur.HasPrefix(w) {
			continue
		}
		if next := cur.PeekAt(uint32(len(w))); next != 0 && isAlnum(next) {
			continue
		}
		return fixedToken(cur, kind, w), true
	}
	return token.Token{}, false
}

func fixedToken(cur *Cursor, kind token.Kind, text string) token.Token {
	mark := cur.Mark()
	cur.Advance(uint32(len(text)))
	return token.Token{
		Kind: kind,
		Text: cur.File.Slice(uint32(mark), cur.Off),
		Span: cur.SpanFrom(mark),
	}
}

// scanStringLike consumes a begin/end delimited token. The lexeme is
// the content between the markers; the span covers the markers too.
func (lx *Lexer) scanStringLike(cur *Cursor, begin, end string, kind token.Kind) (token.Token, bool) {
	mark := cur.Mark()
	cur.Advance(uint32(len(begin)))

	for !cur.EOF() && !cur.HasPrefix(end) {
		cur.Bump()
	}

	if cur.EOF() {
		lx.fail(diag.LexUnterminatedString, cur.SpanFrom(mark),
			"literal runs to the end of the source")
		return token.Token{}, false
	}

	contentEnd := cur.Off
	cur.Advance(uint32(len(end)))

	return token.Token{
		Kind: kind,
		Text: cur.File.Slice(uint32(mark)+uint32(len(begin)), contentEnd),
		Span: cur.SpanFrom(mark),
	}, true
}

func (lx *Lexer) scanComment(cur *Cursor) (token.Token, bool) {
	mark := cur.Mark()

	if cur.HasPrefix("//") {
		for !cur.EOF() && cur.Peek() != '\n' {
			cur.Bump()
		}
		return token.Token{
			Kind: token.Comment,
			Text: cur.File.Slice(uint32(mark), cur.Off),
			Span: cur.SpanFrom(mark),
		}, true
	}

	cur.Advance(2) // "/*"
	for !cur.EOF() && !cur.HasPrefix("*/") {
		cur.Bump()
	}

	if cur.EOF() {
		lx.fail(diag.LexUnterminatedComment, cur.SpanFrom(mark),
			"block comment runs to the end of the source")
		return token.Token{}, false
	}

	cur.Advance(2) // "*/"
	return token.Token{
		Kind: token.Comment,
		Text: cur.File.Slice(uint32(mark), cur.Off),
		Span: cur.SpanFrom(mark),
	}, true
}

// scanNumber consumes a numeric literal. The lexeme keeps the base
// prefix.
func scanNumber(cur *Cursor) (token.Token, bool) {
	var digits func(byte) bool

	switch {
	case cur.HasPrefix("0x"):
		digits = isHex
	case cur.HasPrefix("0b"):
		digits = isBinary
	case cur.HasPrefix("0o"):
		digits = isOctal
	case isDec(cur.Peek()):
		mark := cur.Mark()
		for !cur.EOF() && isDec(cur.Peek()) {
			cur.Bump()
		}
		return token.Token{
			Kind: token.NumericLiteral,
			Text: cur.File.Slice(uint32(mark), cur.Off),
			Span: cur.SpanFrom(mark),
		}, true
	default:
		return token.Token{}, false
	}

	mark := cur.Mark()
	cur.Advance(2)
	for !cur.EOF() && digits(cur.Peek()) {
		cur.Bump()
	}
	return token.Token{
		Kind: token.NumericLiteral,
		Text: cur.File.Slice(uint32(mark), cur.Off),
		Span: cur.SpanFrom(mark),
	}, true
}

func scanIdentifier(cur *Cursor) token.Token {
	mark := cur.Mark()
	cur.Bump()
	for !cur.EOF() && isAlnum(cur.Peek()) {
		cur.Bump()
	}
	return token.Token{
		Kind: token.Identifier,
		Text: cur.File.Slice(uint32(mark), cur.Off),
		Span: cur.SpanFrom(mark),
	}
}
