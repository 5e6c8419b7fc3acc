package parser

import (
	"strings"

	"drivec/internal/ast"
	"drivec/internal/token"
)

// parseFunction parses a function definition. The `fn <name> (` prefix
// has already been consumed; the name is at offset -2.
func (p *Parser) parseFunction() (*ast.Function, bool) {
	name := p.value(-2)

	params, ok := p.parseParameterList(token.SeparatorCloseParenthesis)
	if !ok {
		return nil, false
	}

	if !p.match(token.SeparatorOpenBrace) {
		p.errUnexpected("expected '{' to open the function body")
		return nil, false
	}

	var body []ast.Node
	for !p.match(token.SeparatorCloseBrace) {
		if p.atEnd() {
			p.errEndOfInput("function body is not closed")
			return nil, false
		}

		// The language surface admits only raw code statements.
		if p.match(token.AnyRawCodeBlock) {
			body = append(body, &ast.RawCode{Code: strings.TrimSpace(p.value(-1))})
		} else {
			p.errUnexpected("expected a raw code block or '}' in function body")
			return nil, false
		}
	}

	return &ast.Function{
		Name:   name,
		Params: params,
		Body:   body,
	}, true
}

// parseParameterList parses `type name` pairs separated by commas up
// to the closing token. The opening token has already been consumed.
func (p *Parser) parseParameterList(closing token.Token) ([]*ast.Variable, bool) {
	params := make([]*ast.Variable, 0)

	for !p.match(closing) {
		if p.atEnd() {
			p.errEndOfInput("parameter list is not closed")
			return nil, false
		}

		typ, ok := p.parseType(true)
		if !ok {
			return nil, false
		}

		if !p.match(token.AnyIdentifier) {
			p.errUnexpected("expected a parameter name")
			return nil, false
		}
		params = append(params, &ast.Variable{
			Name: p.value(-1),
			Type: typ,
		})

		if p.match(token.SeparatorComma) {
			continue
		}
		if p.match(closing) {
			break
		}
		p.errUnexpected("expected ',' or '" + closing.Text + "' in parameter list")
		return nil, false
	}

	return params, true
}
