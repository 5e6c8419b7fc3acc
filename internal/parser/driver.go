package parser

import (
	"drivec/internal/ast"
	"drivec/internal/symbols"
	"drivec/internal/token"
)

// parseDriver parses a driver definition. The `driver <name>` prefix
// has already been consumed; the declared name is at offset -1.
//
// On success the master definition is registered in the symbol table
// under its namespace-qualified name.
func (p *Parser) parseDriver() (*ast.Driver, bool) {
	name := p.value(-1)
	qualified := symbols.Qualify(p.nss, name)

	d := &ast.Driver{Name: qualified}

	// Template parameters: driver X<u8 Address, u32 Speed>
	if p.match(token.OperatorOpenAngle) {
		params, ok := p.parseParameterList(token.OperatorCloseAngle)
		if !ok {
			return nil, false
		}
		d.TemplateParams = params
	}

	// Inheritance: driver X : Base<...>. Built-in types can never be
	// inherited from.
	if p.match(token.OperatorColon) {
		base, ok := p.parseType(false)
		if !ok {
			return nil, false
		}
		inh, isDriver := base.DriverType()
		if !isDriver {
			p.errUnexpected("expected a driver type after ':'")
			return nil, false
		}
		d.Inheritance = inh
	}

	if !p.match(token.SeparatorOpenBrace) {
		p.errUnexpected("expected '{' in driver definition")
		return nil, false
	}

	for !p.match(token.SeparatorCloseBrace) {
		if p.atEnd() {
			p.errEndOfInput("driver body is not closed")
			return nil, false
		}

		if p.match(token.KeywordFn, token.AnyIdentifier, token.SeparatorOpenParenthesis) {
			fn, ok := p.parseFunction()
			if !ok {
				return nil, false
			}
			d.Functions = append(d.Functions, fn)
		} else {
			p.errUnexpected("expected 'fn' or '}' in driver body")
			return nil, false
		}
	}

	p.table.Insert(qualified, d)

	return d, true
}
