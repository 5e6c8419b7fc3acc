package parser

import (
	"fmt"
	"strings"

	"drivec/internal/ast"
	"drivec/internal/diag"
	"drivec/internal/symbols"
	"drivec/internal/token"
)

// parseType parses a type reference: a built-in type (when allowed),
// or a possibly qualified user type with optional template arguments.
// User types resolve against the symbol table and come back as clones
// of the master driver; the master is never handed out.
func (p *Parser) parseType(allowBuiltin bool) (*ast.NamedType, bool) {
	if allowBuiltin && p.match(token.AnyBuiltinType) {
		name := p.value(-1)
		return &ast.NamedType{
			Name: name,
			Type: decodeBuiltin(name),
		}, true
	}

	if p.match(token.AnyIdentifier) {
		name := p.value(-1)
		for p.match(token.OperatorColon, token.OperatorColon, token.AnyIdentifier) {
			name = name + "::" + p.value(-1)
		}

		master, ok := p.resolveDriver(name)
		if !ok {
			p.report(diag.SynUnknownType, p.toks[p.pos-1].Span,
				"type \""+name+"\" is not declared")
			return nil, false
		}

		clone := master.Clone().(*ast.Driver)

		if p.match(token.OperatorOpenAngle) {
			args, ok := p.parseTemplateArguments()
			if !ok {
				return nil, false
			}
			if len(args) != len(clone.TemplateParams) {
				p.report(diag.SynTemplateArgCount, p.toks[p.pos-1].Span, fmt.Sprintf(
					"driver %q takes %d template parameters, got %d arguments",
					name, len(clone.TemplateParams), len(args)))
				return nil, false
			}
			clone.SetTemplateArgs(args)
		} else {
			clone.SetTemplateArgs([]token.Token{})
		}

		return &ast.NamedType{Name: name, Type: clone}, true
	}

	p.errUnexpected("expected a type name")
	return nil, false
}

// resolveDriver looks the name up verbatim first, then prefixed with
// the current namespace stack.
func (p *Parser) resolveDriver(name string) (*ast.Driver, bool) {
	if d, ok := p.table.Lookup(name); ok {
		return d, true
	}
	if len(p.nss) > 0 {
		if d, ok := p.table.Lookup(symbols.Qualify(p.nss, name)); ok {
			return d, true
		}
	}
	return nil, false
}

// parseTemplateArguments parses `literal (',' literal)* '>'`; the '<'
// has already been consumed.
func (p *Parser) parseTemplateArguments() ([]token.Token, bool) {
	args := make([]token.Token, 0)

	for {
		if p.atEnd() {
			p.errEndOfInput("template argument list is not closed")
			return nil, false
		}

		tok := p.peek()
		if !tok.IsLiteral() {
			p.errUnexpected("expected a literal template argument")
			return nil, false
		}
		p.advance()
		args = append(args, tok)

		if p.match(token.SeparatorComma) {
			continue
		}
		if p.match(token.OperatorCloseAngle) {
			return args, true
		}
		p.errUnexpected("expected ',' or '>' in template argument list")
		return nil, false
	}
}

// decodeBuiltin maps a built-in type name onto its category and size.
// The lexer's built-in table guarantees only known shapes reach here;
// anything else is a programmer error.
func decodeBuiltin(name string) *ast.BuiltinType {
	switch name {
	case "bool":
		return &ast.BuiltinType{Category: ast.Boolean, Size: 1}
	case "char":
		return &ast.BuiltinType{Category: ast.Character, Size: 1}
	case "string":
		return &ast.BuiltinType{Category: ast.String, Size: 0}
	case "bytes":
		return &ast.BuiltinType{Category: ast.Bytes, Size: 0}
	case "void":
		return &ast.BuiltinType{Category: ast.Void, Size: 0}
	}

	var cat ast.Category
	switch {
	case strings.HasPrefix(name, "u"):
		cat = ast.Unsigned
	case strings.HasPrefix(name, "i"):
		cat = ast.Signed
	case strings.HasPrefix(name, "f"):
		cat = ast.FloatingPoint
	default:
		panic(fmt.Sprintf("builtin type %q has no category", name))
	}

	var size int
	switch {
	case strings.HasSuffix(name, "8"):
		size = 1
	case strings.HasSuffix(name, "16"):
		size = 2
	case strings.HasSuffix(name, "32"):
		size = 4
	case strings.HasSuffix(name, "64"):
		size = 8
	default:
		panic(fmt.Sprintf("builtin type %q has no size", name))
	}

	return &ast.BuiltinType{Category: cat, Size: size}
}
