package parser

import (
	"drivec/internal/ast"
	"drivec/internal/diag"
	"drivec/internal/source"
	"drivec/internal/symbols"
	"drivec/internal/token"
)

// Options configures a Parser.
type Options struct {
	// Reporter receives syntactic diagnostics. The parser stops after
	// the first error.
	Reporter diag.Reporter
}

// Parser consumes a token buffer and yields top-level AST nodes.
//
// It is constructed with a symbol table (possibly carrying drivers
// from earlier compilation units) which it updates in place; Table
// exposes it again once the stream ends. Comment tokens are filtered
// out up front.
type Parser struct {
	toks    []token.Token
	pos     int
	table   *symbols.Table
	nss     []string // namespace stack
	opts    Options
	queue   []ast.Node
	done    bool
	errored bool
}

// New creates a parser over the token buffer using the given symbol
// table.
func New(toks []token.Token, table *symbols.Table, opts Options) *Parser {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.Comment {
			continue
		}
		filtered = append(filtered, t)
	}
	return &Parser{
		toks:  filtered,
		table: table,
		opts:  opts,
	}
}

// Table returns the symbol table with every driver parsed so far.
func (p *Parser) Table() *symbols.Table {
	return p.table
}

// Errored reports whether the stream ended on an error.
func (p *Parser) Errored() bool {
	return p.errored
}

// Next returns the next top-level node. ok is false once the stream
// ended, cleanly or on the first error. A namespace block flattens
// into the individual drivers it declares.
func (p *Parser) Next() (ast.Node, bool) {
	for {
		if len(p.queue) > 0 {
			n := p.queue[0]
			p.queue = p.queue[1:]
			return n, true
		}
		if p.done {
			return nil, false
		}
		if p.atEnd() {
			p.done = true
			return nil, false
		}

		nodes, ok := p.parseTopLevel()
		if !ok {
			p.done = true
			return nil, false
		}
		p.queue = append(p.queue, nodes...)
	}
}

// Parse drains the parser into a node list.
func (p *Parser) Parse() []ast.Node {
	nodes := make([]ast.Node, 0)
	for {
		n, ok := p.Next()
		if !ok {
			return nodes
		}
		nodes = append(nodes, n)
	}
}

func (p *Parser) parseTopLevel() ([]ast.Node, bool) {
	switch {
	case p.match(token.KeywordNamespace, token.AnyIdentifier):
		return p.parseNamespaceBlock(p.value(-1))
	case p.match(token.KeywordDriver, token.AnyIdentifier):
		d, ok := p.parseDriver()
		if !ok {
			return nil, false
		}
		return []ast.Node{d}, true
	default:
		p.errUnexpected("expected 'namespace' or 'driver'")
		return nil, false
	}
}

// parseNamespaceBlock parses the body of `namespace <name> { ... }`.
// The stack entry is released on every exit path.
func (p *Parser) parseNamespaceBlock(name string) ([]ast.Node, bool) {
	if !p.match(token.SeparatorOpenBrace) {
		p.errUnexpected("expected '{' after namespace name")
		return nil, false
	}

	p.nss = append(p.nss, name)
	defer func() { p.nss = p.nss[:len(p.nss)-1] }()

	var nodes []ast.Node
	for !p.match(token.SeparatorCloseBrace) {
		if p.atEnd() {
			p.errEndOfInput("namespace block is not closed")
			return nil, false
		}

		switch {
		case p.match(token.KeywordNamespace, token.AnyIdentifier):
			inner, ok := p.parseNamespaceBlock(p.value(-1))
			if !ok {
				return nil, false
			}
			nodes = append(nodes, inner...)
		case p.match(token.KeywordDriver, token.AnyIdentifier):
			d, ok := p.parseDriver()
			if !ok {
				return nil, false
			}
			nodes = append(nodes, d)
		default:
			p.errUnexpected("expected 'namespace', 'driver', or '}'")
			return nil, false
		}
	}

	return nodes, true
}

// peek returns the current token without consuming it.
func (p *Parser) peek() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return token.Token{Kind: token.EndOfInput, Span: p.lastSpan()}
}

func (p *Parser) lastSpan() source.Span {
	if len(p.toks) == 0 {
		return source.Span{}
	}
	return p.toks[len(p.toks)-1].Span
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EndOfInput
}

// match attempts to consume a fixed sequence of token templates from
// the current position. Kinds must match; a template with a non-empty
// lexeme must match the lexeme too (empty acts as a wildcard). Either
// the whole sequence is consumed or nothing is.
func (p *Parser) match(templates ...token.Token) bool {
	pos := p.pos
	for _, tpl := range templates {
		if pos >= len(p.toks) || !tpl.Matches(p.toks[pos]) {
			return false
		}
		pos++
	}
	p.pos = pos
	return true
}

// advance consumes and returns the current token (except EndOfInput,
// which is sticky).
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EndOfInput {
		p.pos++
	}
	return tok
}

// value returns the lexeme at a relative offset from the cursor;
// value(-1) is the most recently consumed token.
func (p *Parser) value(offset int) string {
	return p.toks[p.pos+offset].Text
}

func (p *Parser) report(code diag.Code, span source.Span, msg string) {
	p.errored = true
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, span, msg, nil)
	}
}

func (p *Parser) errUnexpected(msg string) {
	tok := p.peek()
	if tok.Kind == token.EndOfInput {
		p.errEndOfInput(msg)
		return
	}
	p.report(diag.SynUnexpectedToken, tok.Span, msg+", got \""+tok.Text+"\"")
}

func (p *Parser) errEndOfInput(msg string) {
	p.report(diag.SynEndOfInput, p.lastSpan(), msg)
}
