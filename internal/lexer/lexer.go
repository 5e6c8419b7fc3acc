package lexer

import (
	"strings"

	"drivec/internal/diag"
	"drivec/internal/source"
	"drivec/internal/token"
)

// Lexer turns a source window into a pull-based token stream.
//
// Placeholder tokens are expanded in place: the expansion text becomes
// a virtual file in the FileSet and lexing continues inside it before
// returning to the enclosing window. The set of in-progress
// placeholder names travels with the frame stack so an expansion that
// reaches itself again fails instead of recursing forever.
type Lexer struct {
	fs     *source.FileSet
	frames []frame
	opts   Options
	active map[string]struct{}
	failed bool
}

type frame struct {
	cursor Cursor
	name   string // placeholder being expanded, "" for the root window
}

// New creates a lexer over file. The FileSet must be the one owning
// file; placeholder expansions are registered into it so their lexemes
// stay alive as long as every other lexeme of the compilation.
func New(fs *source.FileSet, file *source.File, opts Options) *Lexer {
	return &Lexer{
		fs:     fs,
		frames: []frame{{cursor: NewCursor(file)}},
		opts:   opts,
		active: make(map[string]struct{}),
	}
}

// Next returns the next token. After the first error, and after the
// source is exhausted, it always returns EndOfInput.
func (lx *Lexer) Next() token.Token {
	for {
		if lx.failed {
			return lx.eofToken()
		}

		cur := &lx.frames[len(lx.frames)-1].cursor

		for !cur.EOF() && isSpace(cur.Peek()) {
			cur.Bump()
		}

		if cur.EOF() {
			if len(lx.frames) > 1 {
				delete(lx.active, lx.frames[len(lx.frames)-1].name)
				lx.frames = lx.frames[:len(lx.frames)-1]
				continue
			}
			return lx.eofToken()
		}

		tok, ok := lx.scanToken(cur)
		if !ok {
			return lx.eofToken()
		}

		if tok.Kind == token.Placeholder {
			if !lx.expandPlaceholder(tok) {
				return lx.eofToken()
			}
			continue
		}

		return tok
	}
}

// Collect drains the lexer into a buffer, including the terminating
// EndOfInput token.
func (lx *Lexer) Collect() []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EndOfInput {
			return tokens
		}
	}
}

// Failed reports whether the lexer stopped on an error.
func (lx *Lexer) Failed() bool {
	return lx.failed
}

func (lx *Lexer) eofToken() token.Token {
	cur := &lx.frames[0].cursor
	return token.Token{
		Kind: token.EndOfInput,
		Span: source.Span{File: cur.File.ID, Start: cur.Off, End: cur.Off},
	}
}

func (lx *Lexer) fail(code diag.Code, span source.Span, msg string) {
	lx.opts.report(code, span, msg)
	lx.failed = true
}

// expandPlaceholder splices the expansion of tok into the stream.
// Returns false when the name is unknown or already being expanded.
func (lx *Lexer) expandPlaceholder(tok token.Token) bool {
	name := strings.TrimSpace(tok.Text)

	if _, inProgress := lx.active[name]; inProgress {
		lx.fail(diag.LexPlaceholderCycle, tok.Span,
			"placeholder \""+name+"\" expands to itself")
		return false
	}

	expansion, ok := lx.opts.Placeholders[name]
	if !ok {
		lx.fail(diag.LexUnknownPlaceholder, tok.Span,
			"placeholder \""+name+"\" is not defined in the configuration")
		return false
	}

	id := lx.fs.AddVirtual("placeholder:"+name, []byte(expansion))
	lx.active[name] = struct{}{}
	lx.frames = append(lx.frames, frame{
		cursor: NewCursor(lx.fs.Get(id)),
		name:   name,
	})
	return true
}
