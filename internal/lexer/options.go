package lexer

import (
	"drivec/internal/diag"
	"drivec/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Placeholders is the expansion environment for {% name %} tokens.
	// Read-only during a lex run.
	Placeholders map[string]string
	// Reporter receives lexical diagnostics. The lexer stops after the
	// first error.
	Reporter diag.Reporter
}

func (o *Options) report(code diag.Code, span source.Span, msg string) {
	if o.Reporter == nil {
		return
	}
	o.Reporter.Report(code, diag.SevError, span, msg, nil)
}
