package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Codes are stable: they appear in
// user-facing output and tests rely on them.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnterminatedString  Code = 1001
	LexUnterminatedComment Code = 1002
	LexInvalidChar         Code = 1003
	LexInvalidNumber       Code = 1004
	LexUnknownToken        Code = 1005
	LexUnknownPlaceholder  Code = 1006
	LexPlaceholderCycle    Code = 1007

	// Syntactic
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynEndOfInput       Code = 2002
	SynUnknownType      Code = 2003
	SynTemplateArgCount Code = 2004

	// Project / specification
	PrjInfo              Code = 5000
	PrjMissingDependency Code = 5001
	PrjDependencyCycle   Code = 5002
	PrjMalformedSpecs    Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:                "lexer note",
	LexUnterminatedString:  "unterminated string literal",
	LexUnterminatedComment: "unterminated comment",
	LexInvalidChar:         "invalid character",
	LexInvalidNumber:       "invalid numeric literal",
	LexUnknownToken:        "unknown token",
	LexUnknownPlaceholder:  "unknown placeholder",
	LexPlaceholderCycle:    "placeholder expansion cycle",

	SynInfo:             "parser note",
	SynUnexpectedToken:  "unexpected token",
	SynEndOfInput:       "end of input",
	SynUnknownType:      "unknown type",
	SynTemplateArgCount: "invalid template parameter count",

	PrjInfo:              "project note",
	PrjMissingDependency: "missing dependency",
	PrjDependencyCycle:   "dependency cycle",
	PrjMalformedSpecs:    "malformed specification file",
}

// ID renders the short stable identifier, e.g. LEX1006 or SYN2003.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

// Title returns the stable human-readable message for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
