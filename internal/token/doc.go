// Package token defines the lexical token model of the driver DSL:
// the Kind taxonomy, the Token value with its borrowed lexeme, and the
// keyword, built-in type, separator, and operator tables shared by the
// lexer and parser.
package token
