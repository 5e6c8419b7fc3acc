// Package lexer converts a source window plus a placeholder
// environment into a pull-based token stream. Placeholders are
// expanded recursively with deterministic cycle detection; the first
// error ends the stream.
package lexer
