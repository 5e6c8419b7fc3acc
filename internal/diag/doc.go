// Package diag carries the diagnostic model shared by every
// compilation phase: stable numeric codes, severities, a bounded Bag,
// and the Reporter contract the lexer and parser emit through.
package diag
