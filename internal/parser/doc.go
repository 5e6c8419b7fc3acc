// Package parser consumes a token buffer and produces top-level AST
// nodes. It is context-aware: user type names resolve against a
// running symbol table shared across compilation units, templated
// drivers are instantiated by cloning, and a namespace stack qualifies
// every declared name.
package parser
