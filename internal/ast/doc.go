// Package ast defines the abstract syntax tree of the driver DSL: six
// node variants with uniform visitor dispatch and deep-clone
// semantics. Lexeme-backed fields borrow from the compilation's source
// buffers and are valid for the compilation's lifetime.
package ast
