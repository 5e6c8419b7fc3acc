// Package diagfmt renders diagnostics, token dumps, and AST trees for
// the CLI.
package diagfmt
