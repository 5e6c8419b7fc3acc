package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color   bool
	Context int8 // > 0 shows the primary span's source line with a caret underline (no surrounding lines); 0 disables
}
