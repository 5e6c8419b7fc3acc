package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"drivec/internal/diag"
	"drivec/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	noteColor = color.New(color.Faint)
)

// Pretty formats diagnostics for humans. Walks bag.Items() (call
// bag.Sort() first for deterministic output) and prints, per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// followed by the offending source line with a caret underline when
// opts.Context > 0, then any notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Severity, d.Code, d.Primary, d.Message, opts)

		if opts.Context > 0 {
			writeContext(w, fs, d.Primary)
		}

		for _, note := range d.Notes {
			prefix := "note"
			if opts.Color {
				prefix = noteColor.Sprint(prefix)
			}
			start, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				prefix, fs.Get(note.Span.File).Path, start.Line, start.Col, note.Msg)
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, sev diag.Severity, code diag.Code, span source.Span, msg string, opts PrettyOpts) {
	start, _ := fs.Resolve(span)
	sevText := sev.String()
	if opts.Color {
		switch sev {
		case diag.SevError:
			sevText = errColor.Sprint(sevText)
		case diag.SevWarning:
			sevText = warnColor.Sprint(sevText)
		default:
			sevText = infoColor.Sprint(sevText)
		}
	}
	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		fs.Get(span.File).Path, start.Line, start.Col, sevText, code.ID(), msg)
}

func writeContext(w io.Writer, fs *source.FileSet, span source.Span) {
	start, end := fs.Resolve(span)
	file := fs.Get(span.File)

	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %4d | %s\n", start.Line, line)

	// Caret underline for the span's extent on its first line.
	underlineLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		underlineLen = int(end.Col - start.Col)
	}
	fmt.Fprintf(w, "       | %s%s\n",
		strings.Repeat(" ", int(start.Col-1)),
		strings.Repeat("^", underlineLen))
}
