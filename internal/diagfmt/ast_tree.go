package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"drivec/internal/ast"
)

var (
	driverStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	fnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	typeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	rawStyle     = lipgloss.NewStyle().Faint(true)
	literalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// FormatNodeTree renders the node list as an indented tree. Styling is
// disabled by setting color to false.
func FormatNodeTree(w io.Writer, nodes []ast.Node, colored bool) {
	t := &treePrinter{w: w, colored: colored}
	for _, n := range nodes {
		n.Accept(t)
	}
}

type treePrinter struct {
	w       io.Writer
	depth   int
	colored bool
}

func (t *treePrinter) style(s lipgloss.Style, text string) string {
	if !t.colored {
		return text
	}
	return s.Render(text)
}

func (t *treePrinter) line(text string) {
	fmt.Fprintf(t.w, "%s%s\n", strings.Repeat("  ", t.depth), text)
}

func (t *treePrinter) VisitDriver(n *ast.Driver) {
	label := t.style(driverStyle, "Driver ") + n.Name
	if len(n.TemplateParams) > 0 {
		label += fmt.Sprintf(" (%d template params)", len(n.TemplateParams))
	}
	t.line(label)
	t.depth++

	if n.Inheritance != nil {
		t.line("inherits:")
		t.depth++
		n.Inheritance.Accept(t)
		if len(n.Inheritance.TemplateArgs) > 0 {
			args := make([]string, 0, len(n.Inheritance.TemplateArgs))
			for _, a := range n.Inheritance.TemplateArgs {
				args = append(args, a.Text)
			}
			t.line("args: " + t.style(literalStyle, strings.Join(args, ", ")))
		}
		t.depth--
	}

	for _, param := range n.TemplateParams {
		param.Accept(t)
	}
	for _, fn := range n.Functions {
		fn.Accept(t)
	}
	t.depth--
}

func (t *treePrinter) VisitFunction(n *ast.Function) {
	t.line(t.style(fnStyle, "Function ") + n.Name)
	t.depth++
	for _, param := range n.Params {
		param.Accept(t)
	}
	for _, stmt := range n.Body {
		stmt.Accept(t)
	}
	t.depth--
}

func (t *treePrinter) VisitVariable(n *ast.Variable) {
	t.line("Variable " + n.Name)
	t.depth++
	n.Type.Accept(t)
	t.depth--
}

func (t *treePrinter) VisitBuiltinType(n *ast.BuiltinType) {
	t.line(t.style(typeStyle, "BuiltinType ") + fmt.Sprintf("%s, %d bytes", n.Category, n.Size))
}

func (t *treePrinter) VisitNamedType(n *ast.NamedType) {
	t.line(t.style(typeStyle, "NamedType ") + n.Name)
	if _, isDriver := n.DriverType(); isDriver {
		// Do not expand the instantiated driver subtree; the name is
		// enough at this level.
		return
	}
	t.depth++
	n.Type.Accept(t)
	t.depth--
}

func (t *treePrinter) VisitRawCode(n *ast.RawCode) {
	preview := n.Code
	if i := strings.IndexByte(preview, '\n'); i >= 0 {
		preview = preview[:i] + " ..."
	}
	t.line(t.style(rawStyle, "RawCode ") + preview)
}
