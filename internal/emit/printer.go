// Package emit contains the visitors that consume a compiled node
// list: a human-readable AST printer and the C code generator.
package emit

import (
	"fmt"
	"io"
	"strings"

	"drivec/internal/ast"
)

// Printer renders nodes back into DSL-like text with 4-space
// indentation. Intended for `drivec parse` output and debugging.
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) VisitDriver(n *ast.Driver) {
	p.writeIndent()
	fmt.Fprintf(p.w, "driver %s", n.Name)

	if len(n.TemplateParams) > 0 {
		fmt.Fprint(p.w, "<")
		for i, param := range n.TemplateParams {
			if i > 0 {
				fmt.Fprint(p.w, ", ")
			}
			fmt.Fprintf(p.w, "%s %s", param.Type.Name, param.Name)
		}
		fmt.Fprint(p.w, ">")
	}

	if n.Inheritance != nil {
		fmt.Fprintf(p.w, " : %s", n.Inheritance.Name)
		if len(n.Inheritance.TemplateArgs) > 0 {
			args := make([]string, 0, len(n.Inheritance.TemplateArgs))
			for _, a := range n.Inheritance.TemplateArgs {
				args = append(args, a.Text)
			}
			fmt.Fprintf(p.w, "<%s>", strings.Join(args, ", "))
		}
	}

	fmt.Fprint(p.w, " {\n")
	p.indent++
	for _, fn := range n.Functions {
		fn.Accept(p)
	}
	p.indent--
	p.writeIndent()
	fmt.Fprint(p.w, "}\n")
}

func (p *Printer) VisitFunction(n *ast.Function) {
	p.writeIndent()
	fmt.Fprintf(p.w, "fn %s(", n.Name)
	for i, param := range n.Params {
		if i > 0 {
			fmt.Fprint(p.w, ", ")
		}
		param.Accept(p)
	}
	fmt.Fprint(p.w, ") {\n")

	p.indent++
	for _, stmt := range n.Body {
		stmt.Accept(p)
	}
	p.indent--

	p.writeIndent()
	fmt.Fprint(p.w, "}\n")
}

func (p *Printer) VisitVariable(n *ast.Variable) {
	n.Type.Accept(p)
	fmt.Fprintf(p.w, "%s", n.Name)
}

func (p *Printer) VisitBuiltinType(n *ast.BuiltinType) {
	fmt.Fprintf(p.w, "(0x%02X) ", n.Size)
}

func (p *Printer) VisitNamedType(n *ast.NamedType) {
	fmt.Fprintf(p.w, "%s ", n.Name)
	if _, isDriver := n.DriverType(); !isDriver {
		n.Type.Accept(p)
	}
}

func (p *Printer) VisitRawCode(n *ast.RawCode) {
	p.writeIndent()
	fmt.Fprintf(p.w, "%s\n", n.Code)
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		fmt.Fprint(p.w, "    ")
	}
}
