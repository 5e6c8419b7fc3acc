package emit

import (
	"fmt"
	"strings"

	"drivec/internal/ast"
)

// CGenerator lowers the node list into a single C translation unit.
// Every driver function becomes a static function prefixed with the
// driver's mangled name; inherited template parameters become constant
// accessor functions so raw code can read them by name.
type CGenerator struct {
	source       strings.Builder
	forwardDecls strings.Builder

	prefixes       []string
	templateParams []*ast.Variable
}

// NewCGenerator creates an empty generator.
func NewCGenerator() *CGenerator {
	return &CGenerator{}
}

// Source returns the generated translation unit: forward declarations
// first, definitions after.
func (g *CGenerator) Source() string {
	return g.forwardDecls.String() + "\n" + g.source.String()
}

func (g *CGenerator) VisitDriver(n *ast.Driver) {
	g.pushPrefix(n)

	g.templateParams = append(g.templateParams, n.TemplateParams...)

	if inh := n.Inheritance; inh != nil {
		g.pushPrefix(inh)

		for i, param := range inh.TemplateParams {
			if i >= len(inh.TemplateArgs) {
				break
			}
			fmt.Fprintf(&g.forwardDecls, "static %s %s_%s() { return %s; }\n",
				param.Type.Name,
				g.prefix(),
				param.Name,
				inh.TemplateArgs[i].Text)
		}

		g.popPrefix()
	}

	for _, fn := range n.Functions {
		fn.Accept(g)
	}

	g.templateParams = g.templateParams[:0]

	g.popPrefix()
}

func (g *CGenerator) VisitFunction(n *ast.Function) {
	var fn strings.Builder
	fmt.Fprintf(&fn, "static void %s_%s(", g.prefix(), n.Name)

	for i, param := range n.Params {
		fmt.Fprintf(&fn, "%s %s", param.Type.Name, param.Name)
		if i != len(n.Params)-1 {
			fn.WriteString(", ")
		}
	}
	fn.WriteString(")")

	g.source.WriteString(fn.String() + " {\n")
	g.forwardDecls.WriteString(fn.String() + ";\n")

	for _, param := range g.templateParams {
		fmt.Fprintf(&g.source, "    const %s %s = %s_%s();\n",
			param.Type.Name, param.Name, g.prefix(), param.Name)
	}

	g.source.WriteString("\n")

	for _, stmt := range n.Body {
		stmt.Accept(g)
	}

	g.source.WriteString("}\n\n")
}

func (g *CGenerator) VisitVariable(n *ast.Variable) {
	fmt.Fprintf(&g.source, "    %s %s;\n", n.Type.Name, n.Name)
}

func (g *CGenerator) VisitBuiltinType(n *ast.BuiltinType) {}

func (g *CGenerator) VisitNamedType(n *ast.NamedType) {}

func (g *CGenerator) VisitRawCode(n *ast.RawCode) {
	for _, line := range strings.Split(n.Code, "\n") {
		fmt.Fprintf(&g.source, "    %s\n", strings.TrimSpace(line))
	}
}

func (g *CGenerator) pushPrefix(n *ast.Driver) {
	g.prefixes = append(g.prefixes, "drv_"+strings.ReplaceAll(n.Name, "::", "_"))
}

func (g *CGenerator) popPrefix() {
	g.prefixes = g.prefixes[:len(g.prefixes)-1]
}

func (g *CGenerator) prefix() string {
	return g.prefixes[len(g.prefixes)-1]
}
