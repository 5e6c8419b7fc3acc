package ast

// Function holds a function's parameters and body statements in
// declaration order. The body admits arbitrary nodes for future
// surface growth; the parser only ever emits RawCode statements.
type Function struct {
	Name   string
	Params []*Variable
	Body   []Node
}

func (n *Function) Accept(v Visitor) { v.VisitFunction(n) }

func (n *Function) Clone() Node {
	c := &Function{
		Name:   n.Name,
		Params: make([]*Variable, 0, len(n.Params)),
		Body:   make([]Node, 0, len(n.Body)),
	}
	for _, p := range n.Params {
		c.Params = append(c.Params, p.Clone().(*Variable))
	}
	for _, s := range n.Body {
		c.Body = append(c.Body, s.Clone())
	}
	return c
}
