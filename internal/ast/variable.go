package ast

// Variable is a named value with a NamedType: a function parameter or
// a driver template parameter.
type Variable struct {
	Name string
	Type *NamedType
}

func (n *Variable) Accept(v Visitor) { v.VisitVariable(n) }

func (n *Variable) Clone() Node {
	return &Variable{
		Name: n.Name,
		Type: n.Type.Clone().(*NamedType),
	}
}
