package ast

// Category classifies a built-in type.
type Category uint8

const (
	Unsigned Category = iota
	Signed
	FloatingPoint
	Boolean
	Character
	String
	Bytes
	Void
)

func (c Category) String() string {
	switch c {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case FloatingPoint:
		return "floating-point"
	case Boolean:
		return "boolean"
	case Character:
		return "character"
	case String:
		return "string"
	case Bytes:
		return "bytes"
	case Void:
		return "void"
	}
	return "unknown"
}

// BuiltinType is a leaf describing one of the language's built-in
// types by category and size in bytes.
type BuiltinType struct {
	Category Category
	Size     int
}

func (n *BuiltinType) Accept(v Visitor) { v.VisitBuiltinType(n) }

func (n *BuiltinType) Clone() Node {
	c := *n
	return &c
}

// NamedType wraps the inner type a type name resolved to: a
// BuiltinType, or a Driver clone for user-defined types.
type NamedType struct {
	Name string
	Type Node
}

func (n *NamedType) Accept(v Visitor) { v.VisitNamedType(n) }

func (n *NamedType) Clone() Node {
	return &NamedType{
		Name: n.Name,
		Type: n.Type.Clone(),
	}
}

// DriverType returns the inner Driver when the named type resolved to
// a user-defined driver.
func (n *NamedType) DriverType() (*Driver, bool) {
	d, ok := n.Type.(*Driver)
	return d, ok
}
