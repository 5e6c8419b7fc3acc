package ast

// RawCode is an opaque block of target-language text copied verbatim
// into emitter output.
type RawCode struct {
	Code string
}

func (n *RawCode) Accept(v Visitor) { v.VisitRawCode(n) }

func (n *RawCode) Clone() Node {
	c := *n
	return &c
}
