package ast

import (
	"drivec/internal/token"
)

// Driver is a named, optionally templated unit grouping functions.
// Name is the namespace-qualified name it was declared under.
//
// Inheritance is an owned deep clone of the referenced driver, never a
// shared reference: binding template arguments on an inheritor must
// not touch the master copy in the symbol table.
//
// TemplateArgs is populated by instantiation; when both lists are
// non-empty they have equal length.
type Driver struct {
	Name           string
	Inheritance    *Driver
	TemplateParams []*Variable
	TemplateArgs   []token.Token
	Functions      []*Function
}

func (n *Driver) Accept(v Visitor) { v.VisitDriver(n) }

func (n *Driver) Clone() Node {
	c := &Driver{Name: n.Name}

	if n.Inheritance != nil {
		c.Inheritance = n.Inheritance.Clone().(*Driver)
	}

	c.TemplateParams = make([]*Variable, 0, len(n.TemplateParams))
	for _, p := range n.TemplateParams {
		c.TemplateParams = append(c.TemplateParams, p.Clone().(*Variable))
	}

	// Tokens are plain values; a slice copy is enough.
	if n.TemplateArgs != nil {
		c.TemplateArgs = make([]token.Token, len(n.TemplateArgs))
		copy(c.TemplateArgs, n.TemplateArgs)
	}

	c.Functions = make([]*Function, 0, len(n.Functions))
	for _, f := range n.Functions {
		c.Functions = append(c.Functions, f.Clone().(*Function))
	}

	return c
}

// SetTemplateArgs binds instantiation arguments. Called exactly once
// on a clone, immediately after the type reference is resolved.
func (n *Driver) SetTemplateArgs(args []token.Token) {
	n.TemplateArgs = args
}
