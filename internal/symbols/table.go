// Package symbols holds the driver symbol table threaded between
// per-driver parser runs: one compilation shares a single table, so a
// later driver resolves type names declared by an earlier one.
package symbols

import (
	"sort"
	"strings"

	"drivec/internal/ast"
)

// Table maps qualified driver names (e.g. "net::i2c") to the master
// Driver node produced on first parse. Masters are never handed out
// for mutation: type resolution clones them.
type Table struct {
	drivers map[string]*ast.Driver
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{drivers: make(map[string]*ast.Driver)}
}

// Insert registers the master definition under its qualified name.
// A redeclaration replaces the previous master.
func (t *Table) Insert(name string, d *ast.Driver) {
	t.drivers[name] = d
}

// Lookup returns the master definition for a qualified name.
func (t *Table) Lookup(name string) (*ast.Driver, bool) {
	d, ok := t.drivers[name]
	return d, ok
}

// Len reports how many drivers are registered.
func (t *Table) Len() int {
	return len(t.drivers)
}

// Names returns all registered qualified names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.drivers))
	for name := range t.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Qualify joins a namespace stack and a bare name into a qualified
// name: Qualify([a b], X) = "a::b::X".
func Qualify(namespaces []string, name string) string {
	if len(namespaces) == 0 {
		return name
	}
	return strings.Join(namespaces, "::") + "::" + name
}
