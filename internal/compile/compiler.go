// Package compile walks the specification's driver map and compiles
// every driver in dependency order, threading one symbol table through
// the per-driver parser runs so a later driver can reference an
// earlier one by name.
package compile

import (
	"errors"
	"fmt"

	"drivec/internal/ast"
	"drivec/internal/diag"
	"drivec/internal/lexer"
	"drivec/internal/parser"
	"drivec/internal/specs"
	"drivec/internal/symbols"
)

var (
	// ErrMissingDependency marks a depends entry naming no driver in
	// the specification.
	ErrMissingDependency = errors.New("missing dependency")
	// ErrDependencyCycle marks a cycle in the depends graph.
	ErrDependencyCycle = errors.New("dependency cycle")
	// ErrCompileFailed marks a compilation unit that stopped on a
	// lexical or syntactic error; the details are in the Bag.
	ErrCompileFailed = errors.New("compilation failed")
)

// Compiler drives one whole-specification compilation. Single
// threaded; drivers compile in post-order over the dependency DAG,
// stable with respect to the specification's document order.
type Compiler struct {
	specsFile *specs.File
	table     *symbols.Table
	bag       *diag.Bag

	compiled map[string]struct{}
	visiting map[string]struct{}
}

// New creates a compiler for the loaded specification.
func New(specsFile *specs.File, maxDiagnostics int) *Compiler {
	return &Compiler{
		specsFile: specsFile,
		table:     symbols.NewTable(),
		bag:       diag.NewBag(maxDiagnostics),
		compiled:  make(map[string]struct{}),
		visiting:  make(map[string]struct{}),
	}
}

// Bag returns the diagnostics collected so far.
func (c *Compiler) Bag() *diag.Bag {
	return c.bag
}

// Table returns the symbol table accumulated across all compiled
// drivers.
func (c *Compiler) Table() *symbols.Table {
	return c.table
}

// Process compiles every driver of the specification and returns the
// flat node list in compilation order.
func (c *Compiler) Process() ([]ast.Node, error) {
	nodes := make([]ast.Node, 0)
	for _, name := range c.specsFile.Order() {
		newNodes, err := c.processDriver(name)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, newNodes...)
	}
	return nodes, nil
}

// Run compiles the whole specification and feeds the node list into
// the visitor in collected order.
func (c *Compiler) Run(v ast.Visitor) error {
	nodes, err := c.Process()
	if err != nil {
		return err
	}
	for _, n := range nodes {
		n.Accept(v)
	}
	return nil
}

// processDriver compiles a driver after all of its dependencies, each
// at most once.
func (c *Compiler) processDriver(name string) ([]ast.Node, error) {
	if _, done := c.compiled[name]; done {
		return nil, nil
	}
	if _, active := c.visiting[name]; active {
		c.reportProject(diag.PrjDependencyCycle,
			fmt.Sprintf("driver %q participates in a dependency cycle", name))
		return nil, fmt.Errorf("driver %q: %w", name, ErrDependencyCycle)
	}
	c.visiting[name] = struct{}{}
	defer delete(c.visiting, name)

	d, ok := c.specsFile.Get(name)
	if !ok {
		c.reportProject(diag.PrjMissingDependency,
			fmt.Sprintf("driver %q is not in the specification", name))
		return nil, fmt.Errorf("driver %q: %w", name, ErrMissingDependency)
	}

	nodes := make([]ast.Node, 0)
	for _, dep := range d.Depends {
		if _, done := c.compiled[dep]; done {
			continue
		}
		if _, exists := c.specsFile.Get(dep); !exists {
			c.reportProject(diag.PrjMissingDependency,
				fmt.Sprintf("driver %q depends on %q, which is not in the specification", name, dep))
			return nil, fmt.Errorf("driver %q depends on %q: %w", name, dep, ErrMissingDependency)
		}
		depNodes, err := c.processDriver(dep)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, depNodes...)
	}

	newNodes, err := c.compileCode(d)
	if err != nil {
		return nil, err
	}
	nodes = append(nodes, newNodes...)

	c.compiled[name] = struct{}{}
	return nodes, nil
}

func (c *Compiler) reportProject(code diag.Code, msg string) {
	c.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
	})
}

// compileCode runs lex and parse for one driver source, handing the
// accumulated symbol table to a fresh parser instance and keeping the
// updated table for the drivers that follow.
func (c *Compiler) compileCode(d *specs.Driver) ([]ast.Node, error) {
	reporter := diag.BagReporter{Bag: c.bag}

	lx := lexer.New(c.specsFile.FileSet, c.specsFile.Source(d), lexer.Options{
		Placeholders: d.Config,
		Reporter:     reporter,
	})
	tokens := lx.Collect()
	if lx.Failed() {
		return nil, fmt.Errorf("driver %q: %w", d.Name, ErrCompileFailed)
	}

	p := parser.New(tokens, c.table, parser.Options{Reporter: reporter})
	nodes := p.Parse()
	if p.Errored() {
		return nil, fmt.Errorf("driver %q: %w", d.Name, ErrCompileFailed)
	}
	c.table = p.Table()

	return nodes, nil
}
