package emit_test

import (
	"strings"
	"testing"

	"drivec/internal/ast"
	"drivec/internal/emit"
	"drivec/internal/token"
)

func TestPrintDriver(t *testing.T) {
	d := &ast.Driver{
		Name: "hw::Dev",
		Inheritance: &ast.Driver{
			Name: "hw::I2C",
			TemplateArgs: []token.Token{
				{Kind: token.NumericLiteral, Text: "0x42"},
			},
		},
		Functions: []*ast.Function{{
			Name:   "write",
			Params: []*ast.Variable{{Name: "x", Type: u8Type()}},
			Body:   []ast.Node{&ast.RawCode{Code: "hal_write(x);"}},
		}},
	}

	var sb strings.Builder
	d.Accept(emit.NewPrinter(&sb))
	out := sb.String()

	for _, want := range []string{
		"driver hw::Dev : hw::I2C<0x42> {",
		"    fn write(",
		"x) {",
		"        hal_write(x);",
		"    }",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTemplateParams(t *testing.T) {
	d := &ast.Driver{
		Name:           "I2C",
		TemplateParams: []*ast.Variable{{Name: "Address", Type: u8Type()}},
	}

	var sb strings.Builder
	d.Accept(emit.NewPrinter(&sb))

	if !strings.Contains(sb.String(), "driver I2C<u8 Address> {") {
		t.Errorf("unexpected output:\n%s", sb.String())
	}
}
