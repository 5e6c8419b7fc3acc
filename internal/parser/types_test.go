package parser_test

import (
	"fmt"
	"testing"

	"drivec/internal/ast"
)

func TestBuiltinTypeDecoding(t *testing.T) {
	cases := []struct {
		name     string
		category ast.Category
		size     int
	}{
		{"u8", ast.Unsigned, 1},
		{"u16", ast.Unsigned, 2},
		{"u32", ast.Unsigned, 4},
		{"u64", ast.Unsigned, 8},
		{"i8", ast.Signed, 1},
		{"i16", ast.Signed, 2},
		{"i32", ast.Signed, 4},
		{"i64", ast.Signed, 8},
		{"f32", ast.FloatingPoint, 4},
		{"f64", ast.FloatingPoint, 8},
		{"bool", ast.Boolean, 1},
		{"char", ast.Character, 1},
		{"string", ast.String, 0},
		{"bytes", ast.Bytes, 0},
		{"void", ast.Void, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := fmt.Sprintf("driver D { fn f(%s x) { } }", tc.name)
			nodes, _ := mustParse(t, src)

			param := driverNode(t, nodes[0]).Functions[0].Params[0]
			if param.Type.Name != tc.name {
				t.Errorf("type name: got %q", param.Type.Name)
			}
			bt, ok := param.Type.Type.(*ast.BuiltinType)
			if !ok {
				t.Fatalf("expected builtin, got %T", param.Type.Type)
			}
			if bt.Category != tc.category || bt.Size != tc.size {
				t.Errorf("%s: got %v/%d, want %v/%d",
					tc.name, bt.Category, bt.Size, tc.category, tc.size)
			}
		})
	}
}

func TestDriverTypedParameter(t *testing.T) {
	nodes, _ := mustParse(t, `
		driver Bus { }
		driver D { fn attach(Bus b) { } }
	`)

	param := driverNode(t, nodes[1]).Functions[0].Params[0]
	if param.Type.Name != "Bus" {
		t.Errorf("type name: got %q", param.Type.Name)
	}
	inner, ok := param.Type.DriverType()
	if !ok {
		t.Fatalf("expected driver inner type, got %T", param.Type.Type)
	}
	if inner.Name != "Bus" {
		t.Errorf("inner driver name: got %q", inner.Name)
	}
	if len(inner.TemplateArgs) != 0 {
		t.Errorf("argument-less reference must carry an empty argument list, got %v", inner.TemplateArgs)
	}
}

func TestTemplateArgumentLiterals(t *testing.T) {
	nodes, _ := mustParse(t, `
		driver Cfg<u8 A, string Name, char Sep> { }
		driver D : Cfg<0x10, "uart", ','> { }
	`)

	inh := driverNode(t, nodes[1]).Inheritance
	if inh == nil {
		t.Fatal("missing inheritance")
	}
	if len(inh.TemplateArgs) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(inh.TemplateArgs))
	}
	if inh.TemplateArgs[1].Text != "uart" {
		t.Errorf("string literal argument: got %q", inh.TemplateArgs[1].Text)
	}
	if inh.TemplateArgs[2].Text != "," {
		t.Errorf("character literal argument: got %q", inh.TemplateArgs[2].Text)
	}
}
