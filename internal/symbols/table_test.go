package symbols_test

import (
	"testing"

	"drivec/internal/ast"
	"drivec/internal/symbols"
)

func TestInsertAndLookup(t *testing.T) {
	table := symbols.NewTable()
	d := &ast.Driver{Name: "net::i2c"}
	table.Insert("net::i2c", d)

	got, ok := table.Lookup("net::i2c")
	if !ok || got != d {
		t.Fatalf("lookup failed: %v %v", got, ok)
	}
	if _, ok := table.Lookup("i2c"); ok {
		t.Error("bare name must not resolve")
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", table.Len())
	}
}

func TestNamesSorted(t *testing.T) {
	table := symbols.NewTable()
	table.Insert("b", &ast.Driver{Name: "b"})
	table.Insert("a", &ast.Driver{Name: "a"})

	names := table.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestQualify(t *testing.T) {
	cases := []struct {
		nss  []string
		name string
		want string
	}{
		{nil, "X", "X"},
		{[]string{"a"}, "X", "a::X"},
		{[]string{"a", "b"}, "X", "a::b::X"},
	}
	for _, tc := range cases {
		if got := symbols.Qualify(tc.nss, tc.name); got != tc.want {
			t.Errorf("Qualify(%v, %q) = %q, want %q", tc.nss, tc.name, got, tc.want)
		}
	}
}
