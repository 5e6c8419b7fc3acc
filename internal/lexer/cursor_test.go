package lexer_test

import (
	"testing"

	"drivec/internal/lexer"
	"drivec/internal/source"
)

func makeCursor(t *testing.T, input string) lexer.Cursor {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("cur.drv", []byte(input))
	return lexer.NewCursor(fs.Get(id))
}

func TestCursorPeekAndBump(t *testing.T) {
	c := makeCursor(t, "ab")

	if c.Peek() != 'a' {
		t.Errorf("Peek = %q", c.Peek())
	}
	if c.PeekAt(1) != 'b' {
		t.Errorf("PeekAt(1) = %q", c.PeekAt(1))
	}
	if c.PeekAt(2) != 0 {
		t.Error("PeekAt past the end must be 0")
	}
	if c.Bump() != 'a' || c.Bump() != 'b' {
		t.Error("Bump order wrong")
	}
	if !c.EOF() {
		t.Error("cursor must be at EOF")
	}
	if c.Bump() != 0 {
		t.Error("Bump at EOF must be 0")
	}
}

func TestCursorHasPrefix(t *testing.T) {
	c := makeCursor(t, "[[x]]")

	if !c.HasPrefix("[[") {
		t.Error("prefix not found")
	}
	if c.HasPrefix("[[x]]]") {
		t.Error("prefix longer than the window must not match")
	}
	c.Advance(2)
	if !c.HasPrefix("x]]") {
		t.Error("prefix after Advance not found")
	}
}

func TestCursorSpanFrom(t *testing.T) {
	c := makeCursor(t, "hello")
	m := c.Mark()
	c.Advance(4)

	span := c.SpanFrom(m)
	if span.Start != 0 || span.End != 4 {
		t.Errorf("span = %v", span)
	}
}
