package source_test

import (
	"testing"

	"drivec/internal/source"
)

func TestSpanBasics(t *testing.T) {
	s := source.Span{File: 0, Start: 2, End: 5}
	if s.Empty() {
		t.Error("non-empty span reported empty")
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d", s.Len())
	}
	if (source.Span{Start: 4, End: 4}).Empty() != true {
		t.Error("empty span not reported")
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 0, Start: 2, End: 5}
	b := source.Span{File: 0, Start: 4, End: 9}

	c := a.Cover(b)
	if c.Start != 2 || c.End != 9 {
		t.Errorf("Cover = %v", c)
	}

	// Spans of different files do not combine.
	other := source.Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover = %v", got)
	}
}
