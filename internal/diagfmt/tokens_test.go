package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"drivec/internal/diag"
	"drivec/internal/diagfmt"
	"drivec/internal/source"
	"drivec/internal/token"
)

func sampleTokens(fs *source.FileSet) []token.Token {
	id := fs.AddVirtual("t.drv", []byte("driver D"))
	return []token.Token{
		{Kind: token.Keyword, Text: "driver", Span: source.Span{File: id, Start: 0, End: 6}},
		{Kind: token.Identifier, Text: "D", Span: source.Span{File: id, Start: 7, End: 8}},
		{Kind: token.EndOfInput, Span: source.Span{File: id, Start: 8, End: 8}},
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	tokens := sampleTokens(fs)

	var sb strings.Builder
	if err := diagfmt.FormatTokensPretty(&sb, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	if !strings.Contains(out, "Keyword") || !strings.Contains(out, `"driver"`) {
		t.Errorf("keyword row missing:\n%s", out)
	}
	if !strings.Contains(out, "EndOfInput") {
		t.Errorf("EndOfInput row missing:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	tokens := sampleTokens(fs)

	var sb strings.Builder
	if err := diagfmt.FormatTokensJSON(&sb, tokens); err != nil {
		t.Fatal(err)
	}

	var out []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
	if out[0].Kind != "Keyword" || out[0].Text != "driver" {
		t.Errorf("unexpected first entry: %+v", out[0])
	}
}

func TestPrettyDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.drv", []byte("driver D : Nope { }"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnknownType,
		Message:  "type \"Nope\" is not declared",
		Primary:  source.Span{File: id, Start: 11, End: 15},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{Color: false, Context: 2})
	out := sb.String()

	if !strings.Contains(out, "bad.drv:1:12: ERROR [SYN2003]: type \"Nope\" is not declared") {
		t.Errorf("heading missing:\n%s", out)
	}
	if !strings.Contains(out, "^^^^") {
		t.Errorf("caret underline missing:\n%s", out)
	}
}
