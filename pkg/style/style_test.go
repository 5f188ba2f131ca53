package style

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	got, err := FormatJSON([]byte(` {"a":1,"b":[true,null]} `))
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}\n"
	if got != want {
		t.Fatalf("FormatJSON = %q, want %q", got, want)
	}
	if _, err := FormatJSON("{broken"); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

func TestPrinterWithoutColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	if err := p.JSON(map[string]any{"lines": 2, "path": "a.txt"}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	want, _ := FormatJSON(map[string]any{"lines": 2, "path": "a.txt"})
	if buf.String() != want {
		t.Fatalf("uncolored output changed:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatYAMLNormalizes(t *testing.T) {
	got, err := FormatYAML("b:   2\na:\n    - x\n")
	if err != nil {
		t.Fatalf("FormatYAML: %v", err)
	}
	if !strings.Contains(got, "b: 2\n") || strings.Contains(got, "b:   2") || !strings.Contains(got, "- x") {
		t.Fatalf("FormatYAML = %q", got)
	}
}

func TestColorizeYAMLPreservesStructure(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, false)
	src := "output:\n  format: text\n  width: 0\nlist:\n  - 'it''s'\n  - ~\n"
	if got := p.colorizeYAML(src); got != src {
		t.Fatalf("colorizeYAML = %q, want %q", got, src)
	}
}

func TestFormatTOML(t *testing.T) {
	got, err := FormatTOML("[load]\nmax_file_size = '64MB'\n")
	if err != nil {
		t.Fatalf("FormatTOML: %v", err)
	}
	if !strings.Contains(got, "[load]") || !strings.Contains(got, "max_file_size") || !strings.Contains(got, "64MB") {
		t.Fatalf("unexpected toml: %q", got)
	}
}

func TestIndexUnquoted(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{`key: value`, 3},
		{`"a:b": c`, 5},
		{`'it''s:': x`, 8},
		{`no colon`, -1},
	}
	for _, c := range cases {
		if got := indexUnquoted(c.line, ':'); got != c.want {
			t.Fatalf("indexUnquoted(%q) = %d, want %d", c.line, got, c.want)
		}
	}
}

func TestHeadingAndList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	if err := p.Heading("key insights"); err != nil {
		t.Fatalf("Heading: %v", err)
	}
	if err := p.List("first", "second"); err != nil {
		t.Fatalf("List: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"KEY INSIGHTS", "first", "second"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	t.Setenv("COLUMNS", "")
	if got := TerminalWidth(&bytes.Buffer{}, 77); got != 77 {
		t.Fatalf("TerminalWidth = %d, want 77", got)
	}
	t.Setenv("COLUMNS", "132")
	if got := TerminalWidth(&bytes.Buffer{}, 77); got != 132 {
		t.Fatalf("TerminalWidth = %d, want 132", got)
	}
}
