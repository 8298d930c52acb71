package printer

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := New()
	p.SetOutput(&buf)

	if err := p.PrintJSON(map[string]string{"name": "calculator"}); err != nil {
		t.Fatalf("PrintJSON() error = %v", err)
	}
	want := "{\n  \"name\": \"calculator\"\n}\n"
	if buf.String() != want {
		t.Fatalf("PrintJSON() = %q, want %q", buf.String(), want)
	}
}

func TestTablePrinter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTablePrinter(&buf)
	table.SetHeaders("tool", "params")
	table.AddRow("add", 2)
	table.AddRow("echo", 1)

	if err := table.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "TOOL") {
		t.Fatalf("missing upper-cased header in %q", out)
	}
	if !strings.Contains(out, "add") || !strings.Contains(out, "echo") {
		t.Fatalf("missing rows in %q", out)
	}
}

func TestTablePrinterNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	table := NewTablePrinter(&buf, WithNoHeaders())
	table.SetHeaders("tool")
	table.AddRow("add")

	if err := table.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), "TOOL") {
		t.Fatalf("headers rendered despite WithNoHeaders: %q", buf.String())
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short", input: "add", maxLen: 10, want: "add"},
		{name: "truncated", input: "a very long description", maxLen: 10, want: "a very ..."},
		{name: "tiny limit", input: "abcdef", maxLen: 2, want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Fatalf("TruncateString() = %q, want %q", got, tt.want)
			}
		})
	}
}
