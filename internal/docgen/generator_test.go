package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calculatorSource = `
import { McpServer } from "@modelcontextprotocol/sdk/server/mcp.js";
import { z } from "zod";

export class Calculator {
  server: McpServer;

  registerTools(): void {
    this.server.tool(
      "add",
      { a: z.number().describe("First"), b: z.number() },
      async ({ a, b }) => ({ content: [{ type: "text", text: String(a + b) }] })
    );

    this.server.tool(
      "subtract",
      "Subtracts the second number from the first",
      { a: z.number(), b: z.number() },
      async ({ a, b }) => ({ content: [{ type: "text", text: String(a - b) }] })
    );
  }
}
`

func writeSource(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "index.ts")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractStructural(t *testing.T) {
	diag := &Diagnostics{}
	tools := Extract(calculatorSource, Options{}, diag)

	require.Len(t, tools, 2)
	assert.False(t, diag.UsedFallback())

	add := tools[0]
	assert.Equal(t, "add", add.Name)
	assert.Equal(t, `Tool "add"`, add.Description)
	require.Len(t, add.Params, 2)
	assert.Equal(t, ParamRecord{Name: "a", Type: "number", Description: "First"}, add.Params[0])
	assert.Equal(t, ParamRecord{Name: "b", Type: "number"}, add.Params[1])
	require.NotNil(t, add.Returns)
	assert.Equal(t, "string", add.Returns.Type)
	assert.Equal(t, `Result from tool "add"`, add.Returns.Description)

	subtract := tools[1]
	assert.Equal(t, "Subtracts the second number from the first", subtract.Description)
}

func TestExtractFallbackMatchesStructuralCount(t *testing.T) {
	// A stray closing parenthesis outside any call defeats the whole-file
	// structural parse.
	broken := calculatorSource + "\n)\n"

	diag := &Diagnostics{}
	tools := Extract(broken, Options{}, diag)

	assert.True(t, diag.UsedFallback())
	require.Len(t, tools, 2)
	assert.Equal(t, "add", tools[0].Name)
	assert.Equal(t, "subtract", tools[1].Name)

	require.Len(t, tools[0].Params, 2)
	assert.Equal(t, ParamRecord{Name: "a", Type: "number", Description: "First"}, tools[0].Params[0])
}

func TestExtractDescribeMentioningKeywords(t *testing.T) {
	src := `
export class Net {
  registerTools() {
    this.server.tool("iface", { name: z.string().describe("the network interface") }, async () => ({}));
    this.server.tool("route", { dest: z.string().describe("destination") }, async () => ({}));
  }
}
`
	diag := &Diagnostics{}
	tools := Extract(src, Options{}, diag)

	assert.False(t, diag.UsedFallback())
	require.Len(t, tools, 2)
	require.Len(t, tools[0].Params, 1)
	assert.Equal(t, "the network interface", tools[0].Params[0].Description)
	assert.Equal(t, "route", tools[1].Name)
}

func TestExtractFallbackScansOriginalText(t *testing.T) {
	// The stray parenthesis defeats the whole-file structural parse; the
	// pattern scan must still see the source as written, string contents
	// included.
	src := `
    this.server.tool("iface", { name: z.string().describe("the network interface") }, async () => ({}));
    this.server.tool("route", { dest: z.string() }, async () => ({}));
    )
`
	diag := &Diagnostics{}
	tools := Extract(src, Options{}, diag)

	assert.True(t, diag.UsedFallback())
	require.Len(t, tools, 2)
	assert.Equal(t, "iface", tools[0].Name)
	require.Len(t, tools[0].Params, 1)
	assert.Equal(t, "the network interface", tools[0].Params[0].Description)
	assert.Equal(t, "route", tools[1].Name)
}

func TestExtractNoTools(t *testing.T) {
	diag := &Diagnostics{}
	tools := Extract(`const x = 1;`, Options{}, diag)

	assert.Empty(t, tools)
	events := diag.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, EventNoTools, events[len(events)-1].Kind)
}

func TestRunWritesDocument(t *testing.T) {
	source := writeSource(t, calculatorSource)
	output := filepath.Join(t.TempDir(), "dist", "docs.json")

	result, err := Run(Options{
		SourcePath: source,
		OutputPath: output,
		ExportName: "Calculator",
	})
	require.NoError(t, err)
	require.Len(t, result.Tools, 2)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	doc, err := LoadDocument(data)
	require.NoError(t, err)
	require.Contains(t, doc, "Calculator")
	require.Contains(t, doc, DerivedExportName)
	assert.Equal(t, doc["Calculator"].Methods, doc[DerivedExportName].Methods)
}

func TestRunIsIdempotent(t *testing.T) {
	source := writeSource(t, calculatorSource)
	output := filepath.Join(t.TempDir(), "docs.json")

	_, err := Run(Options{SourcePath: source, OutputPath: output})
	require.NoError(t, err)
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	_, err = Run(Options{SourcePath: source, OutputPath: output})
	require.NoError(t, err)
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunUnreadableSource(t *testing.T) {
	_, err := Run(Options{SourcePath: filepath.Join(t.TempDir(), "missing.ts")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read source file")
}

func TestRunEmptyDocumentStillWritten(t *testing.T) {
	source := writeSource(t, `const x = 1;`)
	output := filepath.Join(t.TempDir(), "docs.json")

	result, err := Run(Options{SourcePath: source, OutputPath: output, ExportName: "Empty"})
	require.NoError(t, err)
	assert.Empty(t, result.Tools)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc, err := LoadDocument(data)
	require.NoError(t, err)
	assert.Empty(t, doc["Empty"].Methods)
}

func TestRunTenTools(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("export class Registry {\n  registerTools() {\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&sb, `    this.server.tool("tool%d", { value: z.string().describe("Value %d") }, async (args) => ({ content: [] }));`+"\n", i, i)
	}
	sb.WriteString("  }\n}\n")

	source := writeSource(t, sb.String())
	output := filepath.Join(t.TempDir(), "docs.json")

	result, err := Run(Options{SourcePath: source, OutputPath: output, ExportName: "Registry"})
	require.NoError(t, err)
	require.Len(t, result.Tools, 10)

	entry := result.Document["Registry"]
	require.Len(t, entry.Methods, 10)
	for i, method := range entry.Methods {
		assert.Equal(t, fmt.Sprintf("tool%d", i), method.Name)
		require.NotNil(t, method.Returns)
		assert.Equal(t, "string", method.Returns.Type)
	}
}
