package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocateStructural(t *testing.T, src string, diag *Diagnostics) []CallSite {
	t.Helper()
	toks, err := lexAll(src)
	require.NoError(t, err)
	require.NoError(t, checkBalance(toks))
	return locateStructural(src, toks, defaultTestOptions(), diag)
}

func TestLocateStructural(t *testing.T) {
	src := `
    this.server.tool(
      "add",
      { a: z.number(), b: z.number() },
      async ({ a, b }) => ({ content: [] })
    );
    this.server.tool("subtract", "Removes b from a", { a: z.number(), b: z.number() }, async () => ({}));
`
	sites := mustLocateStructural(t, src, nil)
	require.Len(t, sites, 2)

	add := sites[0]
	assert.Equal(t, "add", add.Name)
	assert.True(t, add.HasName)
	assert.False(t, add.HasDescription)
	assert.Equal(t, 3, add.ArgCount)
	require.IsType(t, &ObjectLit{}, add.Schema)

	subtract := sites[1]
	assert.Equal(t, "subtract", subtract.Name)
	assert.True(t, subtract.HasDescription)
	assert.Equal(t, "Removes b from a", subtract.Description)
	assert.Equal(t, 4, subtract.ArgCount)
	require.IsType(t, &ObjectLit{}, subtract.Schema)
}

func TestLocateStructuralDescriptionByTypeNotPosition(t *testing.T) {
	// Without a description literal the schema is the second argument.
	src := `this.server.tool("echo", { message: z.string() }, async (args) => ({}));`
	sites := mustLocateStructural(t, src, nil)
	require.Len(t, sites, 1)

	obj, ok := sites[0].Schema.(*ObjectLit)
	require.True(t, ok)
	require.Len(t, obj.Props, 1)
	assert.Equal(t, "message", obj.Props[0].Key)
}

func TestLocateStructuralSkipsMalformedCalls(t *testing.T) {
	src := `
    this.server.tool("broken", async () => ({}));
    this.server.tool("ok", { a: z.number() }, async () => ({}));
`
	diag := &Diagnostics{}
	sites := mustLocateStructural(t, src, diag)

	require.Len(t, sites, 1)
	assert.Equal(t, "ok", sites[0].Name)

	var skipped []Event
	for _, e := range diag.Events() {
		if e.Kind == EventCallSkipped {
			skipped = append(skipped, e)
		}
	}
	require.Len(t, skipped, 1)
	assert.Equal(t, "broken", skipped[0].Tool)
}

func TestLocateStructuralAdjacentCallsWithoutSemicolons(t *testing.T) {
	// Valid under automatic semicolon insertion: the next call's receiver
	// token directly follows the previous closing parenthesis.
	src := `
    this.server.tool("first", { a: z.number() }, async () => ({}))
    this.server.tool("second", { b: z.string() }, async () => ({}))
    this.server.tool("broken", async () => ({}))
    this.server.tool("fourth", { c: z.boolean() }, async () => ({}))
`
	diag := &Diagnostics{}
	sites := mustLocateStructural(t, src, diag)

	require.Len(t, sites, 3)
	assert.Equal(t, "first", sites[0].Name)
	assert.Equal(t, "second", sites[1].Name)
	assert.Equal(t, "fourth", sites[2].Name)

	var skipped []Event
	for _, e := range diag.Events() {
		if e.Kind == EventCallSkipped {
			skipped = append(skipped, e)
		}
	}
	require.Len(t, skipped, 1)
	assert.Equal(t, "broken", skipped[0].Tool)
}

func TestLocateStructuralIgnoresOtherCalls(t *testing.T) {
	src := `
    registry.server.tool("not-self", { a: z.number() }, async () => ({}));
    this.transport.tool("wrong-prop", { a: z.number() }, async () => ({}));
    this.server.register("wrong-method", { a: z.number() }, async () => ({}));
`
	sites := mustLocateStructural(t, src, nil)
	assert.Empty(t, sites)
}

func TestLocateStructuralNonLiteralName(t *testing.T) {
	src := `this.server.tool(toolName, { a: z.number() }, async () => ({}));`
	sites := mustLocateStructural(t, src, nil)
	require.Len(t, sites, 1)

	assert.Equal(t, UnknownToolName, sites[0].Name)
	assert.False(t, sites[0].HasName)
}

func TestLocatePattern(t *testing.T) {
	src := `
    this.server.tool("add", {
      a: z.number(),
      b: z.number(),
    }, async ({ a, b }) => ({ content: [] }));
`
	sites := locatePattern(src, defaultTestOptions())
	require.Len(t, sites, 1)

	assert.Equal(t, "add", sites[0].Name)
	assert.False(t, sites[0].HasDescription)
	assert.Contains(t, sites[0].SchemaText, "a: z.number()")
	assert.Nil(t, sites[0].Schema)
}
