package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteJSONFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	original := `{
  "name": "template",
  "version": "0.1.0",
  "scripts": { "build": "tsc" }
}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	err := RewriteJSONFields(path, map[string]string{
		"name":        "calculator",
		"description": "Arithmetic over MCP",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "calculator", doc["name"])
	assert.Equal(t, "Arithmetic over MCP", doc["description"])
	// Untouched fields survive the rewrite.
	assert.Equal(t, "0.1.0", doc["version"])
	scripts, ok := doc["scripts"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tsc", scripts["build"])
}

func TestRewriteJSONFieldsMissingFile(t *testing.T) {
	err := RewriteJSONFields(filepath.Join(t.TempDir(), "nope.json"), map[string]string{"name": "x"})
	require.Error(t, err)
}

func TestRewriteJSONFieldsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	err := RewriteJSONFields(path, map[string]string{"name": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
