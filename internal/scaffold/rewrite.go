package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
)

// RewriteJSONFields loads a JSON configuration file, sets the given
// top-level string fields, and writes it back with two-space indentation.
// Fields not named in values are preserved as-is.
func RewriteJSONFields(path string, values map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for key, value := range values {
		doc[key] = value
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
