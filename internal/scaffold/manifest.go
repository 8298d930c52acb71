package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const ManifestFileName = "mcpforge.yaml"

// ProjectManifest records the scaffolded project's configuration and
// metadata.
type ProjectManifest struct {
	Name        string    `yaml:"projectName"`
	Description string    `yaml:"description,omitempty"`
	ServerClass string    `yaml:"serverClass"`
	SourcePath  string    `yaml:"sourcePath"`
	DocsPath    string    `yaml:"docsPath"`
	UpdatedAt   time.Time `yaml:"updatedAt,omitempty"`
}

// ManifestManager handles loading and saving of project manifests.
type ManifestManager struct {
	projectRoot string
}

// NewManifestManager creates a manifest manager for the given project root.
func NewManifestManager(projectRoot string) *ManifestManager {
	return &ManifestManager{
		projectRoot: projectRoot,
	}
}

// Load reads and parses the mcpforge.yaml file.
func (m *ManifestManager) Load() (*ProjectManifest, error) {
	manifestPath := filepath.Join(m.projectRoot, ManifestFileName)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s not found in %s", ManifestFileName, m.projectRoot)
		}
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFileName, err)
	}

	var manifest ProjectManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFileName, err)
	}

	if err := m.Validate(&manifest); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ManifestFileName, err)
	}

	return &manifest, nil
}

// Save writes the manifest to mcpforge.yaml.
func (m *ManifestManager) Save(manifest *ProjectManifest) error {
	manifest.UpdatedAt = time.Now()

	if err := m.Validate(manifest); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	manifestPath := filepath.Join(m.projectRoot, ManifestFileName)
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ManifestFileName, err)
	}

	return nil
}

// Validate checks if the manifest is valid.
func (m *ManifestManager) Validate(manifest *ProjectManifest) error {
	if manifest.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if manifest.ServerClass == "" {
		return fmt.Errorf("server class is required")
	}
	if manifest.SourcePath == "" {
		return fmt.Errorf("source path is required")
	}
	return nil
}
