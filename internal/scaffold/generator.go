package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/schollz/progressbar/v3"
	"github.com/stoewer/go-strcase"
)

//go:embed all:templates
var templatesFS embed.FS

// Config captures the data required to render a project from templates.
type Config struct {
	Name        string
	Description string
	Directory   string
	Verbose     bool

	// ServerClassName is the exported server class rendered into the
	// template; derived from Name when empty.
	ServerClassName string
}

func (c Config) serverClassName() string {
	if c.ServerClassName != "" {
		return c.ServerClassName
	}
	return strcase.UpperCamelCase(c.Name)
}

// templateData is what template files see during rendering.
type templateData struct {
	Name            string
	Description     string
	ServerClassName string
	PackageName     string
}

// Generator renders the embedded template tree into a destination directory.
type Generator struct {
	templateFiles fs.FS
	templateRoot  string
}

// NewGenerator returns a template renderer rooted at "templates".
func NewGenerator() *Generator {
	return &Generator{
		templateFiles: templatesFS,
		templateRoot:  "templates",
	}
}

// GenerateProject walks the template tree and renders files to disk.
func (g *Generator) GenerateProject(config Config) error {
	if config.Directory == "" {
		return fmt.Errorf("project directory is required")
	}
	if config.Name == "" {
		return fmt.Errorf("project name is required")
	}

	if err := os.MkdirAll(config.Directory, 0o755); err != nil {
		return fmt.Errorf("failed to ensure project directory: %w", err)
	}

	templateRoot, err := fs.Sub(g.templateFiles, g.templateRoot)
	if err != nil {
		return fmt.Errorf("failed to open template root: %w", err)
	}

	data := templateData{
		Name:            config.Name,
		Description:     config.Description,
		ServerClassName: config.serverClassName(),
		PackageName:     strcase.KebabCase(config.Name),
	}

	bar := newRenderBar(countTemplateFiles(templateRoot), config.Verbose)

	err = fs.WalkDir(templateRoot, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		destPath := strings.TrimSuffix(path, ".tmpl")
		destPath = filepath.Join(config.Directory, destPath)

		if d.IsDir() {
			return os.MkdirAll(destPath, 0o755)
		}

		content, err := fs.ReadFile(templateRoot, path)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", path, err)
		}

		rendered, err := g.RenderTemplate(string(content), data)
		if err != nil {
			return fmt.Errorf("failed to render template %s: %w", path, err)
		}

		if err := os.WriteFile(destPath, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", destPath, err)
		}

		if config.Verbose {
			fmt.Printf("  Generated: %s\n", destPath)
		}
		if bar != nil {
			_ = bar.Add(1)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk templates: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return nil
}

// RenderTemplate renders a template string with the provided data.
func (g *Generator) RenderTemplate(tmplContent string, data any) (string, error) {
	tmpl, err := template.New("template").Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return result.String(), nil
}

func countTemplateFiles(root fs.FS) int {
	count := 0
	_ = fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}

func newRenderBar(total int, verbose bool) *progressbar.ProgressBar {
	if verbose || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Rendering project"),
		progressbar.OptionClearOnFinish(),
	)
}
