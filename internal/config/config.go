package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the CLI configuration. Every field can be overridden through
// MCPFORGE_-prefixed environment variables or a local .env file.
type Config struct {
	SourcePath string `env:"SOURCE_PATH" envDefault:"src/api/index.ts"`
	DocsPath   string `env:"DOCS_PATH" envDefault:"dist/docs.json"`
	ExportName string `env:"EXPORT_NAME" envDefault:"McpServer"`
	Verbose    bool   `env:"VERBOSE" envDefault:"false"`
}

// New loads the configuration from the environment, reading a .env file
// first when one is present.
func New() (*Config, error) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: "MCPFORGE_",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
