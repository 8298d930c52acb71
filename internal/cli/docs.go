package cli

import (
	"fmt"

	"github.com/mcpforge/mcpforge/internal/config"
	"github.com/mcpforge/mcpforge/internal/docgen"
	"github.com/mcpforge/mcpforge/internal/scaffold"
	"github.com/mcpforge/mcpforge/pkg/printer"
	"github.com/spf13/cobra"
)

var DocsCmd = &cobra.Command{
	Use:   "docs [source-file]",
	Short: "Generate tool documentation from a server source file",
	Long: `Generate JSON documentation for the tools registered in an MCP server
source file.

The source file defaults to src/api/index.ts and the output to
dist/docs.json; both can be overridden by flags, the project manifest, or
MCPFORGE_-prefixed environment variables.

Examples:
mcpforge docs
mcpforge docs src/api/index.ts --output dist/docs.json
mcpforge docs --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocs,
}

var (
	docsOutput string
	docsExport string
	docsJSON   bool
)

func init() {
	DocsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Output path for the documentation file")
	DocsCmd.Flags().StringVar(&docsExport, "export", "", "Primary export name used as the document key")
	DocsCmd.Flags().BoolVar(&docsJSON, "json", false, "Also print the generated document to stdout")
}

func runDocs(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	opts := docgen.Options{
		SourcePath: cfg.SourcePath,
		OutputPath: cfg.DocsPath,
		ExportName: cfg.ExportName,
	}

	// A project manifest, when present, refines the defaults.
	if manifest, err := scaffold.NewManifestManager(".").Load(); err == nil {
		opts.SourcePath = manifest.SourcePath
		opts.OutputPath = manifest.DocsPath
		opts.ExportName = manifest.ServerClass
		opts.ExportDescription = manifest.Description
	}

	if len(args) > 0 {
		opts.SourcePath = args[0]
	}
	if docsOutput != "" {
		opts.OutputPath = docsOutput
	}
	if docsExport != "" {
		opts.ExportName = docsExport
	}

	result, err := docgen.Run(opts)
	if err != nil {
		return err
	}

	renderEvents(result)

	if result.Fallback {
		printer.PrintInfo("Fell back to text-pattern extraction")
	} else {
		printer.PrintInfo("Structural parse succeeded")
	}
	if len(result.Tools) == 0 {
		printer.PrintWarning(fmt.Sprintf("no tools discovered in %s", opts.SourcePath))
	}
	printer.PrintSuccess(fmt.Sprintf("%d tools discovered, documentation written to %s", len(result.Tools), opts.OutputPath))

	if docsJSON {
		if err := printer.New().PrintJSON(result.Document); err != nil {
			return fmt.Errorf("failed to print document: %w", err)
		}
	}
	return nil
}

// renderEvents prints the diagnostic stream. Skips and per-tool fallbacks
// are always surfaced; the rest only with --verbose.
func renderEvents(result *docgen.Result) {
	for _, event := range result.Events {
		switch event.Kind {
		case docgen.EventCallSkipped, docgen.EventSchemaFallback:
			printer.PrintWarning(event.String())
		default:
			if verbose {
				printer.PrintInfo(event.String())
			}
		}
	}
}
