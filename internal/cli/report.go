package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/mcpforge/mcpforge/internal/config"
	"github.com/mcpforge/mcpforge/internal/docgen"
	"github.com/mcpforge/mcpforge/internal/scaffold"
	"github.com/mcpforge/mcpforge/pkg/printer"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

var ReportCmd = &cobra.Command{
	Use:   "report [docs-file]",
	Short: "Print a summary of generated tool documentation",
	Long: `Print a human-readable summary of a documentation file produced by
'mcpforge docs'.

Examples:
mcpforge report
mcpforge report dist/docs.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

const reportWrapWidth = 80

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	exportStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	docsPath := cfg.DocsPath
	if manifest, err := scaffold.NewManifestManager(".").Load(); err == nil {
		docsPath = manifest.DocsPath
	}
	if len(args) > 0 {
		docsPath = args[0]
	}

	data, err := os.ReadFile(docsPath)
	if err != nil {
		return fmt.Errorf("failed to read documentation file %s: %w", docsPath, err)
	}

	doc, err := docgen.LoadDocument(data)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Tool documentation (%s)", docsPath)))

	for _, name := range sortedExportNames(doc) {
		if err := printEntry(doc[name]); err != nil {
			return err
		}
	}
	return nil
}

func sortedExportNames(doc docgen.Document) []string {
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printEntry(entry *docgen.EntrypointDocument) error {
	fmt.Println()
	fmt.Println(exportStyle.Render(entry.ExportedAs))
	if entry.Description != nil && *entry.Description != "" {
		fmt.Println(wordwrap.String(*entry.Description, reportWrapWidth))
	}

	if len(entry.Methods) == 0 {
		printer.PrintInfo("No tools documented.")
		return nil
	}

	table := printer.NewTablePrinter(os.Stdout)
	table.SetHeaders("tool", "params", "returns", "description")
	for _, tool := range entry.Methods {
		returns := "-"
		if tool.Returns != nil {
			returns = tool.Returns.Type
		}
		table.AddRow(tool.Name, formatParams(tool.Params), returns, printer.TruncateString(tool.Description, 48))
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, tool := range entry.Methods {
		printToolDetail(tool)
	}
	return nil
}

func formatParams(params []docgen.ParamRecord) string {
	if len(params) == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", len(params))
}

func printToolDetail(tool docgen.ToolRecord) {
	fmt.Printf("\n%s\n", titleStyle.Render(tool.Name))
	fmt.Println(wordwrap.String(tool.Description, reportWrapWidth))
	for _, param := range tool.Params {
		line := fmt.Sprintf("  %s (%s)", param.Name, param.Type)
		if param.Optional {
			line += " [optional]"
		}
		if param.Description != "" {
			line += ": " + param.Description
		}
		fmt.Println(wordwrap.String(line, reportWrapWidth))
	}
}
