package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcpforge",
	Short: "MCP server scaffolding and documentation",
	Long: `mcpforge scaffolds Model Context Protocol server projects and
generates JSON documentation for their registered tools.`,
	SilenceUsage: true,
}

var verbose bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewCmd)
	rootCmd.AddCommand(DocsCmd)
	rootCmd.AddCommand(ReportCmd)
}
