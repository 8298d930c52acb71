package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcpforge/mcpforge/internal/docgen"
	"github.com/mcpforge/mcpforge/internal/scaffold"
	"github.com/mcpforge/mcpforge/pkg/printer"
	"github.com/mcpforge/mcpforge/pkg/validators"
	"github.com/spf13/cobra"
	"github.com/stoewer/go-strcase"
)

var NewCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Scaffold a new MCP server project",
	Long: `Scaffold a new MCP server project in ./<project-name>.

The generated project contains a TypeScript MCP server with example tool
registrations, a package.json wired for the MCP SDK, and a mcpforge.yaml
manifest. The command prints the client connection configuration as JSON.

Examples:
mcpforge new calculator
mcpforge new calculator --description "Arithmetic over MCP"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runNew,
	Example: `mcpforge new calculator`,
}

var (
	newDescription string
	newServerClass string
)

func init() {
	NewCmd.Flags().StringVar(&newDescription, "description", "", "Description for the project")
	NewCmd.Flags().StringVar(&newServerClass, "server-class", "", "Name of the generated server class (defaults to the project name in UpperCamelCase)")
}

func runNew(cmd *cobra.Command, args []string) error {
	projectName := args[0]

	if err := validators.ValidateProjectName(projectName); err != nil {
		return fmt.Errorf("invalid project name: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	projectDir := filepath.Join(cwd, projectName)
	if _, err := os.Stat(projectDir); err == nil {
		return fmt.Errorf("directory %s already exists", projectName)
	}

	serverClass := newServerClass
	if serverClass == "" {
		serverClass = strcase.UpperCamelCase(projectName)
	}
	description := newDescription
	if description == "" {
		description = fmt.Sprintf("%s MCP server", projectName)
	}

	generator := scaffold.NewGenerator()
	if err := generator.GenerateProject(scaffold.Config{
		Name:            projectName,
		Description:     description,
		Directory:       projectDir,
		Verbose:         verbose,
		ServerClassName: serverClass,
	}); err != nil {
		return err
	}

	// The rendered package.json carries template defaults; pin the fields
	// that identify the project.
	packageJSON := filepath.Join(projectDir, "package.json")
	if err := scaffold.RewriteJSONFields(packageJSON, map[string]string{
		"name":        strcase.KebabCase(projectName),
		"description": description,
	}); err != nil {
		return err
	}

	manifest := &scaffold.ProjectManifest{
		Name:        projectName,
		Description: description,
		ServerClass: serverClass,
		SourcePath:  docgen.DefaultSourcePath,
		DocsPath:    docgen.DefaultOutputPath,
	}
	if err := scaffold.NewManifestManager(projectDir).Save(manifest); err != nil {
		return fmt.Errorf("failed to write project manifest: %w", err)
	}

	printer.PrintSuccess(fmt.Sprintf("Successfully created project: %s", projectName))
	printConnectionCommand(projectName, projectDir)
	printNextSteps(projectName)
	return nil
}

// printConnectionCommand prints the MCP client configuration pointing at the
// built server, as pretty JSON.
func printConnectionCommand(projectName, projectDir string) {
	type serverEntry struct {
		Command string   `json:"command"`
		Args    []string `json:"args"`
	}
	connection := map[string]map[string]serverEntry{
		"mcpServers": {
			projectName: {
				Command: "node",
				Args:    []string{filepath.Join(projectDir, "dist", "index.js")},
			},
		},
	}

	printer.PrintInfo("\nAdd this to your MCP client configuration:")
	if err := printer.New().PrintJSON(connection); err != nil {
		printer.PrintWarning(fmt.Sprintf("failed to print connection config: %v", err))
	}
}

func printNextSteps(projectName string) {
	fmt.Printf("\n🚀 Next steps:\n")
	fmt.Printf("   1. cd %s\n", projectName)
	fmt.Printf("   2. npm install && npm run build\n")
	fmt.Printf("   3. Register your tools in src/api/index.ts\n")
	fmt.Printf("   4. Generate tool documentation\n")
	fmt.Printf("      mcpforge docs\n")
	fmt.Printf("   5. Review the generated documentation\n")
	fmt.Printf("      mcpforge report\n")
}
