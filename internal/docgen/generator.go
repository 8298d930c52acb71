package docgen

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default locations match the layout produced by the scaffolder.
const (
	DefaultSourcePath = "src/api/index.ts"
	DefaultOutputPath = "dist/docs.json"
	DefaultExportName = "McpServer"
)

// Recognized names of the tool-registration call pattern and the
// schema-builder namespace.
const (
	defaultServerProperty   = "server"
	defaultToolMethod       = "tool"
	defaultBuilderNamespace = "z"
)

// Options configures one generator run.
type Options struct {
	// SourcePath is the source file to scan.
	SourcePath string
	// OutputPath is where the JSON document is written. Empty disables the
	// write.
	OutputPath string
	// ExportName is the primary export key of the output document.
	ExportName string
	// ExportDescription documents the primary entry point; empty yields a
	// null description.
	ExportDescription string

	// ServerProperty and ToolMethod name the recognized registration call
	// `this.<ServerProperty>.<ToolMethod>(...)`.
	ServerProperty string
	ToolMethod     string
	// BuilderNamespace is the recognized schema-builder identifier.
	BuilderNamespace string
}

func (o Options) withDefaults() Options {
	if o.SourcePath == "" {
		o.SourcePath = DefaultSourcePath
	}
	if o.ExportName == "" {
		o.ExportName = DefaultExportName
	}
	if o.ServerProperty == "" {
		o.ServerProperty = defaultServerProperty
	}
	if o.ToolMethod == "" {
		o.ToolMethod = defaultToolMethod
	}
	if o.BuilderNamespace == "" {
		o.BuilderNamespace = defaultBuilderNamespace
	}
	return o
}

// Result is the outcome of one generator run.
type Result struct {
	Document Document
	Tools    []ToolRecord
	Events   []Event
	// Fallback reports that the whole file was processed by the
	// text-pattern path.
	Fallback bool
}

// Run reads the source file, extracts its tool registrations, assembles the
// documentation document, and writes it to the output path. Only an
// unreadable source file is fatal; every smaller failure is recovered
// locally and surfaced through the diagnostic events.
func Run(opts Options) (*Result, error) {
	opts = opts.withDefaults()

	data, err := os.ReadFile(opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %s: %w", opts.SourcePath, err)
	}

	diag := &Diagnostics{}
	tools := Extract(string(data), opts, diag)

	doc := Assemble(opts.ExportName, opts.ExportDescription, tools)
	doc.AddDerivedEntry(opts.ExportName)

	if opts.OutputPath != "" {
		if err := WriteDocument(doc, opts.OutputPath); err != nil {
			return nil, err
		}
	}

	return &Result{
		Document: doc,
		Tools:    tools,
		Events:   diag.Events(),
		Fallback: diag.UsedFallback(),
	}, nil
}

// Extract runs the parse-or-fallback pipeline over source text and returns
// the ordered tool records. The function is pure apart from the diagnostic
// sink, which may be nil.
func Extract(src string, opts Options, diag *Diagnostics) []ToolRecord {
	opts = opts.withDefaults()
	normalized := normalizeSource(src)

	sites := locate(src, normalized, opts, diag)

	tools := make([]ToolRecord, 0, len(sites))
	for _, site := range sites {
		params := analyzeParams(site, opts, diag)
		record := NewToolRecord(site.Name, site.Description, params)
		tools = append(tools, record)
		diag.emit(EventToolDiscovered, record.Name, fmt.Sprintf("%d parameters", len(params)))
	}

	if len(tools) == 0 {
		diag.emit(EventNoTools, "", "no tool-registration calls matched either extraction strategy")
	}
	return tools
}

// locate attempts the whole-file structural parse over the normalized text
// and falls back to the call-boundary text pattern when lexing or delimiter
// balance fails. The pattern scan runs over the original text; normalization
// exists only for the structural parser.
func locate(raw, normalized string, opts Options, diag *Diagnostics) []CallSite {
	toks, err := lexAll(normalized)
	if err == nil {
		err = checkBalance(toks)
	}
	if err != nil {
		diag.emit(EventFileFallback, "", err.Error())
		return locatePattern(raw, opts)
	}
	diag.emit(EventStructuralParse, "", "")
	return locateStructural(normalized, toks, opts, diag)
}

// WriteDocument serializes the document and writes it to path, creating the
// destination directory as needed.
func WriteDocument(doc Document, path string) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
