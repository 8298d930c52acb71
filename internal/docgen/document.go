package docgen

import (
	"encoding/json"
	"fmt"
)

// UnknownToolName is the sentinel used when a call site's name literal
// cannot be recovered. Tool names are never empty.
const UnknownToolName = "unknownTool"

// UnknownType is the sentinel type tag for parameters whose builder chain
// could not be resolved.
const UnknownType = "unknown"

// DerivedExportName is the key under which the assembler mirrors the primary
// entry to represent the wrapping entry point.
const DerivedExportName = "default"

// ParamRecord describes one schema-object property of a tool.
type ParamRecord struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Optional    bool   `json:"optional"`
}

// ReturnDescriptor describes a tool's return value. It is synthesized with a
// fixed policy rather than inferred from the callback.
type ReturnDescriptor struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ToolRecord is one discovered tool-registration call site.
type ToolRecord struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Params      []ParamRecord     `json:"params"`
	Returns     *ReturnDescriptor `json:"returns"`
}

// EntrypointDocument documents one exported entry point and its methods.
type EntrypointDocument struct {
	ExportedAs  string         `json:"exported_as"`
	Description *string        `json:"description"`
	Methods     []ToolRecord   `json:"methods"`
	Statics     map[string]any `json:"statics"`
}

// Document maps logical export names to their documentation.
type Document map[string]*EntrypointDocument

// NewToolRecord builds a ToolRecord with the fixed return policy applied.
// An empty name is replaced with the sentinel; params may be nil.
func NewToolRecord(name, description string, params []ParamRecord) ToolRecord {
	if name == "" {
		name = UnknownToolName
	}
	if description == "" {
		description = DefaultToolDescription(name)
	}
	if params == nil {
		params = []ParamRecord{}
	}
	return ToolRecord{
		Name:        name,
		Description: description,
		Params:      params,
		Returns: &ReturnDescriptor{
			Type:        "string",
			Description: fmt.Sprintf("Result from tool %q", name),
		},
	}
}

// DefaultToolDescription is the description synthesized when a call site
// carries no explicit description literal.
func DefaultToolDescription(name string) string {
	return fmt.Sprintf("Tool %q", name)
}

// Assemble builds the output document for one export name from the ordered
// tool list. Description may be empty, in which case the entry's description
// is null.
func Assemble(exportName, description string, tools []ToolRecord) Document {
	entry := &EntrypointDocument{
		ExportedAs: exportName,
		Methods:    tools,
		Statics:    map[string]any{},
	}
	if entry.Methods == nil {
		entry.Methods = []ToolRecord{}
	}
	if description != "" {
		entry.Description = &description
	}
	return Document{exportName: entry}
}

// AddDerivedEntry mirrors the named entry's methods under the derived export
// key, representing the wrapper entry point. The operation is idempotent:
// an existing derived entry is left untouched.
func (d Document) AddDerivedEntry(from string) {
	if _, ok := d[DerivedExportName]; ok {
		return
	}
	src, ok := d[from]
	if !ok {
		return
	}
	derived := &EntrypointDocument{
		ExportedAs:  DerivedExportName,
		Description: src.Description,
		Methods:     src.Methods,
		Statics:     map[string]any{},
	}
	d[DerivedExportName] = derived
}

// Marshal renders the document as pretty-printed JSON with stable two-space
// indentation. Key order is deterministic, so unchanged input yields
// byte-identical output.
func (d Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return append(data, '\n'), nil
}

// LoadDocument parses a previously written documentation file.
func LoadDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse documentation file: %w", err)
	}
	return doc, nil
}
