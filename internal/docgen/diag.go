package docgen

import "fmt"

// EventKind identifies a diagnostic event emitted while extracting tools.
type EventKind string

const (
	// EventStructuralParse records that the whole-file structural parse
	// succeeded.
	EventStructuralParse EventKind = "structural-parse"
	// EventFileFallback records that the whole file fell back to
	// text-pattern extraction.
	EventFileFallback EventKind = "file-fallback"
	// EventSchemaFallback records that one tool's schema expression fell
	// back to text-pattern extraction.
	EventSchemaFallback EventKind = "schema-fallback"
	// EventCallSkipped records a malformed call site that was skipped.
	EventCallSkipped EventKind = "call-skipped"
	// EventToolDiscovered records a successfully extracted tool.
	EventToolDiscovered EventKind = "tool-discovered"
	// EventNoTools records that neither extraction path matched anything.
	EventNoTools EventKind = "no-tools"
)

// Event is one ordered diagnostic record. The extraction pipeline stays free
// of console output; callers decide how to render the stream.
type Event struct {
	Kind   EventKind
	Tool   string
	Detail string
}

func (e Event) String() string {
	switch {
	case e.Tool != "" && e.Detail != "":
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Tool, e.Detail)
	case e.Tool != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Tool)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	default:
		return string(e.Kind)
	}
}

// Diagnostics accumulates events in emission order. A nil receiver discards
// events so pure helpers can run without a sink.
type Diagnostics struct {
	events []Event
}

func (d *Diagnostics) emit(kind EventKind, tool, detail string) {
	if d == nil {
		return
	}
	d.events = append(d.events, Event{Kind: kind, Tool: tool, Detail: detail})
}

// Events returns the recorded events in order.
func (d *Diagnostics) Events() []Event {
	if d == nil {
		return nil
	}
	return d.events
}

// UsedFallback reports whether the whole file was processed by the
// text-pattern path.
func (d *Diagnostics) UsedFallback() bool {
	for _, e := range d.Events() {
		if e.Kind == EventFileFallback {
			return true
		}
	}
	return false
}
