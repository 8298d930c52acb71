package docgen

import (
	"regexp"
)

// The fallback extractor recovers tool call sites and schema parameters from
// raw text with patterns alone. It is pure, never fails, and returns empty
// results rather than errors, so it can always run underneath the
// structural path.

const (
	dqStringPat = `"((?:[^"\\]|\\.)*)"`
	sqStringPat = `'((?:[^'\\]|\\.)*)'`
	// The closing quote must match the opening one.
	stringLitPat = `(?:` + dqStringPat + `|` + sqStringPat + `)`
	// Callback marker: an async function, or a plain arrow function with a
	// parenthesized (possibly destructuring) or bare-identifier parameter.
	callbackHeadPat = `(?:async\b|\([^()]*\)\s*=>|[A-Za-z_$][\w$]*\s*=>)`
	// Non-greedy through the braced schema object to the first closing
	// brace followed by the callback marker; (?s) lets the object span
	// multiple lines.
	callTailPat = `\(\s*` + stringLitPat + `\s*,(?:\s*` + stringLitPat + `\s*,)?\s*(\{.*?\})\s*,\s*` + callbackHeadPat
)

var paramChainRe = regexp.MustCompile(`([A-Za-z_$][\w$]*)\s*:\s*([A-Za-z_$][\w$]*)\s*\.\s*(\w+)\s*\([^()]*\)((?:\s*\.\s*\w+\s*\([^()]*\))*)`)

var (
	optionalModifierRe = regexp.MustCompile(`\.\s*optional\s*\(\s*\)`)
	describeModifierRe = regexp.MustCompile(`\.\s*describe\s*\(\s*` + stringLitPat + `\s*\)`)
	escapeRe           = regexp.MustCompile(`\\(.)`)
)

// patternCall is one call site recovered by the call-boundary pattern.
type patternCall struct {
	Name        string
	Description string
	SchemaText  string
}

// findCallsPattern scans raw text for the literal call head
// `this.<prop>.<method>(` followed by a quoted name, an optional quoted
// description, and a braced object literal, up to the callback marker.
func findCallsPattern(src string, opts Options) []patternCall {
	head := `this\s*\.\s*` + regexp.QuoteMeta(opts.ServerProperty) + `\s*\.\s*` + regexp.QuoteMeta(opts.ToolMethod) + `\s*`
	re := regexp.MustCompile(`(?s)` + head + callTailPat)

	var calls []patternCall
	for _, m := range re.FindAllStringSubmatch(src, -1) {
		calls = append(calls, patternCall{
			Name:        unescapeMatch(firstSubmatch(m[1], m[2])),
			Description: unescapeMatch(firstSubmatch(m[3], m[4])),
			SchemaText:  m[5],
		})
	}
	return calls
}

// extractParamsPattern recovers the parameter list from raw schema-object
// text: `<name>: <ns>.<type>(...)` optionally followed by `.optional()`
// and/or `.describe("...")` in any order. Properties rooted at a different
// namespace are skipped. No matches yields an empty list, never an error.
func extractParamsPattern(schemaText string, opts Options) []ParamRecord {
	params := []ParamRecord{}
	for _, m := range paramChainRe.FindAllStringSubmatch(schemaText, -1) {
		if m[2] != opts.BuilderNamespace {
			continue
		}
		param := ParamRecord{Name: m[1], Type: m[3]}
		tail := m[4]
		if optionalModifierRe.MatchString(tail) {
			param.Optional = true
		}
		if desc := describeModifierRe.FindStringSubmatch(tail); desc != nil {
			param.Description = unescapeMatch(firstSubmatch(desc[1], desc[2]))
		}
		params = append(params, param)
	}
	return params
}

// firstSubmatch returns the first non-empty capture, for patterns built on
// the quote-alternating string literal.
func firstSubmatch(groups ...string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}

func unescapeMatch(s string) string {
	return escapeRe.ReplaceAllString(s, "$1")
}
