package docgen

import (
	"fmt"
)

// CallSite is one located tool-registration call with its logical arguments
// split apart. Schema holds the parsed schema expression when the structural
// path produced one; SchemaText always holds the raw span so the fallback
// extractor can take over per expression.
type CallSite struct {
	Name           string
	HasName        bool
	Description    string
	HasDescription bool
	Schema         Expr
	SchemaText     string
	ArgCount       int
	Offset         int
}

// locateStructural finds tool-registration calls by scanning the token
// stream for a three-level member-access chain rooted at the self-reference
// (`this.<prop>.<method>`) followed by a call, then structurally parses the
// call's argument list. Call sites with fewer than 3 arguments are skipped
// and logged.
func locateStructural(src string, toks []token, opts Options, diag *Diagnostics) []CallSite {
	var sites []CallSite
	for i := 0; i+6 < len(toks); i++ {
		if !matchesCallHead(toks[i:], opts) {
			continue
		}
		p := newParser(src, toks)
		p.pos = i + 5
		args, _, err := p.parseArgs()
		if err != nil {
			diag.emit(EventCallSkipped, "", fmt.Sprintf("failed to parse arguments at offset %d: %v", toks[i].start, err))
			continue
		}
		if len(args) < 3 {
			diag.emit(EventCallSkipped, nameOfArgs(args), fmt.Sprintf("expected at least 3 arguments, found %d", len(args)))
			// The loop increment lands on the token after the call.
			i = p.pos - 1
			continue
		}
		sites = append(sites, newCallSite(src, args, toks[i].start))
		i = p.pos - 1
	}
	return sites
}

// matchesCallHead reports whether the tokens begin exactly with
// `this . <prop> . <method> (`.
func matchesCallHead(toks []token, opts Options) bool {
	return toks[0].kind == tokenIdent && toks[0].text == "this" &&
		isPunctTok(toks[1], ".") &&
		toks[2].kind == tokenIdent && toks[2].text == opts.ServerProperty &&
		isPunctTok(toks[3], ".") &&
		toks[4].kind == tokenIdent && toks[4].text == opts.ToolMethod &&
		isPunctTok(toks[5], "(")
}

func isPunctTok(t token, s string) bool {
	return t.kind == tokenPunct && t.text == s
}

// newCallSite interprets the parsed argument list. The description literal
// is recognized by type, not position: only when the argument immediately
// after the name is itself a string literal. The schema expression is then
// the following argument.
func newCallSite(src string, args []Expr, offset int) CallSite {
	site := CallSite{ArgCount: len(args), Offset: offset, Name: UnknownToolName}
	if lit, ok := args[0].(*StringLit); ok {
		site.Name = lit.Value
		site.HasName = true
	}

	schemaIdx := 1
	if lit, ok := args[1].(*StringLit); ok {
		site.Description = lit.Value
		site.HasDescription = true
		schemaIdx = 2
	}
	if schemaIdx < len(args) {
		site.Schema = args[schemaIdx]
		start, end := args[schemaIdx].Span()
		site.SchemaText = src[start:end]
	}
	return site
}

func nameOfArgs(args []Expr) string {
	if len(args) > 0 {
		if lit, ok := args[0].(*StringLit); ok {
			return lit.Value
		}
	}
	return ""
}

// locatePattern is the fallback locator over raw text. The pattern requires
// name, schema object, and callback marker, so every recovered site has the
// minimum argument count by construction.
func locatePattern(src string, opts Options) []CallSite {
	var sites []CallSite
	for _, call := range findCallsPattern(src, opts) {
		site := CallSite{
			Name:       call.Name,
			HasName:    true,
			SchemaText: call.SchemaText,
			ArgCount:   3,
		}
		if call.Description != "" {
			site.Description = call.Description
			site.HasDescription = true
			site.ArgCount = 4
		}
		sites = append(sites, site)
	}
	return sites
}
