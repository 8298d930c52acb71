package docgen

import (
	"regexp"
	"strings"
)

// Normalization is a light textual pre-pass that removes the typed-syntax
// constructs the expression parser has no use for: interface blocks,
// heritage clauses, generic parameter lists, and declaration/return type
// annotations. It deliberately leaves `key: value` pairs inside braces
// untouched, since those are exactly the object-literal properties the
// analyzer needs to keep intact.
//
// All matching runs against a masked copy of the source in which string and
// comment contents are blanked out, so a keyword inside a literal never
// triggers a rewrite.

var (
	heritageClauseRe = regexp.MustCompile(`\b(?:implements|extends|satisfies)\s+[\w$.,\s]+?(\{)`)
	genericParamsRe  = regexp.MustCompile(`([A-Za-z_$][\w$]*)<[\w$ \t,.|&\[\]]*(?:<[\w$ \t,.|&\[\]]*>)?[\w$ \t,.|&\[\]]*>`)
	returnTypeRe     = regexp.MustCompile(`\)\s*:\s*[\w$.\[\]|&\s]+?\s*(\{|=>)`)
	fieldTypeRe      = regexp.MustCompile(`\b(private|public|protected|readonly)\s+([\w$]+)\s*:\s*[^;=\n]+`)
	declTypeRe       = regexp.MustCompile(`\b(const|let|var)\s+([\w$]+)\s*:\s*[^;=\n]+?(=)`)
)

var normalizeRules = []struct {
	re   *regexp.Regexp
	tmpl string
}{
	{heritageClauseRe, "$1"},
	{genericParamsRe, "$1"},
	{returnTypeRe, ") $1"},
	{fieldTypeRe, "$1 $2"},
	{declTypeRe, "$1 $2 $3"},
}

// normalizeSource strips typed-syntax constructs so the plain-syntax parser
// accepts the file. The pass is purely textual and best effort; anything it
// misses is handled by the fallback extraction path.
func normalizeSource(src string) string {
	out := stripInterfaceBlocks(src)
	for _, rule := range normalizeRules {
		out = replaceOutsideLiterals(out, rule.re, rule.tmpl)
	}
	return out
}

// replaceOutsideLiterals matches the pattern against the masked source and
// splices the expansions into the real one. Captured groups are idents and
// punctuation, never literal contents, so expanding from the masked copy is
// safe.
func replaceOutsideLiterals(src string, re *regexp.Regexp, tmpl string) string {
	masked := maskLiterals(src)
	matches := re.FindAllStringSubmatchIndex(masked, -1)
	if matches == nil {
		return src
	}
	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(src[last:m[0]])
		sb.Write(re.ExpandString(nil, tmpl, masked, m))
		last = m[1]
	}
	sb.WriteString(src[last:])
	return sb.String()
}

// maskLiterals returns a copy of src with the contents of string literals
// and comments replaced by spaces. Length and offsets are preserved, so
// positions found in the masked copy are valid in the original; newlines are
// kept so line-sensitive patterns behave the same.
func maskLiterals(src string) string {
	b := []byte(src)
	i := 0
	for i < len(b) {
		switch c := b[i]; {
		case c == '/' && i+1 < len(b) && b[i+1] == '/':
			for i < len(b) && b[i] != '\n' {
				b[i] = ' '
				i++
			}
		case c == '/' && i+1 < len(b) && b[i+1] == '*':
			b[i], b[i+1] = ' ', ' '
			i += 2
			for i < len(b) {
				if b[i] == '*' && i+1 < len(b) && b[i+1] == '/' {
					b[i], b[i+1] = ' ', ' '
					i += 2
					break
				}
				if b[i] != '\n' {
					b[i] = ' '
				}
				i++
			}
		case c == '"' || c == '\'' || c == '`':
			quote := c
			i++
			for i < len(b) {
				if b[i] == '\\' && i+1 < len(b) {
					b[i], b[i+1] = ' ', ' '
					i += 2
					continue
				}
				if b[i] == quote {
					i++
					break
				}
				if quote != '`' && b[i] == '\n' {
					break
				}
				if b[i] != '\n' {
					b[i] = ' '
				}
				i++
			}
		default:
			i++
		}
	}
	return string(b)
}

// stripInterfaceBlocks removes `interface Name { ... }` declarations,
// including nested braces. The keyword search and brace matching run over
// the masked copy; the emitted text comes from the original.
func stripInterfaceBlocks(src string) string {
	masked := maskLiterals(src)
	var sb strings.Builder
	i := 0
	for {
		idx := indexInterface(masked[i:])
		if idx < 0 {
			sb.WriteString(src[i:])
			return sb.String()
		}
		sb.WriteString(src[i : i+idx])
		end := interfaceBlockEnd(masked[i+idx:])
		if end < 0 {
			sb.WriteString(src[i+idx:])
			return sb.String()
		}
		i += idx + end
	}
}

func indexInterface(src string) int {
	offset := 0
	for {
		idx := strings.Index(src[offset:], "interface")
		if idx < 0 {
			return -1
		}
		at := offset + idx
		beforeOK := at == 0 || !isIdentPart(rune(src[at-1]))
		afterAt := at + len("interface")
		afterOK := afterAt >= len(src) || !isIdentPart(rune(src[afterAt]))
		if beforeOK && afterOK {
			return at
		}
		offset = at + len("interface")
	}
}

// interfaceBlockEnd returns the length of the interface declaration starting
// at src[0], through its closing brace, or -1 if the block never closes.
func interfaceBlockEnd(src string) int {
	open := strings.IndexByte(src, '{')
	if open < 0 {
		return -1
	}
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}
