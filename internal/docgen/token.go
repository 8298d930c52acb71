package docgen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenString
	tokenNumber
	tokenPunct
)

type token struct {
	kind tokenKind
	// raw text for idents, numbers, and punctuation; unescaped value for
	// strings
	text string
	// byte offsets into the source
	start int
	end   int
}

// lexAll tokenizes the whole source. Comments and whitespace are dropped.
// An unterminated string or block comment is a structural failure and
// reported as an error.
func lexAll(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			nl := strings.IndexByte(src[i:], '\n')
			if nl < 0 {
				i = len(src)
			} else {
				i += nl + 1
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return nil, fmt.Errorf("unterminated block comment at offset %d", i)
			}
			i += end + 4
		case c == '"' || c == '\'':
			val, next, err := lexString(src, i, c)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokenString, text: val, start: i, end: next})
			i = next
		case c == '`':
			next, err := lexTemplate(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokenString, text: src[i+1 : next-1], start: i, end: next})
			i = next
		case isIdentStart(rune(c)) || c >= utf8.RuneSelf:
			start := i
			for i < len(src) {
				r, size := utf8.DecodeRuneInString(src[i:])
				if !isIdentPart(r) {
					break
				}
				i += size
			}
			toks = append(toks, token{kind: tokenIdent, text: src[start:i], start: start, end: i})
		case c >= '0' && c <= '9':
			start := i
			for i < len(src) && (isDigitPart(src[i])) {
				i++
			}
			toks = append(toks, token{kind: tokenNumber, text: src[start:i], start: start, end: i})
		default:
			toks = append(toks, token{kind: tokenPunct, text: string(c), start: i, end: i + 1})
			i++
		}
	}
	toks = append(toks, token{kind: tokenEOF, start: len(src), end: len(src)})
	return toks, nil
}

func lexString(src string, start int, quote byte) (value string, next int, err error) {
	var sb strings.Builder
	i := start + 1
	for i < len(src) {
		c := src[i]
		switch c {
		case quote:
			return sb.String(), i + 1, nil
		case '\\':
			if i+1 >= len(src) {
				return "", 0, fmt.Errorf("unterminated string literal at offset %d", start)
			}
			sb.WriteByte(unescape(src[i+1]))
			i += 2
		case '\n':
			return "", 0, fmt.Errorf("unterminated string literal at offset %d", start)
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated string literal at offset %d", start)
}

// lexTemplate scans a backquoted template literal. Interpolation segments are
// kept verbatim; the generator never reads template contents structurally.
func lexTemplate(src string, start int) (next int, err error) {
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '`':
			return i + 1, nil
		case '\\':
			i += 2
		default:
			i++
		}
	}
	return 0, fmt.Errorf("unterminated template literal at offset %d", start)
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isDigitPart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == 'x' || c == 'e' ||
		(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == '_'
}

// checkBalance verifies that (), {}, and [] delimiters nest correctly across
// the token stream. A mismatch fails the whole-file structural parse.
func checkBalance(toks []token) error {
	var stack []byte
	for _, t := range toks {
		if t.kind != tokenPunct {
			continue
		}
		switch t.text {
		case "(", "{", "[":
			stack = append(stack, t.text[0])
		case ")", "}", "]":
			if len(stack) == 0 {
				return fmt.Errorf("unbalanced %q at offset %d", t.text, t.start)
			}
			open := stack[len(stack)-1]
			if !matchesDelim(open, t.text[0]) {
				return fmt.Errorf("mismatched %q at offset %d", t.text, t.start)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		return fmt.Errorf("unclosed %q delimiter", string(stack[len(stack)-1]))
	}
	return nil
}

func matchesDelim(open, close byte) bool {
	switch open {
	case '(':
		return close == ')'
	case '{':
		return close == '}'
	case '[':
		return close == ']'
	}
	return false
}
