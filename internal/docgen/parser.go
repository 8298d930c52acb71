package docgen

import (
	"fmt"
)

// parser is a recursive-descent expression parser over the token stream. It
// is deliberately tolerant: argument positions it cannot model become
// OpaqueExpr spans instead of parse errors, so a single exotic construct in
// one argument does not fail the surrounding call site.
type parser struct {
	src  string
	toks []token
	pos  int
}

func newParser(src string, toks []token) *parser {
	return &parser{src: src, toks: toks}
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) isPunct(s string) bool {
	t := p.peek()
	return t.kind == tokenPunct && t.text == s
}

func (p *parser) expectPunct(s string) (token, error) {
	t := p.peek()
	if t.kind != tokenPunct || t.text != s {
		return t, fmt.Errorf("expected %q at offset %d, found %q", s, t.start, t.text)
	}
	return p.next(), nil
}

// parseExpr parses a primary expression followed by any number of member
// accesses and calls. This covers the full builder-chain grammar the
// analyzer consumes.
func (p *parser) parseExpr() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.isPunct("."):
			p.next()
			prop := p.peek()
			if prop.kind != tokenIdent {
				return nil, fmt.Errorf("expected property name at offset %d", prop.start)
			}
			p.next()
			start, _ := expr.Span()
			expr = &MemberExpr{Obj: expr, Prop: prop.text, Start: start, End: prop.end}
		case p.isPunct("("):
			args, end, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			start, _ := expr.Span()
			expr = &CallExpr{Callee: expr, Args: args, Start: start, End: end}
		default:
			return expr, nil
		}
	}
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.peek()
	switch t.kind {
	case tokenIdent:
		p.next()
		if t.text == "this" {
			return &ThisExpr{Start: t.start, End: t.end}, nil
		}
		return &Ident{Name: t.text, Start: t.start, End: t.end}, nil
	case tokenString:
		p.next()
		return &StringLit{Value: t.text, Start: t.start, End: t.end}, nil
	case tokenNumber:
		p.next()
		return &NumberLit{Text: t.text, Start: t.start, End: t.end}, nil
	case tokenPunct:
		if t.text == "{" {
			return p.parseObject()
		}
	}
	return nil, fmt.Errorf("unexpected token %q at offset %d", t.text, t.start)
}

// parseArgs parses a parenthesized argument list. Each argument is parsed
// structurally when possible and captured as an opaque span otherwise.
func (p *parser) parseArgs() ([]Expr, int, error) {
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, 0, err
	}
	var args []Expr
	for {
		if p.isPunct(")") {
			end := p.next().end
			return args, end, nil
		}
		if p.peek().kind == tokenEOF {
			return nil, 0, fmt.Errorf("unterminated argument list at offset %d", open.start)
		}
		arg := p.parseTolerant()
		args = append(args, arg)
		if p.isPunct(",") {
			p.next()
			continue
		}
		if !p.isPunct(")") {
			// parseTolerant leaves the stream at a separator; anything else
			// means the argument span logic is out of sync.
			return nil, 0, fmt.Errorf("expected ',' or ')' at offset %d", p.peek().start)
		}
	}
}

// parseTolerant attempts a structural parse of one argument or object value.
// If the expression grammar does not cover it, the balanced span up to the
// next top-level separator is returned as an OpaqueExpr.
func (p *parser) parseTolerant() Expr {
	mark := p.pos
	expr, err := p.parseExpr()
	if err == nil && p.atSeparator() {
		return expr
	}
	p.pos = mark
	return p.scanOpaque()
}

// atSeparator reports whether the stream sits at a boundary where an
// argument or property value may legally end.
func (p *parser) atSeparator() bool {
	t := p.peek()
	if t.kind == tokenEOF {
		return true
	}
	if t.kind != tokenPunct {
		return false
	}
	switch t.text {
	case ",", ")", "}", "]":
		return true
	}
	return false
}

// scanOpaque consumes a balanced token run up to the next separator at the
// current nesting depth and returns it as an opaque span.
func (p *parser) scanOpaque() Expr {
	start := p.peek().start
	end := start
	depth := 0
	for {
		t := p.peek()
		if t.kind == tokenEOF {
			break
		}
		if t.kind == tokenPunct {
			switch t.text {
			case "(", "{", "[":
				depth++
			case ")", "}", "]":
				if depth == 0 {
					return &OpaqueExpr{Text: p.src[start:end], Start: start, End: end}
				}
				depth--
			case ",":
				if depth == 0 {
					return &OpaqueExpr{Text: p.src[start:end], Start: start, End: end}
				}
			}
		}
		end = t.end
		p.next()
	}
	return &OpaqueExpr{Text: p.src[start:end], Start: start, End: end}
}

// parseObject parses a braced object literal. Shorthand properties and
// spreads degrade to opaque values rather than failing.
func (p *parser) parseObject() (Expr, error) {
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	obj := &ObjectLit{Start: open.start}
	for {
		if p.isPunct("}") {
			obj.End = p.next().end
			return obj, nil
		}
		if p.peek().kind == tokenEOF {
			return nil, fmt.Errorf("unterminated object literal at offset %d", open.start)
		}
		prop, err := p.parseProperty()
		if err != nil {
			return nil, err
		}
		obj.Props = append(obj.Props, prop)
		if p.isPunct(",") {
			p.next()
		}
	}
}

func (p *parser) parseProperty() (*Property, error) {
	key := p.peek()
	if key.kind != tokenIdent && key.kind != tokenString {
		// Spread or computed key; record the balanced span under an empty
		// key so property order is preserved.
		value := p.scanOpaque()
		start, end := value.Span()
		return &Property{Value: value, Start: start, End: end}, nil
	}
	p.next()
	prop := &Property{Key: key.text, Start: key.start}
	if !p.isPunct(":") {
		// Shorthand `{ name }` property.
		prop.Value = &Ident{Name: key.text, Start: key.start, End: key.end}
		prop.End = key.end
		return prop, nil
	}
	p.next()
	prop.Value = p.parseTolerant()
	_, prop.End = prop.Value.Span()
	return prop, nil
}

// parseExpression parses a standalone expression from raw text, requiring
// the whole input to be consumed. This is what the analyzer uses to parse a
// schema object literal in isolation.
func parseExpression(text string) (Expr, error) {
	toks, err := lexAll(text)
	if err != nil {
		return nil, err
	}
	if err := checkBalance(toks); err != nil {
		return nil, err
	}
	p := newParser(text, toks)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenEOF {
		return nil, fmt.Errorf("trailing input at offset %d", p.peek().start)
	}
	return expr, nil
}
