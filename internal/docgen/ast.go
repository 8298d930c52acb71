package docgen

// The parser models only the node kinds the documentation generator actually
// consumes: call expressions, member access, identifiers, string literals,
// object literals with their properties, and the self-reference receiver.
// Anything else (callbacks, arrays, arithmetic) is captured as an opaque
// source span so a single unsupported construct never sinks the whole parse.

// Expr is a parsed expression node. Span reports the byte offsets of the
// node's raw text in the normalized source.
type Expr interface {
	Span() (start, end int)
}

// Ident is a bare identifier reference.
type Ident struct {
	Name       string
	Start, End int
}

// ThisExpr is the self-reference receiver.
type ThisExpr struct {
	Start, End int
}

// StringLit is a single- or double-quoted string literal. Value holds the
// unescaped contents.
type StringLit struct {
	Value      string
	Start, End int
}

// NumberLit is a numeric literal, kept as raw text.
type NumberLit struct {
	Text       string
	Start, End int
}

// MemberExpr is a property access such as `obj.prop`.
type MemberExpr struct {
	Obj        Expr
	Prop       string
	Start, End int
}

// CallExpr is a call such as `callee(arg, ...)`.
type CallExpr struct {
	Callee     Expr
	Args       []Expr
	Start, End int
}

// ObjectLit is a braced object literal.
type ObjectLit struct {
	Props      []*Property
	Start, End int
}

// Property is a single `key: value` entry of an object literal.
type Property struct {
	Key        string
	Value      Expr
	Start, End int
}

// OpaqueExpr is a balanced source span the parser did not model
// structurally, e.g. an async callback argument.
type OpaqueExpr struct {
	Text       string
	Start, End int
}

func (e *Ident) Span() (int, int)      { return e.Start, e.End }
func (e *ThisExpr) Span() (int, int)   { return e.Start, e.End }
func (e *StringLit) Span() (int, int)  { return e.Start, e.End }
func (e *NumberLit) Span() (int, int)  { return e.Start, e.End }
func (e *MemberExpr) Span() (int, int) { return e.Start, e.End }
func (e *CallExpr) Span() (int, int)   { return e.Start, e.End }
func (e *ObjectLit) Span() (int, int)  { return e.Start, e.End }
func (e *Property) Span() (int, int)   { return e.Start, e.End }
func (e *OpaqueExpr) Span() (int, int) { return e.Start, e.End }
