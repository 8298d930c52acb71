package docgen

import "errors"

// The schema analyzer walks a builder-pattern call chain such as
// `z.number().describe("...").optional()` from the outermost call inward.
// Modifier calls are recognized by name; the innermost call whose callee
// object is the builder namespace supplies the base type tag. Unrecognized
// chain segments are ignored so the analyzer stays forward compatible with
// builder methods it has never seen.

const (
	optionalModifier = "optional"
	describeModifier = "describe"
)

// analyzeParams extracts the ordered parameter list for one call site. The
// structural result is preferred; a schema expression that resists
// structural parsing degrades to the text-pattern extractor for that one
// tool only.
func analyzeParams(site CallSite, opts Options, diag *Diagnostics) []ParamRecord {
	if obj, ok := site.Schema.(*ObjectLit); ok {
		return analyzeObject(obj, opts)
	}
	if params, err := extractParamsStructural(site.SchemaText, opts); err == nil {
		return params
	} else {
		diag.emit(EventSchemaFallback, site.Name, err.Error())
	}
	return extractParamsPattern(site.SchemaText, opts)
}

// extractParamsStructural parses raw schema-object text in isolation and
// analyzes it. The parser is expression rooted, so the object literal needs
// no assignment wrapper to be independently parseable.
func extractParamsStructural(schemaText string, opts Options) ([]ParamRecord, error) {
	expr, err := parseExpression(schemaText)
	if err != nil {
		return nil, err
	}
	obj, ok := expr.(*ObjectLit)
	if !ok {
		return nil, errNotObject
	}
	return analyzeObject(obj, opts), nil
}

var errNotObject = errors.New("schema expression is not an object literal")

// analyzeObject produces one ParamRecord per own property, preserving
// source order.
func analyzeObject(obj *ObjectLit, opts Options) []ParamRecord {
	params := []ParamRecord{}
	for _, prop := range obj.Props {
		if prop.Key == "" {
			// Spread or computed property; nothing to document.
			continue
		}
		param := ParamRecord{Name: prop.Key, Type: UnknownType}
		analyzeChain(prop.Value, opts, &param)
		params = append(params, param)
	}
	return params
}

// analyzeChain walks the chained method calls from outermost to innermost.
// `optional` anywhere in the chain marks the parameter optional regardless
// of modifier order; `describe` with a string-literal argument attaches the
// description. The walk ends at the call whose callee object is the builder
// namespace identifier, which names the base type.
func analyzeChain(expr Expr, opts Options, param *ParamRecord) {
	cur := expr
	for {
		call, ok := cur.(*CallExpr)
		if !ok {
			return
		}
		member, ok := call.Callee.(*MemberExpr)
		if !ok {
			return
		}
		if ident, ok := member.Obj.(*Ident); ok && ident.Name == opts.BuilderNamespace {
			param.Type = member.Prop
			return
		}
		switch member.Prop {
		case optionalModifier:
			param.Optional = true
		case describeModifier:
			if len(call.Args) > 0 {
				if lit, ok := call.Args[0].(*StringLit); ok {
					param.Description = lit.Value
				}
			}
		}
		cur = member.Obj
	}
}
