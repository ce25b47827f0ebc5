package query

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
)

// Field is one selected field and its sub-selection.
type Field struct {
	Alias     string
	Name      string
	Selection []Field
}

// Key is the name the field takes in the result.
func (f Field) Key() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// SyntaxError reports a malformed or unsupported query document. Line and
// Column are 1-based and zero when unknown.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Syntax Error: %s (line %d, column %d)", e.Msg, e.Line, e.Column)
	}
	return "Syntax Error: " + e.Msg
}

// Parse reads a single query operation such as
//
//	query SiteURL { site { siteMetadata { siteUrl } } }
//
// The site document is static, so arguments, variables, fragments and
// directives are rejected.
func Parse(text string) ([]Field, error) {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Name: "query", Input: text})
	if gqlErr != nil {
		return nil, syntaxError(gqlErr)
	}
	if len(doc.Fragments) > 0 {
		return nil, errorAt(doc.Fragments[0].Position, "fragments are not supported")
	}
	switch len(doc.Operations) {
	case 0:
		return nil, &SyntaxError{Msg: "document has no query operation"}
	case 1:
	default:
		return nil, errorAt(doc.Operations[1].Position, "document must contain exactly one operation")
	}

	op := doc.Operations[0]
	if op.Operation != ast.Query {
		return nil, errorAt(op.Position, "only query operations are supported, found %s", op.Operation)
	}
	if len(op.VariableDefinitions) > 0 {
		return nil, errorAt(op.Position, "variables are not supported")
	}
	if len(op.Directives) > 0 {
		return nil, errorAt(op.Position, "directives are not supported")
	}
	return convertSelection(op.SelectionSet)
}

func convertSelection(set ast.SelectionSet) ([]Field, error) {
	fields := make([]Field, 0, len(set))
	for _, sel := range set {
		f, ok := sel.(*ast.Field)
		if !ok {
			return nil, errorAt(sel.GetPosition(), "fragments are not supported")
		}
		if len(f.Arguments) > 0 {
			return nil, errorAt(f.Position, "arguments are not supported on field %q", f.Name)
		}
		if len(f.Directives) > 0 {
			return nil, errorAt(f.Position, "directives are not supported on field %q", f.Name)
		}

		out := Field{Name: f.Name}
		// The parser fills Alias with the field name when no alias is given.
		if f.Alias != f.Name {
			out.Alias = f.Alias
		}
		if len(f.SelectionSet) > 0 {
			sub, err := convertSelection(f.SelectionSet)
			if err != nil {
				return nil, err
			}
			out.Selection = sub
		}
		fields = append(fields, out)
	}
	return fields, nil
}

func syntaxError(err error) error {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		return &SyntaxError{Msg: err.Error()}
	}
	out := &SyntaxError{Msg: gqlErr.Message}
	if len(gqlErr.Locations) > 0 {
		out.Line = gqlErr.Locations[0].Line
		out.Column = gqlErr.Locations[0].Column
	}
	return out
}

func errorAt(pos *ast.Position, format string, args ...any) error {
	out := &SyntaxError{Msg: fmt.Sprintf(format, args...)}
	if pos != nil {
		out.Line = pos.Line
		out.Column = pos.Column
	}
	return out
}
