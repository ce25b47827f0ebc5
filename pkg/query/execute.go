package query

import (
	"fmt"
	"strings"
)

// Result is the outcome of one query: data on success, messages on failure.
type Result struct {
	Data   map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Errors []string       `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Execute parses text and projects the selection over doc. Problems are
// reported in Result.Errors; Data is nil whenever Errors is non-empty.
func Execute(doc map[string]any, text string) Result {
	fields, err := Parse(text)
	if err != nil {
		return Result{Errors: []string{err.Error()}}
	}
	var errs []string
	data := project(doc, fields, nil, &errs)
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Data: data}
}

func project(obj map[string]any, fields []Field, path []string, errs *[]string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		fieldPath := append(append([]string(nil), path...), f.Name)
		value, ok := obj[f.Name]
		if !ok {
			*errs = append(*errs, fmt.Sprintf("Cannot query field %q on %q.", f.Name, typeName(path)))
			continue
		}
		out[f.Key()] = projectValue(value, f, fieldPath, errs)
	}
	return out
}

func projectValue(value any, f Field, path []string, errs *[]string) any {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case map[string]any:
		if len(f.Selection) == 0 {
			*errs = append(*errs, fmt.Sprintf("Field %q must have a selection of subfields.", strings.Join(path, ".")))
			return nil
		}
		return project(v, f.Selection, path, errs)
	case []any:
		items := make([]any, 0, len(v))
		for _, item := range v {
			items = append(items, projectValue(item, f, path, errs))
		}
		return items
	default:
		if len(f.Selection) > 0 {
			*errs = append(*errs, fmt.Sprintf("Field %q must not have a selection since it is a scalar.", strings.Join(path, ".")))
			return nil
		}
		return v
	}
}

func typeName(path []string) string {
	if len(path) == 0 {
		return "Query"
	}
	return strings.Join(path, ".")
}

// Lookup walks a dotted path through nested result data.
func Lookup(data map[string]any, dotted string) (any, bool) {
	var cur any = data
	for _, key := range strings.Split(dotted, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
