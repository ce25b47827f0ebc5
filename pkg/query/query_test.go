package query

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const siteURLQuery = `{
  site {
    siteMetadata {
      siteUrl
    }
  }
}`

func testDocument() map[string]any {
	return map[string]any{
		"site": map[string]any{
			"siteMetadata": map[string]any{
				"siteUrl": "https://www.test.com",
				"title":   "Test",
				"authors": []any{
					map[string]any{"name": "a"},
					map[string]any{"name": "b"},
				},
				"description": nil,
			},
		},
	}
}

func TestParse(t *testing.T) {
	fields, err := Parse("query SiteURL {\n  # comment\n  site { meta: siteMetadata { siteUrl, title } }\n}")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []Field{{
		Name: "site",
		Selection: []Field{{
			Alias:     "meta",
			Name:      "siteMetadata",
			Selection: []Field{{Name: "siteUrl"}, {Name: "title"}},
		}},
	}}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("Parse() = %#v, want %#v", fields, want)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantLine int
	}{
		{name: "empty", input: ""},
		{name: "unclosed", input: "{ site { siteUrl }", wantLine: 1},
		{name: "empty selection", input: "{ }", wantLine: 1},
		{name: "trailing input", input: "{ site } }", wantLine: 1},
		{name: "bad field", input: "{ site { 1x } }", wantLine: 1},
		{name: "mutation", input: "mutation { site }", want: "only query operations are supported", wantLine: 1},
		{name: "two operations", input: "query A { site }\nquery B { site }", want: "exactly one operation", wantLine: 2},
		{name: "arguments", input: "{ site(id: 1) { siteUrl } }", want: "arguments are not supported", wantLine: 1},
		{name: "variables", input: "query Q($id: ID) { site }", want: "variables are not supported", wantLine: 1},
		{name: "inline fragment", input: "{ site { ... on Site { siteUrl } } }", want: "fragments are not supported", wantLine: 1},
		{name: "fragment definition", input: "{ site { ...F } }\nfragment F on Site { siteUrl }", want: "fragments are not supported"},
		{name: "directive", input: "{ site @skip(if: true) { siteUrl } }", want: "directives are not supported", wantLine: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			if err == nil {
				t.Fatalf("expected syntax error")
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if !strings.HasPrefix(err.Error(), "Syntax Error: ") {
				t.Fatalf("expected Syntax Error prefix, got %v", err)
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
			if tc.wantLine > 0 && syntaxErr.Line != tc.wantLine {
				t.Fatalf("expected line %d, got %d (%v)", tc.wantLine, syntaxErr.Line, err)
			}
		})
	}
}

func TestParseDefaultShapes(t *testing.T) {
	for _, input := range []string{
		siteURLQuery,
		"query { site { siteMetadata { siteUrl } } }",
		"{ site { siteMetadata { siteUrl, } } }",
	} {
		fields, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		if len(fields) != 1 || fields[0].Key() != "site" || fields[0].Selection[0].Selection[0].Name != "siteUrl" {
			t.Fatalf("Parse(%q) = %#v", input, fields)
		}
	}
}

func TestExecuteProjectsSelection(t *testing.T) {
	res := Execute(testDocument(), siteURLQuery)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	want := map[string]any{
		"site": map[string]any{
			"siteMetadata": map[string]any{"siteUrl": "https://www.test.com"},
		},
	}
	if !reflect.DeepEqual(res.Data, want) {
		t.Fatalf("Execute() data = %#v, want %#v", res.Data, want)
	}

	got, ok := Lookup(res.Data, "site.siteMetadata.siteUrl")
	if !ok || got != "https://www.test.com" {
		t.Fatalf("Lookup() = %v, %v", got, ok)
	}
}

func TestExecuteListsAndNulls(t *testing.T) {
	res := Execute(testDocument(), "{ site { siteMetadata { description authors { name } } } }")
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	meta, _ := Lookup(res.Data, "site.siteMetadata")
	m := meta.(map[string]any)
	if m["description"] != nil {
		t.Fatalf("expected nil description, got %#v", m["description"])
	}
	authors := m["authors"].([]any)
	if len(authors) != 2 || authors[1].(map[string]any)["name"] != "b" {
		t.Fatalf("unexpected authors: %#v", authors)
	}
}

func TestExecuteReportsErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "unknown fields",
			query: "{ site { siteMetadata { siteUrl, foo, bar } } }",
			want: []string{
				`Cannot query field "foo" on "site.siteMetadata".`,
				`Cannot query field "bar" on "site.siteMetadata".`,
			},
		},
		{
			name:  "unknown root",
			query: "{ allPages { id } }",
			want:  []string{`Cannot query field "allPages" on "Query".`},
		},
		{
			name:  "object without selection",
			query: "{ site }",
			want:  []string{`Field "site" must have a selection of subfields.`},
		},
		{
			name:  "scalar with selection",
			query: "{ site { siteMetadata { siteUrl { host } } } }",
			want:  []string{`Field "site.siteMetadata.siteUrl" must not have a selection since it is a scalar.`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Execute(testDocument(), tc.query)
			if res.Data != nil {
				t.Fatalf("expected nil data on error, got %#v", res.Data)
			}
			if !reflect.DeepEqual(res.Errors, tc.want) {
				t.Fatalf("Execute() errors = %#v, want %#v", res.Errors, tc.want)
			}
		})
	}
}

func TestExecuteSyntaxErrorBecomesResultError(t *testing.T) {
	res := Execute(testDocument(), "{ site {")
	if len(res.Errors) != 1 || !strings.HasPrefix(res.Errors[0], "Syntax Error:") {
		t.Fatalf("expected one syntax error, got %#v", res.Errors)
	}
}

func TestLookupMissingPath(t *testing.T) {
	if _, ok := Lookup(map[string]any{"site": "x"}, "site.siteMetadata"); ok {
		t.Fatalf("expected lookup through scalar to fail")
	}
	if _, ok := Lookup(nil, "site"); ok {
		t.Fatalf("expected lookup in nil data to fail")
	}
}
