package model

import "strings"

// FieldState tells whether an option was left out, switched off, or given.
type FieldState int

const (
	// FieldUnset means the option was not mentioned and may be derived.
	FieldUnset FieldState = iota
	// FieldDisabled means the option was explicitly nulled and must stay off.
	FieldDisabled
	// FieldValue means the option carries a concrete string.
	FieldValue
)

func (s FieldState) String() string {
	switch s {
	case FieldDisabled:
		return "disabled"
	case FieldValue:
		return "value"
	default:
		return "unset"
	}
}

// Field is a tri-state string option. The zero value is unset.
type Field struct {
	state FieldState
	value string
}

// Unset returns a field that was not provided.
func Unset() Field {
	return Field{}
}

// Disabled returns a field that was explicitly switched off.
func Disabled() Field {
	return Field{state: FieldDisabled}
}

// Value returns a field holding v verbatim. A blank v (empty or whitespace
// only) is a disable sentinel.
func Value(v string) Field {
	if strings.TrimSpace(v) == "" {
		return Disabled()
	}
	return Field{state: FieldValue, value: v}
}

func (f Field) State() FieldState { return f.state }

func (f Field) IsUnset() bool { return f.state == FieldUnset }

func (f Field) IsDisabled() bool { return f.state == FieldDisabled }

// Get returns the value and whether the field carries one.
func (f Field) Get() (string, bool) {
	return f.value, f.state == FieldValue
}

// String returns the value, or "" for unset and disabled fields.
func (f Field) String() string {
	return f.value
}

// Or returns override unless it is unset, in which case f is kept.
func (f Field) Or(override Field) Field {
	if override.IsUnset() {
		return f
	}
	return override
}

// StringList decodes from either a YAML scalar or a sequence of scalars.
type StringList []string

// PolicyRule is one user-agent group of the crawl policy.
type PolicyRule struct {
	UserAgents StringList `yaml:"userAgent" json:"userAgent"`
	Allow      StringList `yaml:"allow,omitempty" json:"allow,omitempty"`
	Disallow   StringList `yaml:"disallow,omitempty" json:"disallow,omitempty"`
	CrawlDelay *float64   `yaml:"crawlDelay,omitempty" json:"crawlDelay,omitempty"`
	CleanParam StringList `yaml:"cleanParam,omitempty" json:"cleanParam,omitempty"`
}

// Options is a partial option set: the caller's top level or one environment bucket.
// A nil Policy is absent; a non-nil empty Policy is present and empty.
type Options struct {
	Output     Field
	Policy     []PolicyRule
	Host       Field
	Sitemap    Field
	Query      Field
	ConfigFile Field
}

// RawOptions is the caller-supplied configuration for one build.
type RawOptions struct {
	Options
	Env map[string]Options
	// ResolveEnv, when set, names the active environment bucket.
	ResolveEnv func() string
}

// ResolvedOptions is the merged configuration. Output and Query are always set.
type ResolvedOptions struct {
	Output     string
	Query      string
	Policy     []PolicyRule
	Host       Field
	Sitemap    Field
	ConfigFile string
}

// SiteMetadata is the part of the site data layer needed to derive URLs.
type SiteMetadata struct {
	SiteURL string
}
