package config

import (
	"fmt"
	"strings"

	"github.com/benedict2310/robotsctl/pkg/model"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath     = "ROBOTSCTL_CONFIG"
	DefaultConfigPath = "robots-txt.yaml"
)

// File is the on-disk options document. Scalar options stay as YAML nodes
// so that a missing key, a null and a value can be told apart.
type File struct {
	Output     yaml.Node          `yaml:"output"`
	Policy     []model.PolicyRule `yaml:"policy"`
	Host       yaml.Node          `yaml:"host"`
	Sitemap    yaml.Node          `yaml:"sitemap"`
	Query      yaml.Node          `yaml:"query"`
	ConfigFile yaml.Node          `yaml:"configFile"`
	Env        map[string]File    `yaml:"env"`

	// Plugins is injected by some build systems and is never an option.
	Plugins yaml.Node `yaml:"plugins"`
}

// Validate checks invariants that decoding alone does not enforce.
func (f File) Validate() error {
	for _, opt := range []struct {
		key  string
		node yaml.Node
	}{
		{"output", f.Output},
		{"host", f.Host},
		{"sitemap", f.Sitemap},
		{"query", f.Query},
		{"configFile", f.ConfigFile},
	} {
		if _, err := fieldFromNode(opt.node); err != nil {
			return fmt.Errorf("%s: %w", opt.key, err)
		}
	}
	for name, bucket := range f.Env {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("env: environment name must not be empty")
		}
		if len(bucket.Env) > 0 {
			return fmt.Errorf("env.%s: nested env is not supported", name)
		}
		if err := bucket.Validate(); err != nil {
			return fmt.Errorf("env.%s.%w", name, err)
		}
	}
	return nil
}

// Options converts the document into caller options.
func (f File) Options() (model.RawOptions, error) {
	if err := f.Validate(); err != nil {
		return model.RawOptions{}, err
	}
	raw := model.RawOptions{Options: f.partial()}
	if len(f.Env) > 0 {
		raw.Env = make(map[string]model.Options, len(f.Env))
		for name, bucket := range f.Env {
			raw.Env[name] = bucket.partial()
		}
	}
	return raw, nil
}

func (f File) partial() model.Options {
	return model.Options{
		Output:     mustField(f.Output),
		Policy:     f.Policy,
		Host:       mustField(f.Host),
		Sitemap:    mustField(f.Sitemap),
		Query:      mustField(f.Query),
		ConfigFile: mustField(f.ConfigFile),
	}
}

func mustField(n yaml.Node) model.Field {
	f, _ := fieldFromNode(n)
	return f
}

func fieldFromNode(n yaml.Node) (model.Field, error) {
	switch n.Kind {
	case 0:
		return model.Unset(), nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return model.Disabled(), nil
		}
		return model.Value(n.Value), nil
	default:
		return model.Field{}, fmt.Errorf("line %d: expected a string or null", n.Line)
	}
}
