package robots

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/benedict2310/robotsctl/pkg/model"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the renderer's own configuration file.
type ConfigFile struct {
	Policy  []model.PolicyRule `yaml:"policy"`
	Sitemap string             `yaml:"sitemap"`
	Host    string             `yaml:"host"`
}

// LoadConfigFile reads a YAML (or JSON) renderer config file.
func LoadConfigFile(path string) (ConfigFile, error) {
	var cfg ConfigFile

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("robots config file not found at %s: %w", path, err)
		}
		return cfg, fmt.Errorf("read robots config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse robots config file %s: %w", path, err)
	}
	return cfg, nil
}

// apply fills in what the caller left empty and did not switch off.
func (c ConfigFile) apply(in Input) Input {
	if len(in.Policy) == 0 {
		in.Policy = c.Policy
	}
	if strings.TrimSpace(in.Sitemap) == "" && !in.NoSitemap {
		in.Sitemap = c.Sitemap
	}
	if strings.TrimSpace(in.Host) == "" && !in.NoHost {
		in.Host = c.Host
	}
	return in
}
