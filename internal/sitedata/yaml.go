package sitedata

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a metadata file. The top level is either a full document
// with a "site" key or a bare "siteMetadata" mapping.
func LoadYAML(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site metadata file %s: %w", path, err)
	}
	var root map[string]any
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("parse site metadata file %s: %w", path, err)
	}
	if _, ok := root["site"]; ok {
		return NewDocument(root), nil
	}
	meta, ok := root["siteMetadata"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("site metadata file %s: expected a \"site\" or \"siteMetadata\" mapping", path)
	}
	return FromSiteMetadata(meta), nil
}

// YAMLLoader adapts LoadYAML for Lazy.
func YAMLLoader(path string) LoadFunc {
	return func(ctx context.Context) (*Document, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return LoadYAML(path)
	}
}
