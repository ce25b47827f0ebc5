package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benedict2310/robotsctl/pkg/model"
	"gopkg.in/yaml.v3"
)

// ResolvePath resolves the options path from explicit input, env var, or
// default. explicit reports whether a missing file is an error.
func ResolvePath(explicitPath string) (path string, explicit bool) {
	if path := strings.TrimSpace(explicitPath); path != "" {
		return path, true
	}
	if path := strings.TrimSpace(os.Getenv(EnvConfigPath)); path != "" {
		return path, true
	}
	return DefaultConfigPath, false
}

// Load loads options from the resolved path and returns them with the path
// used. A missing default file yields empty options and an empty path.
func Load(explicitPath string) (model.RawOptions, string, error) {
	path, explicit := ResolvePath(explicitPath)
	raw, err := LoadFromPath(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return model.RawOptions{}, "", nil
		}
		return model.RawOptions{}, path, err
	}
	return raw, path, nil
}

// LoadFromPath loads and validates an options file.
func LoadFromPath(path string) (model.RawOptions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.RawOptions{}, fmt.Errorf("options file not found at %s (create it or set %s): %w", path, EnvConfigPath, err)
		}
		return model.RawOptions{}, fmt.Errorf("read options file %s: %w", path, err)
	}

	file, err := Parse(b)
	if err != nil {
		return model.RawOptions{}, fmt.Errorf("parse options file %s: %w", path, err)
	}
	raw, err := file.Options()
	if err != nil {
		return model.RawOptions{}, fmt.Errorf("validate options file %s: %w", path, err)
	}
	return raw, nil
}

// Parse decodes an options document. Unknown keys are rejected.
func Parse(b []byte) (File, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}
	return file, nil
}
