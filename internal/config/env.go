package config

import (
	"fmt"
	"os"

	"github.com/benedict2310/robotsctl/pkg/options"
	"github.com/joho/godotenv"
)

// EnvLookup reads the process environment, falling back to values from
// dotenv files. Files are read, never applied to the process.
func EnvLookup(files ...string) (options.LookupFunc, error) {
	if len(files) == 0 {
		return os.LookupEnv, nil
	}
	values, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("read env files: %w", err)
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}
