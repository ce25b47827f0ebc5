package options

import "os"

const (
	// EnvActiveEnvironment names the active deployment environment.
	EnvActiveEnvironment = "GATSBY_ACTIVE_ENV"
	// EnvRuntimeEnvironment is consulted when no deployment environment is set.
	EnvRuntimeEnvironment = "NODE_ENV"
	// DefaultEnvironment is used when neither signal is set.
	DefaultEnvironment = "development"
)

// LookupFunc reads one environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// SelectEnvironment returns the name of the active environment bucket.
// resolveEnv wins when set; otherwise the deployment and runtime signals are
// read through lookup (os.LookupEnv when nil) in that order.
func SelectEnvironment(resolveEnv func() string, lookup LookupFunc) string {
	if resolveEnv != nil {
		return resolveEnv()
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range []string{EnvActiveEnvironment, EnvRuntimeEnvironment} {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
	}
	return DefaultEnvironment
}

// MapLookup adapts a static map to a LookupFunc.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}
