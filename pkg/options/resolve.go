package options

import "github.com/benedict2310/robotsctl/pkg/model"

const (
	DefaultOutput = "/robots.txt"

	// DefaultQuery asks the site data layer for the canonical site URL.
	DefaultQuery = `{
  site {
    siteMetadata {
      siteUrl
    }
  }
}`
)

// Defaults returns the built-in option layer.
func Defaults() model.Options {
	return model.Options{
		Output: model.Value(DefaultOutput),
		Query:  model.Value(DefaultQuery),
	}
}

// Merge folds layers from lowest to highest precedence. A field set in a
// later layer replaces the earlier one, including an explicit disable.
func Merge(layers ...model.Options) model.Options {
	var out model.Options
	for _, layer := range layers {
		out.Output = out.Output.Or(layer.Output)
		out.Host = out.Host.Or(layer.Host)
		out.Sitemap = out.Sitemap.Or(layer.Sitemap)
		out.Query = out.Query.Or(layer.Query)
		out.ConfigFile = out.ConfigFile.Or(layer.ConfigFile)
		if layer.Policy != nil {
			out.Policy = layer.Policy
		}
	}
	return out
}

// SelectBucket returns the override bucket for envName, falling back to the
// development bucket and then to an empty one. The returned name is the
// bucket actually used, or "" when none matched.
func SelectBucket(env map[string]model.Options, envName string) (model.Options, string) {
	if bucket, ok := env[envName]; ok {
		return bucket, envName
	}
	if bucket, ok := env[DefaultEnvironment]; ok {
		return bucket, DefaultEnvironment
	}
	return model.Options{}, ""
}

// Resolve merges defaults < caller options < the active environment bucket.
// Bucket keys always win over the caller's top-level keys.
func Resolve(raw model.RawOptions, lookup LookupFunc) model.ResolvedOptions {
	return ResolveFor(raw, SelectEnvironment(raw.ResolveEnv, lookup))
}

// ResolveFor is Resolve with the environment already selected. raw.ResolveEnv
// is not called.
func ResolveFor(raw model.RawOptions, envName string) model.ResolvedOptions {
	bucket, _ := SelectBucket(raw.Env, envName)
	merged := Merge(Defaults(), raw.Options, bucket)

	output, ok := merged.Output.Get()
	if !ok {
		output = DefaultOutput
	}
	query, ok := merged.Query.Get()
	if !ok {
		query = DefaultQuery
	}
	configFile, _ := merged.ConfigFile.Get()

	return model.ResolvedOptions{
		Output:     output,
		Query:      query,
		Policy:     merged.Policy,
		Host:       merged.Host,
		Sitemap:    merged.Sitemap,
		ConfigFile: configFile,
	}
}
