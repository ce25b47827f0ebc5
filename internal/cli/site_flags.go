package cli

import (
	"fmt"
	"strings"

	"github.com/benedict2310/robotsctl/internal/config"
	"github.com/benedict2310/robotsctl/internal/generate"
	"github.com/benedict2310/robotsctl/internal/sitedata"
	"github.com/benedict2310/robotsctl/pkg/model"
	"github.com/spf13/cobra"
)

// siteFlags are shared by the commands that resolve options for a build.
type siteFlags struct {
	configPath string
	publicDir  string
	pathPrefix string
	env        string
	envFiles   []string

	metadataYAML string
	metadataDB   string
	metadataPage string

	host      string
	sitemap   string
	output    string
	noHost    bool
	noSitemap bool
}

func (f *siteFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "Options file (default $"+config.EnvConfigPath+" or ./"+config.DefaultConfigPath+")")
	fs.StringVar(&f.publicDir, "public", generate.DefaultPublicDir, "Build output directory")
	fs.StringVar(&f.pathPrefix, "path-prefix", "", "Path prefix the site is served under")
	fs.StringVar(&f.env, "env", "", "Environment bucket to apply (overrides GATSBY_ACTIVE_ENV and NODE_ENV)")
	fs.StringArrayVar(&f.envFiles, "env-file", nil, "Dotenv file read for environment selection (repeatable)")

	fs.StringVar(&f.metadataYAML, "site-metadata", "", "YAML file holding siteMetadata")
	fs.StringVar(&f.metadataDB, "site-db", "", "SQLite database holding the site_metadata table")
	fs.StringVar(&f.metadataPage, "site-page", "", "Built HTML page to read the canonical site URL from")
	cmd.MarkFlagsMutuallyExclusive("site-metadata", "site-db", "site-page")

	fs.StringVar(&f.host, "host", "", "Host value, overriding the options file top level")
	fs.StringVar(&f.sitemap, "sitemap", "", "Sitemap value, overriding the options file top level")
	fs.StringVar(&f.output, "output", "", "Output path inside the public directory")
	fs.BoolVar(&f.noHost, "no-host", false, "Omit the Host line")
	fs.BoolVar(&f.noSitemap, "no-sitemap", false, "Omit the Sitemap line")
	cmd.MarkFlagsMutuallyExclusive("host", "no-host")
	cmd.MarkFlagsMutuallyExclusive("sitemap", "no-sitemap")
}

// rawOptions loads the options file and lays the flag overrides on its top level.
func (f *siteFlags) rawOptions(cmd *cobra.Command) (model.RawOptions, error) {
	raw, _, err := config.Load(f.configPath)
	if err != nil {
		return raw, err
	}

	fs := cmd.Flags()
	if fs.Changed("host") {
		raw.Host = model.Value(f.host)
	}
	if f.noHost {
		raw.Host = model.Disabled()
	}
	if fs.Changed("sitemap") {
		raw.Sitemap = model.Value(f.sitemap)
	}
	if f.noSitemap {
		raw.Sitemap = model.Disabled()
	}
	if fs.Changed("output") {
		if strings.TrimSpace(f.output) == "" {
			return raw, exitCodeError(exitUsage, fmt.Errorf("--output must not be empty"))
		}
		raw.Output = model.Value(f.output)
	}
	if env := strings.TrimSpace(f.env); env != "" {
		raw.ResolveEnv = func() string { return env }
	}
	return raw, nil
}

func (f *siteFlags) site() generate.Site {
	site := generate.Site{
		PathPrefix: f.pathPrefix,
		PublicDir:  f.publicDir,
	}
	switch {
	case f.metadataYAML != "":
		site.Executor = sitedata.NewLazy(f.metadataYAML, sitedata.YAMLLoader(f.metadataYAML))
	case f.metadataDB != "":
		site.Executor = sitedata.NewLazy(f.metadataDB, sitedata.SQLiteLoader(f.metadataDB))
	case f.metadataPage != "":
		site.Executor = sitedata.NewLazy(f.metadataPage, sitedata.HTMLLoader(f.metadataPage))
	}
	return site
}

// runner builds a generate.Runner with dotenv lookup and the command logger.
func (f *siteFlags) runner(cmd *cobra.Command, root *rootFlags) (*generate.Runner, error) {
	logger, err := root.logger(cmd)
	if err != nil {
		return nil, err
	}
	lookup, err := config.EnvLookup(f.envFiles...)
	if err != nil {
		return nil, err
	}
	return generate.NewRunner(generate.WithLookup(lookup), generate.WithLogger(logger)), nil
}
