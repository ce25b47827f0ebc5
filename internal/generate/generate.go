package generate

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/benedict2310/robotsctl/pkg/model"
	"github.com/benedict2310/robotsctl/pkg/options"
	"github.com/benedict2310/robotsctl/pkg/query"
	"github.com/benedict2310/robotsctl/pkg/robots"
	"github.com/benedict2310/robotsctl/pkg/siteurl"
)

// DefaultPublicDir is where the build system puts its output.
const DefaultPublicDir = "public"

// SiteURLPath is where the metadata query is expected to put the site URL.
const SiteURLPath = "site.siteMetadata.siteUrl"

// QueryExecutor runs a metadata query against the site data layer.
type QueryExecutor interface {
	ExecuteQuery(ctx context.Context, text string) (query.Result, error)
}

// Renderer turns policy, host and sitemap into robots.txt text.
type Renderer interface {
	Render(ctx context.Context, in robots.Input) (string, error)
}

// Writer persists the rendered file.
type Writer interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}

// QueryError is returned when the metadata query reports errors.
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Site is the build-time context of one invocation.
type Site struct {
	Executor   QueryExecutor
	PathPrefix string
	PublicDir  string
}

// Result describes a finished run.
type Result struct {
	RunID       string
	Environment string
	Path        string
	Options     model.ResolvedOptions
	URLs        siteurl.URLs
	Content     string
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(ctx context.Context, in robots.Input) (string, error)

func (f RendererFunc) Render(ctx context.Context, in robots.Input) (string, error) {
	return f(ctx, in)
}

// DefaultRenderer renders with pkg/robots.
var DefaultRenderer Renderer = RendererFunc(func(ctx context.Context, in robots.Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return robots.Render(in)
})

// Runner resolves, renders and writes robots.txt for one site.
type Runner struct {
	renderer Renderer
	writer   Writer
	lookup   options.LookupFunc
	logger   *slog.Logger
	nowFn    func() time.Time
	idFn     func(time.Time) (string, error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithRenderer replaces DefaultRenderer.
func WithRenderer(r Renderer) Option { return func(rn *Runner) { rn.renderer = r } }

// WithWriter replaces the atomic FileWriter.
func WithWriter(w Writer) Option { return func(rn *Runner) { rn.writer = w } }

// WithLookup sets how environment signals are read.
func WithLookup(lookup options.LookupFunc) Option { return func(rn *Runner) { rn.lookup = lookup } }

// WithLogger sets the run logger. slog.Default is used when unset.
func WithLogger(logger *slog.Logger) Option { return func(rn *Runner) { rn.logger = logger } }

// NewRunner returns a Runner with the default renderer and file writer.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		renderer: DefaultRenderer,
		writer:   FileWriter{},
		nowFn:    time.Now,
		idFn:     NewRunID,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Resolve merges options and resolves URLs without rendering or writing.
func (r *Runner) Resolve(ctx context.Context, site Site, raw model.RawOptions) (Result, error) {
	var out Result
	runID, err := r.idFn(r.nowFn())
	if err != nil {
		return out, err
	}
	out.RunID = runID
	out.Environment = options.SelectEnvironment(raw.ResolveEnv, r.lookup)
	out.Options = options.ResolveFor(raw, out.Environment)

	publicDir := site.PublicDir
	if strings.TrimSpace(publicDir) == "" {
		publicDir = DefaultPublicDir
	}
	out.Path = filepath.Join(publicDir, filepath.FromSlash(out.Options.Output))

	logger := r.logger.With("run_id", runID, "env", out.Environment)
	urls, err := siteurl.Resolve(ctx, out.Options, site.PathPrefix, func(ctx context.Context) (model.SiteMetadata, error) {
		logger.Debug("querying site metadata")
		return fetchMetadata(ctx, site.Executor, out.Options.Query)
	})
	if err != nil {
		return out, err
	}
	out.URLs = urls
	return out, nil
}

// Run resolves options and URLs, renders robots.txt and writes it to
// <publicDir>/<output>. The first failing step aborts the run.
func (r *Runner) Run(ctx context.Context, site Site, raw model.RawOptions) (Result, error) {
	out, err := r.Resolve(ctx, site, raw)
	if err != nil {
		return out, err
	}
	logger := r.logger.With("run_id", out.RunID, "env", out.Environment)

	host, hostOK := out.URLs.Host.Get()
	sitemap, sitemapOK := out.URLs.Sitemap.Get()
	content, err := r.renderer.Render(ctx, robots.Input{
		Policy:     out.Options.Policy,
		Sitemap:    sitemap,
		Host:       host,
		ConfigFile: out.Options.ConfigFile,
		NoHost:     !hostOK,
		NoSitemap:  !sitemapOK,
	})
	if err != nil {
		return out, err
	}
	out.Content = content

	if err := r.writer.WriteFile(ctx, out.Path, []byte(content)); err != nil {
		return out, err
	}

	logger.Info("robots.txt generated",
		"path", out.Path,
		"host", host,
		"sitemap", sitemap,
		"bytes", len(content),
	)
	return out, nil
}

func fetchMetadata(ctx context.Context, executor QueryExecutor, text string) (model.SiteMetadata, error) {
	if executor == nil {
		return model.SiteMetadata{}, fmt.Errorf("no site metadata source configured")
	}
	res, err := executor.ExecuteQuery(ctx, text)
	if err != nil {
		return model.SiteMetadata{}, err
	}
	if len(res.Errors) > 0 {
		return model.SiteMetadata{}, &QueryError{Messages: res.Errors}
	}
	v, ok := query.Lookup(res.Data, SiteURLPath)
	siteURL, isString := v.(string)
	if !ok || !isString || strings.TrimSpace(siteURL) == "" {
		return model.SiteMetadata{}, fmt.Errorf("query result is missing %s", SiteURLPath)
	}
	return model.SiteMetadata{SiteURL: strings.TrimSpace(siteURL)}, nil
}
