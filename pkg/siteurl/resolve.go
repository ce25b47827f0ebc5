package siteurl

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/benedict2310/robotsctl/pkg/model"
)

// SitemapIndexFile is the sitemap assumed when none is configured.
const SitemapIndexFile = "sitemap-index.xml"

// MetadataFunc fetches site metadata from the data layer.
type MetadataFunc func(ctx context.Context) (model.SiteMetadata, error)

// URLs holds the resolved host and sitemap. Disabled fields must not be rendered.
type URLs struct {
	Host    model.Field
	Sitemap model.Field
}

// Resolve derives the final host and sitemap values. fetch runs at most once
// and only when the host or the sitemap base cannot be known otherwise.
func Resolve(ctx context.Context, opts model.ResolvedOptions, pathPrefix string, fetch MetadataFunc) (URLs, error) {
	meta := &metadataCache{fetch: fetch}

	host, err := resolveHost(ctx, opts.Host, meta)
	if err != nil {
		return URLs{}, err
	}
	sitemap, err := resolveSitemap(ctx, opts.Sitemap, host, pathPrefix, meta)
	if err != nil {
		return URLs{}, err
	}
	return URLs{Host: host, Sitemap: sitemap}, nil
}

func resolveHost(ctx context.Context, host model.Field, meta *metadataCache) (model.Field, error) {
	switch host.State() {
	case model.FieldDisabled, model.FieldValue:
		return host, nil
	}
	siteURL, err := meta.siteURL(ctx)
	if err != nil {
		return model.Field{}, err
	}
	return model.Value(siteURL), nil
}

func resolveSitemap(ctx context.Context, sitemap, host model.Field, pathPrefix string, meta *metadataCache) (model.Field, error) {
	var rel string
	switch sitemap.State() {
	case model.FieldDisabled:
		return sitemap, nil
	case model.FieldUnset:
		rel = path.Join(pathPrefix, SitemapIndexFile)
	default:
		value, _ := sitemap.Get()
		if isAbsoluteURL(value) {
			return sitemap, nil
		}
		rel = value
		if !strings.HasPrefix(value, pathPrefix) {
			rel = path.Join(pathPrefix, value)
			// path.Join drops a trailing slash; a directory-style sitemap keeps it.
			if strings.HasSuffix(value, "/") && !strings.HasSuffix(rel, "/") {
				rel += "/"
			}
		}
	}

	base, ok := host.Get()
	if !ok {
		siteURL, err := meta.siteURL(ctx)
		if err != nil {
			return model.Field{}, err
		}
		base = siteURL
	}
	resolved, err := resolveAgainst(base, rel)
	if err != nil {
		return model.Field{}, err
	}
	return model.Value(resolved), nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs()
}

func resolveAgainst(base, rel string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse host %q: %w", base, err)
	}
	relURL, err := url.Parse(rel)
	if err != nil {
		return "", fmt.Errorf("parse sitemap path %q: %w", rel, err)
	}
	return baseURL.ResolveReference(relURL).String(), nil
}

type metadataCache struct {
	fetch   MetadataFunc
	fetched bool
	meta    model.SiteMetadata
}

func (c *metadataCache) siteURL(ctx context.Context) (string, error) {
	if !c.fetched {
		if c.fetch == nil {
			return "", fmt.Errorf("site metadata is required to resolve host or sitemap")
		}
		meta, err := c.fetch(ctx)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(meta.SiteURL) == "" {
			return "", fmt.Errorf("site metadata has no siteUrl")
		}
		c.meta = meta
		c.fetched = true
	}
	return c.meta.SiteURL, nil
}
