package sitedata

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LoadHTML derives site metadata from a built page, usually the home page:
// siteUrl from <link rel="canonical"> or og:url, plus title and description.
func LoadHTML(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page %s: %w", path, err)
	}
	defer f.Close()

	root, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", path, err)
	}

	var canonical, ogURL, title, description string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch node.DataAtom {
			case atom.Link:
				if hasToken(attr(node, "rel"), "canonical") && canonical == "" {
					canonical = strings.TrimSpace(attr(node, "href"))
				}
			case atom.Meta:
				switch {
				case strings.EqualFold(attr(node, "property"), "og:url") && ogURL == "":
					ogURL = strings.TrimSpace(attr(node, "content"))
				case strings.EqualFold(attr(node, "name"), "description") && description == "":
					description = strings.TrimSpace(attr(node, "content"))
				}
			case atom.Title:
				if title == "" && node.FirstChild != nil {
					title = strings.TrimSpace(node.FirstChild.Data)
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	meta := map[string]any{
		"siteUrl":     nil,
		"title":       nullable(title),
		"description": nullable(description),
	}
	for _, candidate := range []string{canonical, ogURL} {
		if siteURL, ok := siteOrigin(candidate); ok {
			meta["siteUrl"] = siteURL
			break
		}
	}
	return FromSiteMetadata(meta), nil
}

// HTMLLoader adapts LoadHTML for Lazy.
func HTMLLoader(path string) LoadFunc {
	return func(ctx context.Context) (*Document, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return LoadHTML(path)
	}
}

// siteOrigin keeps scheme and host of an absolute URL.
func siteOrigin(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}

func attr(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func hasToken(list, token string) bool {
	for _, field := range strings.Fields(list) {
		if strings.EqualFold(field, token) {
			return true
		}
	}
	return false
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
