package sitedata

import (
	"context"
	"fmt"
	"sync"

	"github.com/benedict2310/robotsctl/pkg/query"
)

// Document answers metadata queries against an in-memory site document.
type Document struct {
	root map[string]any
}

// NewDocument wraps a full document whose top level holds "site".
func NewDocument(root map[string]any) *Document {
	if root == nil {
		root = map[string]any{}
	}
	return &Document{root: root}
}

// FromSiteMetadata builds the document {site: {siteMetadata: meta}}.
func FromSiteMetadata(meta map[string]any) *Document {
	if meta == nil {
		meta = map[string]any{}
	}
	return NewDocument(map[string]any{
		"site": map[string]any{"siteMetadata": meta},
	})
}

func (d *Document) ExecuteQuery(ctx context.Context, text string) (query.Result, error) {
	if err := ctx.Err(); err != nil {
		return query.Result{}, err
	}
	return query.Execute(d.root, text), nil
}

// LoadFunc produces a document on first use.
type LoadFunc func(ctx context.Context) (*Document, error)

// Lazy defers loading until the first query, so builds that never need
// metadata never touch the data layer.
type Lazy struct {
	name string
	load LoadFunc

	once sync.Once
	doc  *Document
	err  error
}

func NewLazy(name string, load LoadFunc) *Lazy {
	return &Lazy{name: name, load: load}
}

func (l *Lazy) ExecuteQuery(ctx context.Context, text string) (query.Result, error) {
	l.once.Do(func() {
		if l.load == nil {
			l.err = fmt.Errorf("no site metadata source configured")
			return
		}
		l.doc, l.err = l.load(ctx)
	})
	if l.err != nil {
		return query.Result{}, fmt.Errorf("load site metadata from %s: %w", l.name, l.err)
	}
	return l.doc.ExecuteQuery(ctx, text)
}
