// Package goquery implements mdndoc's search and extraction logic on top of
// goquery. Pages are retrieved through an mdndoc.Fetcher bound to the
// documentation origin and queried with CSS selectors.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdndoc"
)

// Ensure Engine implements the service interfaces at compile time.
var (
	_ mdndoc.DefinitionService = (*Engine)(nil)
	_ mdndoc.MimeService       = (*Engine)(nil)
)

// Engine searches the documentation site and extracts structured fields
// from its pages. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	fetcher mdndoc.Fetcher
	baseURL string
}

// Option configures an Engine.
type Option func(*Engine)

// WithBaseURL sets the origin that page paths are resolved against.
// Defaults to mdndoc.BaseURL.
func WithBaseURL(u string) Option {
	return func(e *Engine) {
		e.baseURL = strings.TrimSuffix(u, "/")
	}
}

// NewEngine creates a new Engine that loads pages with fetcher.
func NewEngine(fetcher mdndoc.Fetcher, opts ...Option) *Engine {
	e := &Engine{
		fetcher: fetcher,
		baseURL: mdndoc.BaseURL,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// load fetches the page at path and parses it. Fetch errors are returned
// unchanged.
func (e *Engine) load(ctx context.Context, path string) (*goquery.Document, error) {
	html, err := e.fetcher.Fetch(ctx, e.baseURL+path)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mdndoc.Errorf(mdndoc.EINTERNAL, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
