// Package goquery implements studipsync.Selector on top of goquery and
// cascadia, and parses portal pages into documents it can query.
package goquery

import (
	"io"
	"net/url"
	"strings"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Document is a parsed portal page.
type Document struct {
	doc  *goquery.Document
	base *url.URL
}

// Parse reads an HTML page and decodes it to UTF-8. The encoding is taken
// from contentType (an HTTP Content-Type value, may be empty), a byte order
// mark or a meta tag, in that order. baseURL resolves relative links and may
// be empty; a <base href> in the page takes precedence over it.
func Parse(r io.Reader, contentType string, baseURL string) (*Document, error) {
	var base *url.URL
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, studipsync.Errorf(studipsync.EINVALID, "invalid base URL: %v", err)
		}
		base = u
	}

	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, studipsync.Errorf(studipsync.EINVALID, "failed to decode document: %v", err)
	}

	root, err := html.Parse(utf8Reader)
	if err != nil {
		return nil, studipsync.Errorf(studipsync.EINVALID, "failed to parse HTML: %v", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			if base != nil {
				base = base.ResolveReference(ref)
			} else if ref.IsAbs() {
				base = ref
			}
		}
	}
	doc.Url = base

	return &Document{doc: doc, base: base}, nil
}

// ParseString parses an already decoded HTML page.
func ParseString(s string, baseURL string) (*Document, error) {
	return Parse(strings.NewReader(s), "text/html; charset=utf-8", baseURL)
}

// Root returns the document node, the context for top-level selectors.
func (d *Document) Root() *Node {
	return &Node{sel: d.doc.Selection, base: d.base}
}

// BaseURL returns the URL links are resolved against, or nil.
func (d *Document) BaseURL() *url.URL {
	return d.base
}
