package goquery

import (
	"net/url"
	"strings"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Node implements studipsync.Node at compile time.
var _ studipsync.Node = (*Node)(nil)

// Node wraps a single element of a Document.
type Node struct {
	sel  *goquery.Selection
	base *url.URL
}

// Selection returns the underlying goquery selection.
func (n *Node) Selection() *goquery.Selection {
	return n.sel
}

// Text returns the rendered text of the node: text of all descendants
// except script and style, with whitespace runs collapsed to one space and
// trimmed at both ends. Non-breaking spaces are kept.
func (n *Node) Text() string {
	return renderText(n.sel.Nodes)
}

// Href returns the href attribute resolved against the document's base URL.
// Returns "" if the node has no href attribute, and the raw value if it
// cannot be parsed or no base URL is known.
func (n *Node) Href() string {
	href, ok := n.sel.Attr("href")
	if !ok {
		return ""
	}
	href = strings.TrimSpace(href)
	if n.base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return n.base.ResolveReference(ref).String()
}

func renderText(nodes []*html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style:
				return
			case atom.Br:
				b.WriteByte(' ')
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range nodes {
		walk(n)
	}

	return strings.Join(strings.FieldsFunc(b.String(), isHTMLSpace), " ")
}

// isHTMLSpace matches ASCII whitespace as defined by the HTML standard.
func isHTMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
