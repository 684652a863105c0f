// Package dom provides a thin selection layer over HTML documents parsed
// with golang.org/x/net/html: descendant and direct-child element
// selection, attribute lookup, text extraction, and table listing.
package dom

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document from r. The parser is lenient; malformed
// markup still produces a tree.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// ParseFile parses the HTML document at the given path.
func ParseFile(filename string) (*html.Node, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// FindAll returns every descendant element of n with the given tag name,
// in document order. Matching elements are searched too, so nested
// occurrences (a table inside a table cell, for example) are included.
func FindAll(n *html.Node, tag string) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				matches = append(matches, c)
			}
			walk(c)
		}
	}
	walk(n)
	return matches
}

// DirectChildren returns the element children of n whose tag name is one
// of tags, in source order.
func DirectChildren(n *html.Node, tags ...string) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		for _, tag := range tags {
			if c.Data == tag {
				children = append(children, c)
				break
			}
		}
	}
	return children
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated text content of n and its descendants,
// with no normalization applied.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// Tables returns the table elements of a document in document order.
// Tables nested inside other tables are listed as entries of their own.
func Tables(doc *html.Node) []*html.Node {
	return FindAll(doc, "table")
}

// VisibleTables filters out tables hidden with an inline
// style="display:none" declaration.
func VisibleTables(tables []*html.Node) []*html.Node {
	visible := make([]*html.Node, 0, len(tables))
	for _, t := range tables {
		if !IsHidden(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

// IsHidden reports whether the element carries an inline display:none
// declaration. Stylesheet-driven visibility is not computed.
func IsHidden(n *html.Node) bool {
	style, ok := Attr(n, "style")
	if !ok {
		return false
	}
	return strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none")
}
