package model

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/dom"
)

// Page represents one parsed source document.
//
// The tree rooted at Root is mutable and exclusively owned by this page:
// the rewrite stage mutates it in place, and nothing else may hold
// references into it except the candidate node table built during mining.
type Page struct {
	// SourcePath is the absolute path of the file the page was read from.
	SourcePath string

	// RelPath is the path relative to the source root. It is the page's
	// identity throughout the run and determines the mirrored output path.
	RelPath string

	// Root is the document root produced by the HTML parser.
	Root *html.Node
}

// Head returns the page's head element, or nil when the document has none.
// The parser normally synthesizes a head even for fragments, so nil is rare.
func (p *Page) Head() *html.Node {
	return dom.FindFirst(p.Root, "head")
}

// Body returns the page's body element, or nil when the document has none.
func (p *Page) Body() *html.Node {
	return dom.FindFirst(p.Root, "body")
}

// Title returns the trimmed text of the page's title element, or "".
func (p *Page) Title() string {
	head := p.Head()
	if head == nil {
		return ""
	}
	t := dom.FindFirst(head, "title")
	if t == nil || t.FirstChild == nil || t.FirstChild.Type != html.TextNode {
		return ""
	}
	return strings.TrimSpace(t.FirstChild.Data)
}
