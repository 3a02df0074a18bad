// Package rewrite replaces extracted components and shared boilerplate
// in page trees with include directives.
//
// Rewriting one page is a pure function of (the page's tree, the frozen
// node table, the frozen partial list, the frozen common fragments), so
// pages rewrite in parallel once clustering and emission are done.
// Include directives are inserted as raw nodes: the serializer renders
// them verbatim, so the directive syntax survives without entity
// escaping.
package rewrite

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/dom"
	"github.com/Anant-Navadiya/partial-extractor/internal/miner"
	"github.com/Anant-Navadiya/partial-extractor/internal/model"
	"github.com/Anant-Navadiya/partial-extractor/internal/partial"
)

// Rewriter applies include substitutions to page trees.
type Rewriter struct {
	table     *miner.NodeTable
	partials  []*model.Partial
	fragments *model.CommonFragments
	logger    *slog.Logger
}

// New creates a Rewriter over the frozen outputs of the earlier stages.
func New(table *miner.NodeTable, partials []*model.Partial, fragments *model.CommonFragments, logger *slog.Logger) *Rewriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rewriter{
		table:     table,
		partials:  partials,
		fragments: fragments,
		logger:    logger,
	}
}

// Rewrite mutates the page tree in place: cluster instances become
// partial includes, and the head and footer boilerplate is replaced by
// the shared fragment includes.
func (r *Rewriter) Rewrite(page *model.Page) {
	r.replaceInstances(page)
	r.rewriteHead(page)
	r.rewriteFooter(page)
}

// replaceInstances swaps each of this page's cluster instances for an
// include directive naming its partial.
func (r *Rewriter) replaceInstances(page *model.Page) {
	for _, p := range r.partials {
		include := partial.IncludeStatement(p.Name, nil)
		for _, inst := range p.Instances {
			if inst.PagePath != page.RelPath {
				continue
			}
			ref, ok := r.table.Lookup(inst.CandidateID)
			if !ok || ref.Page != page {
				r.logger.Warn("instance has no live node, skipping",
					"page", page.RelPath,
					"candidate", inst.CandidateID,
				)
				continue
			}
			if ref.Node.Parent == nil {
				// Already detached by an earlier replacement (nested
				// candidates); nothing left to replace.
				continue
			}
			dom.ReplaceWithRaw(ref.Node, include)
		}
	}
}

// rewriteHead strips the boilerplate head elements and installs the two
// shared head includes. Non-stylesheet links survive; everything else the
// shared fragments cover is removed.
func (r *Rewriter) rewriteHead(page *model.Page) {
	head := page.Head()
	if head == nil {
		return
	}

	var doomed []*html.Node
	dom.Walk(head, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "title", "meta", "style", "script":
			doomed = append(doomed, n)
		case "link":
			if isStylesheet(n) {
				doomed = append(doomed, n)
			}
		}
	})
	for _, n := range doomed {
		dom.Detach(n)
	}

	titleParams := map[string]string{}
	if residual := r.fragments.ResidualTitles[page.RelPath]; residual != "" {
		titleParams["page_title"] = residual
	}
	dom.PrependRaw(head, partial.IncludeStatement(model.TitleMetaFragment, titleParams))
	dom.AppendRaw(head, partial.IncludeStatement(model.HeadCSSFragment, nil))
}

// rewriteFooter removes body scripts covered by the shared footer
// fragment and appends its include.
func (r *Rewriter) rewriteFooter(page *model.Page) {
	body := page.Body()
	if body == nil {
		return
	}

	var doomed []*html.Node
	dom.Walk(body, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "script" {
			return
		}
		src := dom.Attr(n, "src")
		if src == "" {
			return
		}
		if _, shared := r.fragments.FooterScriptSrcs[src]; shared {
			doomed = append(doomed, n)
		}
	})
	for _, n := range doomed {
		dom.Detach(n)
	}

	dom.AppendRaw(body, partial.IncludeStatement(model.FooterScriptsFragment, nil))
}

// isStylesheet reports whether a link element is a stylesheet link.
func isStylesheet(n *html.Node) bool {
	return strings.EqualFold(strings.TrimSpace(dom.Attr(n, "rel")), "stylesheet")
}
