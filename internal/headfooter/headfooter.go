// Package headfooter computes the corpus-wide shared head and footer
// boilerplate by set intersection across documents.
//
// Unlike the candidate pipeline, this stage needs no similarity machinery:
// head metadata and footer script includes are either byte-identical
// across a template-derived corpus or they are page-specific. Elements are
// keyed by their serialized form; the intersection of those key sets over
// all documents is the shared boilerplate, with one representative kept
// per unique value.
//
// Documents missing a head or body are skipped for that sub-computation
// without aborting the run. An empty corpus yields empty fragments.
package headfooter

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/dom"
	"github.com/Anant-Navadiya/partial-extractor/internal/model"
)

// titleSeparators are trimmed from residual titles after suffix removal.
const titleSeparators = " |-–—"

// Extractor computes shared head and footer fragments.
type Extractor struct {
	logger *slog.Logger
}

// New creates an Extractor.
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract computes the common fragments across all pages. Pages are
// examined in corpus order; the result is deterministic for a fixed page
// order.
func (e *Extractor) Extract(pages []*model.Page) *model.CommonFragments {
	frags := model.NewCommonFragments()
	if len(pages) == 0 {
		return frags
	}

	e.extractHead(pages, frags)
	e.extractFooter(pages, frags)
	return frags
}

// extractHead intersects head elements and computes the title fragment.
func (e *Extractor) extractHead(pages []*model.Page, frags *model.CommonFragments) {
	var (
		titles      []string
		titledPages []string
		metaSets    []map[string]struct{}
		linkSets    []map[string]struct{}
		styleSets   []map[string]struct{}
		scriptSets  []map[string]struct{}
		withHead    int
	)

	for _, page := range pages {
		head := page.Head()
		if head == nil {
			e.logger.Debug("page has no head, skipping head intersection", "page", page.RelPath)
			continue
		}
		withHead++
		titles = append(titles, page.Title())
		titledPages = append(titledPages, page.RelPath)

		metas := make(map[string]struct{})
		for _, m := range dom.ElementsByTag(head, "meta") {
			if dom.HasAttr(m, "charset") {
				continue
			}
			if markup, err := dom.Render(m); err == nil {
				metas[markup] = struct{}{}
			}
		}
		metaSets = append(metaSets, metas)

		links := make(map[string]struct{})
		for _, l := range dom.ElementsByTag(head, "link") {
			if isStylesheet(l) {
				continue
			}
			if markup, err := dom.Render(l); err == nil {
				links[markup] = struct{}{}
			}
		}
		linkSets = append(linkSets, links)

		styles := make(map[string]struct{})
		for _, s := range dom.ElementsByTag(head, "style") {
			if markup, err := dom.Render(s); err == nil {
				styles[markup] = struct{}{}
			}
		}
		styleSets = append(styleSets, styles)

		scripts := make(map[string]struct{})
		for _, s := range dom.ElementsByTag(head, "script") {
			if dom.Attr(s, "src") == "" && !hasText(s) {
				continue
			}
			if markup, err := dom.Render(s); err == nil {
				scripts[markup] = struct{}{}
			}
		}
		scriptSets = append(scriptSets, scripts)
	}

	if withHead == 0 {
		return
	}

	commonMetas := intersect(metaSets)
	commonLinks := intersect(linkSets)
	commonStyles := intersect(styleSets)
	commonScripts := intersect(scriptSets)

	rawSuffix := longestCommonSuffix(titles)
	frags.TitleSuffix = strings.Trim(rawSuffix, titleSeparators)
	for i, title := range titles {
		residual := title
		if rawSuffix != "" {
			residual = strings.Trim(title[:len(title)-len(rawSuffix)], titleSeparators)
		}
		frags.ResidualTitles[titledPages[i]] = residual
	}

	titleLine := "<title>" + model.TitlePlaceholder + "</title>"
	if frags.TitleSuffix != "" {
		titleLine = "<title>" + model.TitlePlaceholder + " " + frags.TitleSuffix + "</title>"
	}
	frags.TitleMeta = joinLines(append([]string{titleLine}, append(sorted(commonMetas), sorted(commonLinks)...)...))

	// Stylesheet links come verbatim from the first document; template
	// corpora carry a uniform stylesheet set per page.
	var cssLines []string
	if head := pages[0].Head(); head != nil {
		for _, l := range dom.ElementsByTag(head, "link") {
			if !isStylesheet(l) {
				continue
			}
			if markup, err := dom.Render(l); err == nil {
				cssLines = append(cssLines, markup)
			}
		}
	}
	cssLines = append(cssLines, sorted(commonStyles)...)
	cssLines = append(cssLines, sorted(commonScripts)...)
	frags.HeadCSS = joinLines(cssLines)
}

// extractFooter intersects body script sources across pages and keeps one
// representative markup per shared source.
func (e *Extractor) extractFooter(pages []*model.Page, frags *model.CommonFragments) {
	var srcSets []map[string]struct{}
	representatives := make(map[string]string)

	for _, page := range pages {
		body := page.Body()
		if body == nil {
			e.logger.Debug("page has no body, skipping footer intersection", "page", page.RelPath)
			continue
		}
		srcs := make(map[string]struct{})
		for _, s := range dom.ElementsByTag(body, "script") {
			src := dom.Attr(s, "src")
			if src == "" {
				continue
			}
			srcs[src] = struct{}{}
			if _, ok := representatives[src]; !ok {
				if markup, err := dom.Render(s); err == nil {
					representatives[src] = markup
				}
			}
		}
		srcSets = append(srcSets, srcs)
	}

	common := intersect(srcSets)
	frags.FooterScriptSrcs = common

	var lines []string
	for _, src := range sorted(common) {
		lines = append(lines, representatives[src])
	}
	frags.FooterScripts = joinLines(lines)
}

// isStylesheet reports whether a link element is a stylesheet link.
func isStylesheet(n *html.Node) bool {
	return strings.EqualFold(strings.TrimSpace(dom.Attr(n, "rel")), "stylesheet")
}

// hasText reports whether n has a non-blank text child.
func hasText(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return true
		}
	}
	return false
}

// intersect returns the intersection of all sets. An empty input slice
// yields an empty set.
func intersect(sets []map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	if len(sets) == 0 {
		return out
	}
	for key := range sets[0] {
		inAll := true
		for _, s := range sets[1:] {
			if _, ok := s[key]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out[key] = struct{}{}
		}
	}
	return out
}

// sorted returns the set's keys in lexicographic order.
func sorted(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// joinLines joins non-empty lines with newlines.
func joinLines(lines []string) string {
	var kept []string
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// longestCommonSuffix returns the longest suffix shared by every string,
// computed as the common prefix of the reversed strings.
func longestCommonSuffix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	suffix := strs[0]
	for _, s := range strs[1:] {
		for !strings.HasSuffix(s, suffix) {
			// Drop the leading rune and retry.
			_, size := utf8.DecodeRuneInString(suffix)
			suffix = suffix[size:]
			if suffix == "" {
				return ""
			}
		}
	}
	return suffix
}
