// Package partial emits shared fragments and builds the include
// directives that reference them.
//
// The emitter serializes one representative per cluster. It works from
// the representative's pristine raw markup, re-parsed independently of
// the canonical form: canonical trees exist only for hashing and discard
// content real pages need, so they are never emitted.
package partial

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/goccy/go-json"

	"github.com/Anant-Navadiya/partial-extractor/internal/dom"
	"github.com/Anant-Navadiya/partial-extractor/internal/model"
)

// PartialsDirRef is the relative directory prefix used inside include
// directives. Output pages sit beside the partials directory in the
// destination tree, so the reference is stable across the corpus.
const PartialsDirRef = "./partials/"

// IncludeStatement builds an include directive for the named fragment.
// When params carries at least one non-empty value, the payload is
// serialized as an indented JSON object after the path.
func IncludeStatement(name string, params map[string]string) string {
	if !hasValues(params) {
		return fmt.Sprintf("@@include('%s%s')", PartialsDirRef, name)
	}
	payload, err := json.MarshalIndent(params, "", "    ")
	if err != nil {
		// A map[string]string cannot fail to marshal; fall back to the
		// bare include rather than emit a broken directive.
		return fmt.Sprintf("@@include('%s%s')", PartialsDirRef, name)
	}
	return fmt.Sprintf("@@include('%s%s', %s)", PartialsDirRef, name, payload)
}

// hasValues reports whether any parameter value is non-empty.
func hasValues(params map[string]string) bool {
	for _, v := range params {
		if v != "" {
			return true
		}
	}
	return false
}

// Emitter turns clusters into named partials.
type Emitter struct {
	logger *slog.Logger
}

// NewEmitter creates an Emitter.
func NewEmitter(logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{logger: logger}
}

// Emit produces one partial per cluster, in cluster order. Names are
// ordinal: partial_<n>_<roottag>.html, 1-based. A cluster whose
// representative markup no longer parses to an element is skipped with a
// warning; its members stay claimed but produce no partial and no
// rewrite.
func (e *Emitter) Emit(clusters []*model.Cluster) []*model.Partial {
	partials := make([]*model.Partial, 0, len(clusters))
	for i, c := range clusters {
		rep := c.Representative()
		root, err := dom.ParseFragment(rep.RawMarkup)
		if err != nil || root == nil {
			e.logger.Warn("skipping cluster with unparseable representative",
				"cluster", i+1,
				"candidate", rep.ID,
			)
			continue
		}
		body, err := dom.Render(root)
		if err != nil {
			e.logger.Warn("skipping cluster: representative failed to serialize",
				"cluster", i+1,
				"candidate", rep.ID,
			)
			continue
		}

		p := &model.Partial{
			Name: fmt.Sprintf("partial_%d_%s.html", len(partials)+1, root.Data),
			Body: body,
		}
		for _, member := range c.Members {
			p.Instances = append(p.Instances, model.Instance{
				CandidateID: member.ID,
				PagePath:    member.PagePath,
			})
		}
		partials = append(partials, p)
	}
	return partials
}

// InstancePages returns the distinct page paths of a partial's instances
// in sorted order.
func InstancePages(p *model.Partial) []string {
	seen := make(map[string]struct{})
	for _, inst := range p.Instances {
		seen[inst.PagePath] = struct{}{}
	}
	pages := make([]string, 0, len(seen))
	for page := range seen {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}
