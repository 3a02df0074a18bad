package model

// Fragment file names for the corpus-wide boilerplate partials.
const (
	// TitleMetaFragment holds the parameterized title plus the meta and
	// link elements shared by every page's head.
	TitleMetaFragment = "title-meta.html"

	// HeadCSSFragment holds stylesheet links, shared inline styles, and
	// shared head scripts.
	HeadCSSFragment = "head-css.html"

	// FooterScriptsFragment holds the body scripts shared by every page.
	FooterScriptsFragment = "footer-scripts.html"
)

// TitlePlaceholder is substituted per page with the residual title.
const TitlePlaceholder = "{{ page_title }}"

// CommonFragments is the corpus-wide boilerplate computed once by the
// head/footer extraction stage. Read-only after that stage completes.
type CommonFragments struct {
	// TitleMeta is the body of the title-meta fragment: a parameterized
	// title line followed by the intersected meta and link elements.
	TitleMeta string

	// HeadCSS is the body of the head-css fragment: stylesheet links
	// from the first document plus intersected styles and head scripts.
	HeadCSS string

	// FooterScripts is the body of the footer-scripts fragment: one
	// representative script element per shared source.
	FooterScripts string

	// FooterScriptSrcs is the set of script sources present in every
	// page's body. The rewrite stage removes body scripts whose src is
	// in this set.
	FooterScriptSrcs map[string]struct{}

	// TitleSuffix is the common title suffix shared by all pages, with
	// surrounding separator punctuation trimmed. Empty when titles share
	// no suffix.
	TitleSuffix string

	// ResidualTitles maps each page's RelPath to its title with the
	// common suffix stripped. Pages whose residual is empty receive an
	// unparameterized include.
	ResidualTitles map[string]string
}

// NewCommonFragments returns empty fragments. An empty corpus produces
// exactly this value: all intersections empty, no error.
func NewCommonFragments() *CommonFragments {
	return &CommonFragments{
		FooterScriptSrcs: make(map[string]struct{}),
		ResidualTitles:   make(map[string]string),
	}
}
