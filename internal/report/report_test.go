package report

import (
	"strings"
	"testing"

	"github.com/Anant-Navadiya/partial-extractor/internal/model"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("full summary", func(t *testing.T) {
		t.Parallel()

		summary := &model.Summary{
			SourceDir:      "/src",
			DestDir:        "/dest",
			PageCount:      3,
			CandidateCount: 5,
			TitleSuffix:    "Acme Inc.",
			Fragments: []model.FragmentSummary{
				{File: "title-meta.html", Lines: 4},
				{File: "head-css.html", Lines: 2},
				{File: "footer-scripts.html", Lines: 3},
			},
			Partials: []model.PartialSummary{
				{File: "partial_1_nav.html", Tag: "nav", Instances: 3, Pages: []string{"about.html", "index.html"}},
			},
		}

		data, err := Render(summary)
		if err != nil {
			t.Fatal(err)
		}
		got := string(data)

		for _, want := range []string{
			"# Partial Extraction Report",
			"## Shared Fragments",
			"## Extracted Components",
			"`/src`",
			"`/dest`",
			"Acme Inc.",
			"Title Meta",
			"`title-meta.html`",
			"`partial_1_nav.html`",
			"about.html, index.html",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("report missing %q:\n%s", want, got)
			}
		}
		if strings.Contains(got, "Skipped Documents") {
			t.Errorf("skipped section present without skips:\n%s", got)
		}
	})

	t.Run("no partials", func(t *testing.T) {
		t.Parallel()

		data, err := Render(&model.Summary{SourceDir: "/src", DestDir: "/dest"})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "No recurring components were detected.") {
			t.Errorf("empty-cluster note missing:\n%s", data)
		}
	})

	t.Run("skipped documents are listed", func(t *testing.T) {
		t.Parallel()

		data, err := Render(&model.Summary{
			SourceDir:    "/src",
			DestDir:      "/dest",
			SkippedPages: []string{"broken.html"},
		})
		if err != nil {
			t.Fatal(err)
		}
		got := string(data)
		if !strings.Contains(got, "## Skipped Documents") {
			t.Errorf("skipped section missing:\n%s", got)
		}
		if !strings.Contains(got, "broken.html") {
			t.Errorf("skipped page missing:\n%s", got)
		}
	})
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"title-meta.html", "Title Meta"},
		{"head-css.html", "Head Css"},
		{"footer-scripts.html", "Footer Scripts"},
	}
	for _, tt := range tests {
		if got := displayName(tt.in); got != tt.want {
			t.Errorf("displayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
