// Package report renders the run summary as Markdown.
//
// The report is written beside the refactored output so whoever runs the
// tool can review what was extracted and from where before committing
// the result.
package report

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Anant-Navadiya/partial-extractor/internal/model"
)

// titleCaser turns fragment file names into section headings.
var titleCaser = cases.Title(language.English)

// Render produces the Markdown run summary.
func Render(summary *model.Summary) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	writeHeader(md, summary)
	writeFragments(md, summary)
	writePartials(md, summary)
	writeSkipped(md, summary)

	if err := md.Build(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeHeader writes the run overview table.
func writeHeader(md *markdown.Markdown, summary *model.Summary) {
	md.H1("Partial Extraction Report")
	md.PlainText("")

	rows := [][]string{
		{"Source", "`" + summary.SourceDir + "`"},
		{"Destination", "`" + summary.DestDir + "`"},
		{"Pages Processed", strconv.Itoa(summary.PageCount)},
		{"Pages Skipped", strconv.Itoa(len(summary.SkippedPages))},
		{"Candidates Mined", strconv.Itoa(summary.CandidateCount)},
		{"Cluster Partials", strconv.Itoa(len(summary.Partials))},
	}
	if summary.TitleSuffix != "" {
		rows = append(rows, []string{"Shared Title Suffix", "`" + summary.TitleSuffix + "`"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFragments lists the corpus-wide boilerplate fragments.
func writeFragments(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Shared Fragments")
	md.PlainText("")

	rows := make([][]string, 0, len(summary.Fragments))
	for _, f := range summary.Fragments {
		rows = append(rows, []string{displayName(f.File), "`" + f.File + "`", strconv.Itoa(f.Lines)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Fragment", "File", "Lines"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePartials lists the extracted cluster partials.
func writePartials(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Extracted Components")
	md.PlainText("")

	if len(summary.Partials) == 0 {
		md.PlainText("No recurring components were detected.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(summary.Partials))
	for _, p := range summary.Partials {
		rows = append(rows, []string{
			"`" + p.File + "`",
			"`<" + p.Tag + ">`",
			strconv.Itoa(p.Instances),
			strings.Join(p.Pages, ", "),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Partial", "Component", "Instances", "Pages"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSkipped notes any documents absent from the output.
func writeSkipped(md *markdown.Markdown, summary *model.Summary) {
	if len(summary.SkippedPages) == 0 {
		return
	}
	md.H2("Skipped Documents")
	md.PlainText("")
	md.Warning("The following documents failed to process and are absent from the output.")
	md.PlainText("")
	md.BulletList(summary.SkippedPages...)
	md.PlainText("")
}

// displayName turns a fragment file name into a heading-style label,
// e.g. "title-meta.html" becomes "Title Meta".
func displayName(file string) string {
	base := strings.TrimSuffix(file, ".html")
	return titleCaser.String(strings.ReplaceAll(base, "-", " "))
}
