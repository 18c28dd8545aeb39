package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/strsize/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeEntries(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("String Table Report: " + codeSpan(report.TableName))
	md.PlainText("")
}

// writeSummary writes the pointer size summary table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Number of elements", strconv.Itoa(report.ElementCount)},
			{"Size of each pointer (`char *`)", bytesText(report.UnitSize)},
			{"Total pointer memory", bytesText(report.TotalSize)},
			{"Total string memory", bytesText(report.ContentSize)},
		},
	})
	md.PlainText("")

	md.Notef(
		"Pointer memory covers the %d pointers only. The strings themselves occupy %s.",
		report.ElementCount, bytesText(report.ContentSize),
	)
	md.PlainText("")
}

// writeEntries writes the per-string table and a size distribution chart.
func (w *MarkdownWriter) writeEntries(md *markdown.Markdown, report *model.Report) {
	md.H2("Size of the strings")
	md.PlainText("")

	if len(report.Entries) == 0 {
		md.PlainText("The table is empty.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Entries))
	for i, e := range report.Entries {
		rows[i] = []string{
			strconv.Itoa(e.Index),
			tableCell(codeSpan(e.Text)),
			bytesText(e.Length),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "String", "Length (with terminator)"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, report)
}

// writePieChart writes a mermaid pie chart of string lengths.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("String Memory Distribution"),
		piechart.WithShowData(true),
	)

	for _, e := range report.Entries {
		chart.LabelAndIntValue("String "+strconv.Itoa(e.Index), uint64(e.Length)) //nolint:gosec // lengths are never negative
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Pointer size measured on a %d-bit target.*", model.PointerBits())
}

// codeSpan wraps s in an inline code span. The fence is one backtick longer
// than the longest backtick run in s, and s is padded with spaces when it
// starts or ends with a backtick.
func codeSpan(s string) string {
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

// tableCell escapes the characters that would break a table row.
// Pipes must be escaped even inside code spans.
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// bytesText formats a byte count the way the text report does.
func bytesText(n int) string {
	return strconv.Itoa(n) + " bytes"
}
