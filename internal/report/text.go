package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/strsize/internal/model"
)

// TextWriter outputs the plain console report.
//
// The layout is fixed and byte-stable; scripts may scrape it:
//
//	Number of elements in the array: 3
//	Size of each pointer (char *): 8 bytes
//	Total memory allocated for the 'institute' array: 24 bytes
//
//	Size of the strings:
//	String 1: "National Institute of Technology" - Length: 33 bytes
//	...
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in one call to the underlying writer.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeSummary(&sb, report)
	sb.WriteString("\n")
	w.writeEntries(&sb, report)

	return io.WriteString(w.output, sb.String())
}

// writeSummary writes the count and pointer size lines.
func (w *TextWriter) writeSummary(sb *strings.Builder, report *model.Report) {
	fmt.Fprintf(sb, "Number of elements in the array: %d\n", report.ElementCount)
	fmt.Fprintf(sb, "Size of each pointer (char *): %d bytes\n", report.UnitSize)
	fmt.Fprintf(sb, "Total memory allocated for the '%s' array: %d bytes\n", report.TableName, report.TotalSize)
}

// writeEntries writes one line per string, in table order.
func (w *TextWriter) writeEntries(sb *strings.Builder, report *model.Report) {
	sb.WriteString("Size of the strings:\n")
	for _, e := range report.Entries {
		fmt.Fprintf(sb, "String %d: \"%s\" - Length: %d bytes\n", e.Index, e.Text, e.Length)
	}
}
