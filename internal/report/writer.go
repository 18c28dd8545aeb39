package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/strsize/internal/config"
	"github.com/nao1215/strsize/internal/model"
)

// Writer defines the interface for report output.
// Implementations write a report in one format to one destination.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// MultiWriter writes to multiple Writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// NewWriter returns the Writer for the given format.
// indent is the indentation width used by the json and yaml formats;
// zero selects compact JSON.
func NewWriter(format config.Format, output io.Writer, indent int) (Writer, error) {
	switch format {
	case config.FormatText:
		return NewTextWriter(output), nil
	case config.FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case config.FormatJSON:
		if indent > 0 {
			return NewJSONWriter(output, WithIndent("", strings.Repeat(" ", indent))), nil
		}
		return NewJSONWriter(output), nil
	case config.FormatYAML:
		return NewYAMLWriter(output, WithYAMLIndent(indent)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
