package report

import (
	"bytes"
	"io"

	"github.com/nao1215/strsize/internal/config"
	"github.com/nao1215/strsize/internal/model"
	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs reports in YAML format.
type YAMLWriter struct {
	baseWriter

	// indent is the number of spaces per nesting level.
	// yaml.v3 falls back to 2 for values below 2.
	indent int
}

// YAMLWriterOption configures a YAMLWriter.
type YAMLWriterOption func(*YAMLWriter)

// WithYAMLIndent sets the number of spaces per nesting level.
func WithYAMLIndent(spaces int) YAMLWriterOption {
	return func(w *YAMLWriter) {
		if spaces >= 0 {
			w.indent = spaces
		}
	}
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer, opts ...YAMLWriterOption) *YAMLWriter {
	w := &YAMLWriter{
		baseWriter: newBaseWriter(output),
		indent:     config.DefaultIndent,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report as a single YAML document.
func (w *YAMLWriter) Write(report *model.Report) (int, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(w.indent)
	if err := enc.Encode(report); err != nil {
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
