// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - TextWriter: The plain console report (the default output of strsize)
//   - MarkdownWriter: GitHub Flavored Markdown for documentation
//   - JSONWriter: Structured JSON output for tool integration
//   - YAMLWriter: Structured YAML output
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
