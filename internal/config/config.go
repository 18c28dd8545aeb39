package config

import (
	"fmt"
	"strings"
)

// AppName is the application name used in version output and logs.
const AppName = "strsize"

// Format selects how a report is rendered.
type Format string

// Supported output formats.
const (
	// FormatText is the plain console report. It is the default.
	FormatText Format = "text"
	// FormatMarkdown renders the report as GitHub Flavored Markdown.
	FormatMarkdown Format = "markdown"
	// FormatJSON renders the report as JSON.
	FormatJSON Format = "json"
	// FormatYAML renders the report as YAML.
	FormatYAML Format = "yaml"
)

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML}
}

// String returns the flag value of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if f is a supported format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat converts a flag value into a Format.
// Matching is case-insensitive and ignores surrounding whitespace.
// "md" is accepted as an alias for markdown and "yml" for yaml.
func ParseFormat(s string) (Format, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	}

	f := Format(v)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Default configuration values.
const (
	// DefaultFormat keeps the console report as the default output.
	DefaultFormat = FormatText

	// DefaultIndent is the indentation width for json and yaml output.
	DefaultIndent = 2

	// MinIndent is the smallest accepted indent. Zero means compact JSON.
	MinIndent = 0

	// MaxIndent is the largest accepted indent.
	MaxIndent = 8
)

// Config holds all configuration options for strsize.
// It is populated from CLI flags and passed to the command explicitly
// rather than kept in global state.
type Config struct {
	// Format is the output format of the report.
	Format Format

	// Indent is the number of spaces per nesting level in json and yaml
	// output. It is ignored by the text and markdown formats.
	Indent int

	// Verbose enables debug logging on stderr.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogJSON switches the log handler from text to JSON.
	LogJSON bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format: DefaultFormat,
		Indent: DefaultIndent,
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if !c.Format.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	if c.Indent < MinIndent || c.Indent > MaxIndent {
		return ErrInvalidIndent
	}

	return nil
}
