package config

import "errors"

// Configuration validation errors.
// These errors are returned by ParseFormat and Config.Validate and can be
// matched with errors.Is.
var (
	// ErrUnknownFormat is returned when the output format is not one of
	// text, markdown, json or yaml.
	ErrUnknownFormat = errors.New("unknown output format: must be one of text, markdown, json, yaml")

	// ErrInvalidIndent is returned when the indent width is outside
	// [MinIndent, MaxIndent].
	ErrInvalidIndent = errors.New("invalid indent: must be between 0 and 8")
)
