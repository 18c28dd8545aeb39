// Package config provides the configuration structure for strsize.
// It defines how a report is rendered (output format, indentation)
// and how much the tool logs while producing it.
//
// Configuration comes from command-line flags only. No configuration file
// or environment variable is consulted, so the bare invocation always
// behaves the same.
package config
