package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nao1215/strsize/internal/config"
	"github.com/nao1215/strsize/internal/log"
	"github.com/nao1215/strsize/internal/model"
	"github.com/nao1215/strsize/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for strsize.
// Running it without flags prints the text report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Report the memory footprint of a fixed array of C strings",
		Long: `strsize reports on the 'institute' array of string pointers:

- the number of elements in the array
- the size of each pointer (char *) on this platform
- the total memory allocated for the pointers
- the length of each string, including its terminating NUL byte

Pointer sizes depend only on the target platform (8 bytes on 64-bit,
4 bytes on 32-bit), never on the strings themselves.

Examples:
  # Print the report
  strsize

  # Print the report as Markdown
  strsize --format markdown

  # Print the report as pretty-printed JSON
  strsize -f json -i 4`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	// Report flags
	cmd.Flags().StringP("format", "f", config.DefaultFormat.String(),
		"Output format ("+formatList()+")")
	cmd.Flags().IntP("indent", "i", config.DefaultIndent,
		"Indentation width for json and yaml output (0 for compact JSON)")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// formatList returns the supported formats as a comma-separated list.
func formatList() string {
	formats := config.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd executes the report.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	return runReport(cmd.OutOrStdout(), cfg, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	cfg.Format, err = config.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("invalid --format: %w", err)
	}

	cfg.Indent, err = cmd.Flags().GetInt("indent")
	if err != nil {
		return nil, err
	}

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.LogJSON, err = cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on the configuration.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	var logger *slog.Logger
	if cfg.LogJSON {
		logger = log.NewJSONLogger(w, cfg.Verbose)
	} else {
		logger = log.NewLogger(w, cfg.Verbose)
	}
	return log.ForComponent(logger, "reporter")
}

// runReport derives the report for the institute table and writes it to w.
func runReport(w io.Writer, cfg *config.Config, logger *slog.Logger) error {
	table := model.Institutes()
	r := model.NewReport(table)

	logger.Debug("report derived",
		"table", r.TableName,
		"elements", r.ElementCount,
		"unitSize", r.UnitSize,
		"totalSize", r.TotalSize,
		"contentSize", r.ContentSize,
		"lengths", r.Lengths(),
	)

	writer, err := report.NewWriter(cfg.Format, w, cfg.Indent)
	if err != nil {
		return err
	}

	n, err := writer.Write(r)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Debug("report written", "format", cfg.Format.String(), "bytes", n)
	return nil
}
