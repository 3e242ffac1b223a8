package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/fake-useragent/internal/config"
	"github.com/oshokin/fake-useragent/internal/logger"
	"github.com/oshokin/fake-useragent/internal/toolconfig"
)

// Output formats of the check-config command.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ErrUnknownOutputFormat indicates that the requested report format is not supported.
var ErrUnknownOutputFormat = errors.New("unknown output format")

// CheckConfigOptions controls the check-config command.
type CheckConfigOptions struct {
	// Section overrides the configured tooling section.
	Section string
	// Strict checks the exact project values instead of the baseline.
	Strict bool
	// Output is the report format: text or yaml.
	Output string
}

// ExecuteCheckConfigCommand validates the tooling section of every given metadata file.
// With no files, the configured metadata file is checked.
// Reports are written to w; the returned error joins every load failure and finding.
func ExecuteCheckConfigCommand(
	ctx context.Context,
	cfg *config.Config,
	w io.Writer,
	files []string,
	opts CheckConfigOptions,
) error {
	output := strings.ToLower(strings.TrimSpace(opts.Output))
	if output == "" {
		output = OutputText
	}

	if output != OutputText && output != OutputYAML {
		return fmt.Errorf("%w: '%s'", ErrUnknownOutputFormat, opts.Output)
	}

	if len(files) == 0 {
		files = []string{cfg.MetadataFile}
	}

	section := opts.Section
	if section == "" {
		section = cfg.ToolSection
	}

	requirements := toolconfig.DefaultRequirements()
	if opts.Strict {
		requirements = toolconfig.ProjectRequirements()
	}

	loader, err := toolconfig.NewLoader(len(files))
	if err != nil {
		return err
	}

	var errs []error

	for i, file := range files {
		settings, loadErr := loader.Load(file, section)
		if loadErr != nil {
			logger.Errorf(ctx, "Failed to load '%s': %v", file, loadErr)

			errs = append(errs, loadErr)

			continue
		}

		report := toolconfig.Validate(settings, requirements)

		logger.DebugKV(ctx, "Checked tooling settings",
			"file", file, "section", section, "strict", opts.Strict, "findings", len(report.Findings))

		if writeErr := writeReport(w, report, output, i > 0); writeErr != nil {
			return writeErr
		}

		errs = append(errs, report.Err())
	}

	return errors.Join(errs...)
}

func writeReport(w io.Writer, report *toolconfig.Report, output string, separate bool) error {
	var sb strings.Builder

	switch output {
	case OutputYAML:
		out, err := report.YAML()
		if err != nil {
			return err
		}

		if separate {
			sb.WriteString("---\n")
		}

		sb.Write(out)
	default:
		if report.OK() {
			fmt.Fprintf(&sb, "%s [%s]: OK\n", report.File, report.Section)

			break
		}

		fmt.Fprintf(&sb, "%s [%s]: %d problem(s)\n", report.File, report.Section, len(report.Findings))

		for _, f := range report.Findings {
			fmt.Fprintf(&sb, "  - %s: %s\n", f.Key, f.Message)
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
