package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgconv-cli/internal/encoder"
	"github.com/AnyUserName/imgconv-cli/internal/pipeline"
	"github.com/AnyUserName/imgconv-cli/internal/report"
)

const toFlag = "-to"

// validateArgs enforces "<input_file> -to <output_format>". An unknown
// format also lists the valid set on stderr.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: %s <input_file> -to <output_format>",
			pipeline.ErrInvalidArguments, cmd.Root().Name())
	}
	if args[1] != toFlag {
		return fmt.Errorf("%w: expected '%s' flag, got %q", pipeline.ErrInvalidArguments, toFlag, args[1])
	}
	if _, ok := encoder.ValidateFormatName(args[2]); !ok {
		fmt.Fprint(cmd.ErrOrStderr(), validFormats())
		return fmt.Errorf("%w: invalid output format: %s", pipeline.ErrInvalidArguments, args[2])
	}
	return nil
}

func validFormats() string {
	var sb strings.Builder
	sb.WriteString("Valid image formats are:\n")
	for _, name := range encoder.Names() {
		fmt.Fprintf(&sb, "  %s\n", name)
	}
	return sb.String()
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	format, _ := encoder.ValidateFormatName(args[2])

	output, err := pipeline.OutputName(input, format)
	if err != nil {
		return err
	}
	logger.Debug("converting", "input", input, "output", output)

	p := pipeline.New(pipeline.Config{Logger: logger})
	res, err := p.Convert(input, output)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if reportPath != "" {
		if err := report.WriteJSON(res.Report(), reportPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Debug("report written", "path", reportPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", output)
	return nil
}

// Main runs the CLI and exits with status 1 on any failure.
func Main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
