package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	verbose    bool
	reportPath string
	logger     = newLogger(os.Stderr, log.InfoLevel)
)

var rootCmd = &cobra.Command{
	Use:   "imgconv <input_file> -to <output_format>",
	Short: "Convert a raster image to another container format",
	Long: `imgconv decodes one image (PNG, JPEG, GIF, BMP, TIFF, PNM or WebP)
and re-encodes it as png, jpg/jpeg/jfif, webp, bmp, tga or pnm.

The output is written next to the input with the extension replaced:
  imgconv photo.tiff -to png   ->  photo.png

pnm output picks the narrowest variant: P4 for black-and-white images,
P5 for grayscale, P6 otherwise.`,
	Version:       version,
	Args:          validateArgs,
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		logger.SetLevel(level)
	},
}

// Execute runs the root command. Errors have already been logged when it
// returns.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "write a JSON conversion report to this file")
	// "-to" is positional; stop flag parsing at the input file so pflag
	// never sees it as a cluster of shorthand flags.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgconv %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// newLogger creates a timestamped logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "imgconv",
	})
}
