package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/yeisme/fsummary/pkg/configs"
	"github.com/yeisme/fsummary/pkg/summary"
)

// analyzeFlags analyze 命令（以及根命令简写）的标志
type analyzeFlags struct {
	noColor     bool
	watch       bool
	query       string
	maxFileSize string
	width       int
}

var (
	rootAnalyzeFlags    analyzeFlags
	analyzeCommandFlags analyzeFlags
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a file and print its summary",
	Long: `
Analyze a single file and print a summary report.

The format is detected from the extension (.txt, .md, .log and source files
such as .rs, .go, .py, .js, .ts). Other extensions are analyzed as plain text.
Without a file argument an interactive picker lists the supported files
under the current directory.

Examples:
  # Styled terminal report
  fsummary analyze README.md

  # Machine readable output
  fsummary analyze app.log --json
  fsummary analyze main.go --format yaml

  # Re-run the analysis whenever the file is saved
  fsummary analyze app.log --watch

  # Pick interactively among files matching "handler"
  fsummary analyze --query handler`,
	Aliases: []string{"a", "summary"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args, &analyzeCommandFlags)
	},
}

func addAnalyzeFlags(cmd *cobra.Command, f *analyzeFlags) {
	cmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("yaml", false, "Output in YAML format")
	cmd.Flags().Bool("toml", false, "Output in TOML format")
	cmd.Flags().Bool("markdown", false, "Output as a rendered markdown report")
	cmd.Flags().Bool("plain", false, "Output as unstyled plain text")
	cmd.MarkFlagsMutuallyExclusive("format", "json", "yaml", "toml", "markdown", "plain")

	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "Watch the file and re-analyze on change")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Filter candidates of the interactive picker")
	cmd.Flags().StringVar(&f.maxFileSize, "max-file-size", "", "Refuse files larger than this size (e.g. 10MB, 0 for no limit)")
	cmd.Flags().IntVar(&f.width, "width", 0, "Report width, 0 detects the terminal width")
}

// runAnalyze 合并配置与命令行标志后执行分析
func runAnalyze(cmd *cobra.Command, args []string, f *analyzeFlags) error {
	opts, err := summary.OptionsFromConfig(appCtx)
	if err != nil {
		return err
	}

	format, err := configs.GetOutputFormatFromFlags(cmd, opts.Render.Format)
	if err != nil {
		return err
	}
	opts.Render.Format = format
	if f.noColor {
		opts.Render.Color = false
	}
	if f.width > 0 {
		opts.Render.Width = f.width
	}
	if f.maxFileSize != "" {
		size, err := parseSize(f.maxFileSize)
		if err != nil {
			return err
		}
		opts.Load.MaxSize = size
	}
	opts.Watch = f.watch
	opts.Query = f.query

	log.Debug().
		Str("format", string(opts.Render.Format)).
		Bool("watch", opts.Watch).
		Int64("max_size", opts.Load.MaxSize).
		Dur("debounce", opts.Debounce).
		Msg("analyze options")

	return summary.ExecuteAnalyzeCommand(appCtx, opts, args, cmd.OutOrStdout())
}

func parseSize(s string) (int64, error) {
	if strings.TrimSpace(s) == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --max-file-size %q: %w", s, err)
	}
	return int64(n), nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addAnalyzeFlags(analyzeCmd, &analyzeCommandFlags)
}
