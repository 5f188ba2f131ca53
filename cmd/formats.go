package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeisme/fsummary/pkg/configs"
	"github.com/yeisme/fsummary/pkg/summary"
)

var formatsNoColor bool

// formatsCmd 列出可识别的扩展名
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the file extensions fsummary recognizes",
	Long: `
List the recognized file extensions with their format and language.
Files with any other extension are analyzed as plain text.

Examples:
  fsummary formats
  fsummary formats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := configs.GetOutputFormatFromFlags(cmd, configs.FormatText)
		if err != nil {
			return err
		}
		color := appCtx.Config.Output.Color && !formatsNoColor
		return summary.ExecuteFormatsCommand(format, color, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)

	formatsCmd.Flags().StringP("format", "f", "", "Output format (text, plain, json, yaml, toml)")
	formatsCmd.Flags().Bool("json", false, "Output in JSON format")
	formatsCmd.Flags().Bool("yaml", false, "Output in YAML format")
	formatsCmd.Flags().BoolVar(&formatsNoColor, "no-color", false, "Disable color output")
}
