package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/fsummary/pkg/configs"
	"github.com/yeisme/fsummary/pkg/style"
	"github.com/yeisme/fsummary/pkg/utils/version"
)

var (
	// Version command flags
	versionDetailed bool
	versionJSON     bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `
Display version information for fsummary.

Examples:
  # Show short version info (default)
  fsummary version

  # Show detailed version info with module dependencies
  fsummary version --detailed

  # Show version info in JSON format
  fsummary version --json

Notes:
  - The release link is only shown for tagged semantic versions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		switch {
		case versionJSON:
			return configs.OutputData(version.GetVersion(), configs.FormatJSON, out, false)
		case versionDetailed:
			info := version.GetVersion()
			if _, err := fmt.Fprintln(out, version.GetVersionString()); err != nil {
				return err
			}
			if len(info.Deps) == 0 {
				return nil
			}
			rows := make([][]string, 0, len(info.Deps))
			for _, d := range info.Deps {
				rows = append(rows, []string{d.Path, d.Version})
			}
			return style.NewPrinter(out, appCtx.Config.Output.Color).Table([]string{"module", "version"}, rows, 0)
		default:
			_, err := fmt.Fprintln(out, version.GetShortVersionString())
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "show detailed version information")
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "output version information in JSON format")
}
