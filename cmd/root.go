// Package cmd provides command-line interface commands for fsummary
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/spf13/cobra"
	gctx "github.com/yeisme/fsummary/pkg/context"
	log2 "github.com/yeisme/fsummary/pkg/utils/log"
	"github.com/yeisme/fsummary/pkg/utils/version"
)

var (
	appCtx *gctx.AppContext
	log    log2.Logger

	// Global flags
	globalFlags gctx.GlobalFlags

	cpuProfileFile *os.File
	traceFile      *os.File
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fsummary [file]",
	Short: "fsummary summarizes a text, markdown, log or source file",
	Long: `fsummary reads a single file, detects its format from the extension and prints
basic statistics together with format specific insights:

  - plain text: most frequent words
  - markdown:   headers, links, images and code blocks
  - logs:       level counts, error samples and time range
  - source:     functions, types, imports, comments and TODOs

Examples:
  fsummary notes.md               # same as: fsummary analyze notes.md
  fsummary analyze app.log --json
  fsummary analyze                # pick a file interactively`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if globalFlags.VersionEnable {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return err
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		return runAnalyze(cmd, args, &rootAnalyzeFlags)
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if globalFlags.CPUProfile != "" {
			f, err := os.Create(globalFlags.CPUProfile)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				_ = f.Close()
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			cpuProfileFile = f
		}
		if globalFlags.Trace != "" {
			f, err := os.Create(globalFlags.Trace)
			if err != nil {
				return fmt.Errorf("could not create trace file: %w", err)
			}
			if err := trace.Start(f); err != nil {
				_ = f.Close()
				return fmt.Errorf("could not start trace: %w", err)
			}
			traceFile = f
		}

		ctx, err := gctx.InitAppContext(context.Background(),
			globalFlags.ConfigPath, globalFlags.Debug, globalFlags.Verbose, globalFlags.Quiet)
		if err != nil {
			return err
		}
		appCtx = ctx
		log = ctx.Logger

		log.Info().Msgf("Execute Command: %s %s", "fsummary", strings.Join(os.Args[1:], " "))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		stopProfiling()
	},
}

func stopProfiling() {
	if cpuProfileFile != nil {
		pprof.StopCPUProfile()
		_ = cpuProfileFile.Close()
		cpuProfileFile = nil
	}
	if traceFile != nil {
		trace.Stop()
		_ = traceFile.Close()
		traceFile = nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// 出错时在 stderr 打印错误并以状态码 1 退出
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stopProfiling()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVar(&globalFlags.CPUProfile, "cpu-profile", "", "write cpu profile to `file`")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Trace, "trace", "", "write execution trace to `file`")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")

	addAnalyzeFlags(rootCmd, &rootAnalyzeFlags)
}
