package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/fsummary/pkg/configs"
	"github.com/yeisme/fsummary/pkg/utils/schema"
)

var (
	noColor bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage fsummary configuration",
		Long:    `fsummary config allows you to view and manage your fsummary configuration settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate fsummary configuration",
		Long: `fsummary config validate checks the configuration file and environment variables.

The configuration is loaded and validated before every command, so reaching
this command means the values are usable; it reports which file was used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileUsed := appCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fileUsed = "(none, using defaults)"
			}
			log.Info().Msgf("Config file used: %s", fileUsed)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid\nConfig file: %s\n", fileUsed)
			return err
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List fsummary configuration",
		Long: `fsummary config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app:    Application settings
  - log:    Logging settings
  - output: Report format and styling
  - load:   File loading limits
  - watch:  Watch mode settings

Examples:
  fsummary config list                    # Show all configuration (viper raw data)
  fsummary config list --all              # Show all configuration with defaults
  fsummary config list output             # Show only output settings
  fsummary config list --format json      # Output in JSON format
  fsummary config list load --all --toml  # Show load config with defaults in TOML`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format, err := configs.GetOutputFormatFromFlags(cmd, configs.FormatYAML)
			if err != nil {
				return err
			}
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(appCtx.Viper, section, showAll)
			if err != nil {
				return fmt.Errorf("error getting config section: %w", err)
			}

			return configs.OutputData(data, format, cmd.OutOrStdout(), !noColor)
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize fsummary configuration",
		Long: `fsummary config init creates a new configuration file with default settings.

Examples:
  fsummary config init                                 # Create .fsummary.yaml in current directory
  fsummary config init --path ~/.config/fsummary/fsummary.yaml
  fsummary config init --format json                   # Create JSON format config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")
			force, _ := cmd.Flags().GetBool("force")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				return err
			}

			if path == "" {
				switch format {
				case configs.FormatYAML:
					path = ".fsummary.yaml"
				case configs.FormatJSON:
					path = ".fsummary.json"
				case configs.FormatTOML:
					path = ".fsummary.toml"
				default:
					return fmt.Errorf("%s format is not supported for config files", format)
				}
			}

			if err := configs.CreateDefaultConfig(path, format, force); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}

			log.Info().Msgf("Config file created successfully: %s", path)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", path)
			return err
		},
	}

	configSchemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("output")
			if out == "" {
				return schema.GenConfigSchema(cmd.OutOrStdout())
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer func() {
				_ = f.Close()
			}()
			return schema.GenConfigSchema(f)
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
		configSchemaCmd,
	)

	// config list 标志
	configListCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	// config init 标志
	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	// config schema 标志
	configSchemaCmd.Flags().StringP("output", "o", "", "Write the schema to a file instead of stdout")
}
