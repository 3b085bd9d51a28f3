package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/teranos/cleantype/am"
	"github.com/teranos/cleantype/cmd/cleantype/display"
	"github.com/teranos/cleantype/errors"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show and manage configuration",
		Long: `Display and manage cleantype configuration.

Configuration sources (in order of precedence):
1. Environment variables (CLEANTYPE_* prefix, e.g. CLEANTYPE_CLEAN_FORCE_EAST_CONST)
2. Project config (.cleantype.toml, searched upward from the working directory)
3. User config (~/.cleantype/config.toml)
4. System config (/etc/cleantype/config.toml)
5. Default values

--config <file> replaces the whole cascade with a single file.

Examples:
  cleantype config show                       # Show current configuration
  cleantype config show --format json         # Show configuration in JSON format
  cleantype config get clean.undesirable_nodes
  cleantype config set clean.force_east_const true
  cleantype config where                      # Show where each setting comes from`,
	}

	configCmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigInitCmd(),
		newConfigValidateCmd(),
		newConfigCheckCmd(),
		newConfigWhereCmd(),
	)
	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective cleantype configuration from all sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				if err := display.OutputJSON(out, cfg); err != nil {
					return err
				}

			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to YAML")
				}
				fmt.Fprintf(out, "# cleantype configuration\n%s", string(data))

			case "toml":
				data, err := toml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to TOML")
				}
				fmt.Fprintf(out, "# cleantype configuration\n%s", string(data))

			default:
				return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	return cmd
}

// configViper returns the viper behind the active configuration
func configViper(cmd *cobra.Command) (*viper.Viper, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return am.FileViper(path)
	}
	return am.GetViper(), nil
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., clean.force_east_const, display.indent_depth_limit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			v, err := configViper(cmd)
			if err != nil {
				return err
			}
			if !v.IsSet(key) {
				return errors.WithHint(
					errors.Newf("configuration key %q not found", key),
					"run `cleantype config show` to list the available keys")
			}

			out := cmd.OutOrStdout()
			switch value := v.Get(key).(type) {
			case []string:
				for _, item := range value {
					fmt.Fprintln(out, item)
				}
			case []interface{}:
				for _, item := range value {
					fmt.Fprintln(out, item)
				}
			default:
				fmt.Fprintln(out, value)
			}
			return nil
		},
	}
}

// targetPath picks the file config set/init write to
func targetPath(cmd *cobra.Command, user bool) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	if user {
		path := am.UserConfigPath()
		if path == "" {
			return "", errors.New("could not determine home directory")
		}
		return path, nil
	}
	return filepath.Abs(am.ProjectConfigName)
}

func newConfigSetCmd() *cobra.Command {
	var user bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value in the project or user config file",
		Long: `Set a boolean, integer or string-list setting. Lists are comma-separated.
Writes ./.cleantype.toml unless --user is given; the previous file is kept
as .back1 (up to three backups).

Examples:
  cleantype config set clean.force_east_const true
  cleantype config set --user clean.extra_namespaces __debug,__profile`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := targetPath(cmd, user)
			if err != nil {
				return err
			}
			if err := am.SetValue(path, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s in %s\n", pterm.Green("✓"), args[0], args[1], path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&user, "user", false, "Write ~/.cleantype/config.toml instead of the project file")
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		user  bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file holding the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := targetPath(cmd, user)
			if err != nil {
				return err
			}
			if err := am.WriteDefaults(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", pterm.Green("✓"), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&user, "user", false, "Write ~/.cleantype/config.toml instead of the project file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Long:  "Validate that the effective cleantype configuration is valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration is valid\n", pterm.Green("✓"))
			return nil
		},
	}
}

func newConfigCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Check config files for unknown keys and invalid values",
		Long: `Decode each file strictly and report keys no setting uses, such as typos
that the cascade silently ignores. Checks the existing cascade files when no
file is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				if path, _ := cmd.Flags().GetString("config"); path != "" {
					files = []string{path}
				} else {
					files = am.ConfigFiles()
				}
			}
			if len(files) == 0 {
				return errors.WithHint(
					errors.New("no config files found"),
					"create one with `cleantype config init`")
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, file := range files {
				report := am.CheckFile(file)
				if report.OK() {
					fmt.Fprintf(out, "%s %s\n", pterm.Green("✓"), file)
					continue
				}
				failed++
				fmt.Fprintf(out, "%s %s\n", pterm.Red("✗"), file)
				for _, key := range report.UnknownKeys {
					fmt.Fprintf(out, "    unknown key: %s\n", key)
				}
				if report.Error != "" {
					fmt.Fprintf(out, "    %s\n", report.Error)
				}
			}

			if failed > 0 {
				return errors.Newf("%d of %d config files have problems", failed, len(files))
			}
			return nil
		},
	}
}

func newConfigWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Long: `Show the configuration cascade and the source of every setting.

Lists all configuration files in order of precedence, showing which files
exist and which are missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			intro, err := am.GetConfigIntrospection()
			if err != nil {
				return errors.Wrap(err, "failed to get config introspection")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
			fmt.Fprintln(out, "  [DEFAULT]  Built-in defaults")
			project := false
			for _, entry := range am.Cascade() {
				state := "missing"
				if entry.Exists {
					state = "found"
				}
				if entry.Source == am.SourceProject {
					project = true
				}
				fmt.Fprintf(out, "  %-10s %s (%s)\n", "["+strings.ToUpper(string(entry.Source))+"]", entry.Path, state)
			}
			if !project {
				fmt.Fprintf(out, "  %-10s %s (none found searching upward)\n", "[PROJECT]", am.ProjectConfigName)
			}
			fmt.Fprintf(out, "  %-10s %s_* environment variables\n", "[ENV]", am.EnvPrefix)
			fmt.Fprintln(out)

			rows := pterm.TableData{{"Key", "Value", "Source", "From"}}
			for _, s := range intro.Settings {
				value := fmt.Sprintf("%v", s.Value)
				if len(value) > 50 {
					value = value[:47] + "..."
				}
				rows = append(rows, []string{s.Key, value, string(s.Source), s.SourcePath})
			}
			return display.OutputTable(out, rows)
		},
	}
}
