package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cleantype/errors"
	"github.com/teranos/cleantype/logger"
)

// NewRootCmd assembles the cleantype command tree
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		jsonLogs  bool
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "cleantype",
		Short: "cleantype - Readable C++ type names",
		Long: `cleantype - Turn compiler-produced C++ type names into readable ones.

Available commands:
  clean    - Normalize type names (std::__1::basic_string<char, ...> -> std::string)
  lambda   - Recover a lambda's signature from its std::mem_fn wrapper type
  tokenize - Split a parameter list on top-level commas
  extract  - Isolate the last parenthesis group of a signature
  decipher - Clean every type name in compiler output read from stdin
  config   - Show and manage configuration
  version  - Show build information

Examples:
  cleantype clean 'std::__1::vector<int, std::__1::allocator<int> >'
  cleantype lambda 'class std::_Mem_fn<double (__thiscall <lambda_1>::*)(int,int)const >'
  clang++ -c main.cpp 2>&1 | cleantype decipher`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				pterm.DisableColor()
			}

			// log.json from config applies unless the flag already asked for JSON
			if !jsonLogs {
				if cfg, err := loadConfig(cmd); err == nil {
					jsonLogs = cfg.Log.JSON
				}
			}
			if err := logger.Initialize(jsonLogs, verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			logger.Debugw("Logger initialized",
				logger.FieldOperation, cmd.Name(),
				"level", logger.LevelName(verbosity))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Cleanup()
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("config", "", "Read configuration from this file instead of the config cascade")

	rootCmd.AddCommand(
		newCleanCmd(),
		newLambdaCmd(),
		newTokenizeCmd(),
		newExtractCmd(),
		newDecipherCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
