package commands

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cleantype/cmd/cleantype/display"
	"github.com/teranos/cleantype/logger"
)

func newTokenizeCmd() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "tokenize [params]",
		Short: "Split a parameter list on top-level commas",
		Long: `Split a comma-separated parameter list into parameters. Commas nested
inside <...> do not split. Reads the list from stdin when no argument is given.

Examples:
  cleantype tokenize 'int, std::map<int, double>, char'
  cleantype tokenize --normalize 'int, std::__1::basic_string<char>, double'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaner, _, err := loadCleaner(cmd)
			if err != nil {
				return err
			}
			lines, err := inputs(cmd, args)
			if err != nil {
				return err
			}

			tokens := cleaner.TokenizeParamsAroundComma(strings.Join(lines, " "), normalize)
			logger.Debugw("Tokenized parameter list",
				logger.FieldTokens, len(tokens))

			out := cmd.OutOrStdout()
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, tokens)
			}

			rows := pterm.TableData{{"#", "Parameter"}}
			for i, tok := range tokens {
				rows = append(rows, []string{strconv.Itoa(i), tok})
			}
			return display.OutputTable(out, rows)
		},
	}

	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "Normalize each parameter")
	cmd.Flags().BoolP("json", "j", false, "Output as a JSON array")

	return cmd
}
