package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cleantype/cmd/cleantype/display"
	"github.com/teranos/cleantype/errors"
	"github.com/teranos/cleantype/typename"
)

type extractOutput struct {
	Input              string `json:"input"`
	ParenthesisContent string `json:"parenthesis_content"`
	RemainingAtStart   string `json:"remaining_at_start"`
	Success            bool   `json:"success"`
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <text>",
		Short: "Isolate the last parenthesis group of a signature",
		Long: `Split text at the last complete parenthesis group. Text after the group
is discarded. Exits non-zero when the text has no complete group.

Examples:
  cleantype extract 'ABC(DEF)(GHI)KLM'        # content GHI, prefix ABC(DEF)
  cleantype extract --json 'int(Foo:: *)(int)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			result := typename.ExtractParenthesisContentAtEnd(input)

			out := cmd.OutOrStdout()
			if display.ShouldOutputJSON(cmd) {
				err := display.OutputJSON(out, extractOutput{
					Input:              input,
					ParenthesisContent: result.ParenthesisContent,
					RemainingAtStart:   result.RemainingAtStart,
					Success:            result.Success,
				})
				if err != nil {
					return err
				}
			} else if result.Success {
				err := display.OutputTable(out, pterm.TableData{
					{"Part", "Text"},
					{"content", result.ParenthesisContent},
					{"prefix", result.RemainingAtStart},
				})
				if err != nil {
					return err
				}
			}

			if !result.Success {
				return errors.WithHint(
					errors.Wrapf(errors.ErrUnmatchedParenthesis, "extract %q", input),
					"the text must contain a ')' with a matching '(' before it")
			}
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}
