package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/cleantype/logger"
	"github.com/teranos/cleantype/typename"
)

func newCleanCmd() *cobra.Command {
	var (
		full       bool
		indent     bool
		name       string
		depthLimit int
	)

	cmd := &cobra.Command{
		Use:   "clean [type...]",
		Short: "Normalize type names",
		Long: `Normalize each type name given as an argument, or each line of stdin when
no argument is given.

Versioned inline namespaces (std::__1, std::__cxx11) are stripped, defaulted
template arguments (allocators, comparators, char traits) are dropped and
well-known spellings are collapsed (std::basic_string<char> -> std::string).

Examples:
  cleantype clean 'std::__1::vector<int, std::__1::allocator<int> >'
  cleantype clean --name v 'std::__1::vector<int>'       # [std::vector<int>] v
  cleantype clean --indent --depth-limit 1 'std::map<int, std::vector<int>>'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaner, cfg, err := loadCleaner(cmd)
			if err != nil {
				return err
			}
			types, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			if depthLimit < 0 {
				depthLimit = cfg.Display.IndentDepthLimit
			}

			out := cmd.OutOrStdout()
			for _, t := range types {
				var result string
				switch {
				case name != "" && full:
					result = typename.ShowDetailsFull(t, name)
				case name != "":
					result = cleaner.ShowDetails(t, name)
				case full:
					result = strings.TrimSpace(t)
				case indent:
					result = cleaner.IndentTypeTree(t, depthLimit)
				default:
					result = cleaner.Normalize(t)
				}
				logger.Debugw("Cleaned type",
					logger.FieldInput, t,
					logger.FieldOutput, result)
				fmt.Fprintln(out, result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Print the type without normalization")
	cmd.Flags().BoolVar(&indent, "indent", false, "Lay deep templates out one argument per line")
	cmd.Flags().StringVar(&name, "name", "", "Render as \"[type] name\"")
	cmd.Flags().IntVar(&depthLimit, "depth-limit", -1, "Template depth above which --indent breaks lines (default: display.indent_depth_limit)")
	cmd.MarkFlagsMutuallyExclusive("full", "indent")

	return cmd
}
