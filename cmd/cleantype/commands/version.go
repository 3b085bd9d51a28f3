package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/cleantype/cmd/cleantype/display"
	"github.com/teranos/cleantype/errors"
	"github.com/teranos/cleantype/version"
)

func newVersionCmd() *cobra.Command {
	var require string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show cleantype version information",
		Long: `Display version, build time, commit hash, and platform information for the cleantype binary.

--require exits non-zero unless the version satisfies a semver constraint,
for scripts that depend on a minimum release:
  cleantype version --require '>= 0.3'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if require != "" {
				ok, err := info.Satisfies(require)
				if err != nil {
					return err
				}
				if !ok {
					return errors.Newf("cleantype %s does not satisfy %q", info.Version, require)
				}
			}

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, info)
			}

			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	cmd.Flags().StringVar(&require, "require", "", "Fail unless the version satisfies this semver constraint")
	return cmd
}
