package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/cleantype/cmd/cleantype/display"
	"github.com/teranos/cleantype/errors"
)

// lambdaOutput is the --json rendering of a recovered signature
type lambdaOutput struct {
	Input      string   `json:"input"`
	Scheme     string   `json:"scheme"`
	Params     []string `json:"params"`
	ReturnType string   `json:"return_type"`
	Signature  string   `json:"signature"`
}

func newLambdaCmd() *cobra.Command {
	var (
		raw        bool
		name       string
		showScheme bool
	)

	cmd := &cobra.Command{
		Use:   "lambda [memfn-type...]",
		Short: "Recover a lambda's signature from its std::mem_fn wrapper type",
		Long: `Print "lambda: (params) -> return" for the type of
std::mem_fn(&Lambda::operator()), as spelled by MSVC, libc++ or libstdc++.
Reads one type per stdin line when no argument is given.

Examples:
  cleantype lambda 'class std::_Mem_fn<struct std::pair<int,double> (__thiscall <lambda_1>::*)(int,int)const >'
  cleantype lambda --name f 'std::__1::__mem_fn<void(Foo::$_0:: *)()const>'   # [lambda: () -> void] f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaner, _, err := loadCleaner(cmd)
			if err != nil {
				return err
			}
			memfns, err := inputs(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			jsonOutput := display.ShouldOutputJSON(cmd)
			var results []lambdaOutput
			for _, memfn := range memfns {
				sig, err := cleaner.ParseLambdaSignature(memfn, !raw)
				if err != nil {
					return errors.Wrapf(err, "lambda %q", memfn)
				}

				rendered := sig.String()
				if name != "" {
					rendered = "[" + rendered + "] " + name
				}

				if jsonOutput {
					results = append(results, lambdaOutput{
						Input:      memfn,
						Scheme:     string(sig.Scheme),
						Params:     paramsOrEmpty(sig.Params),
						ReturnType: sig.ReturnType,
						Signature:  rendered,
					})
					continue
				}
				if showScheme {
					fmt.Fprintf(out, "%s\t%s\n", sig.Scheme, rendered)
				} else {
					fmt.Fprintln(out, rendered)
				}
			}

			if jsonOutput {
				return display.OutputJSON(out, results)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Keep the compiler's spelling of parameter and return types")
	cmd.Flags().StringVar(&name, "name", "", "Render as \"[lambda: ...] name\"")
	cmd.Flags().BoolVar(&showScheme, "scheme", false, "Prefix each signature with the detected naming scheme")
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}

// paramsOrEmpty maps the single-empty-token list of a no-argument lambda to
// an empty JSON array
func paramsOrEmpty(params []string) []string {
	if len(params) == 1 && params[0] == "" {
		return []string{}
	}
	return params
}
