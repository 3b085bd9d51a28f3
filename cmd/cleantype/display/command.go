package display

import (
	"io"

	"github.com/spf13/cobra"
)

// ShouldOutputJSON determines if a command should output JSON based on its
// --json flag
func ShouldOutputJSON(cmd *cobra.Command) bool {
	// Handle nil command gracefully
	if cmd == nil {
		return false
	}

	jsonFlag, err := cmd.Flags().GetBool("json")
	return err == nil && jsonFlag
}

// OutputJSON marshals v with MarshalJSON and writes it to w on its own line
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
