package display

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/cleantype/errors"
)

// OutputTable renders rows as a pterm table whose first row is the header
func OutputTable(w io.Writer, rows pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
