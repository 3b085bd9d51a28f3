package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/teranos/cleantype/cmd/cleantype/commands"
	"github.com/teranos/cleantype/errors"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		for _, hint := range errors.GetAllHints(err) {
			pterm.Info.WithWriter(os.Stderr).Println(hint)
		}
		os.Exit(1)
	}
}
