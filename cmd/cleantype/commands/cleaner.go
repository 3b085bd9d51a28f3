package commands

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/cleantype/am"
	"github.com/teranos/cleantype/errors"
	"github.com/teranos/cleantype/typename"
)

// maxLineSize bounds a single stdin line; template-heavy diagnostics run long
const maxLineSize = 16 * 1024 * 1024

// loadConfig returns the configuration named by --config, or the cascade
func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *am.Config
	var err error
	if path != "" {
		cfg, err = am.LoadFromFile(path)
	} else {
		cfg, err = am.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

// loadCleaner builds the cleaner for the active configuration
func loadCleaner(cmd *cobra.Command) (*typename.Cleaner, *am.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return cfg.Cleaner(), cfg, nil
}

// inputs returns args, or the non-empty lines of stdin when there are none
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	err := scanLines(cmd.InOrStdin(), func(line string) error {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		return nil
	})
	return lines, err
}

func scanLines(r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "failed to read input")
}
