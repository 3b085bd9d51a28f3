package commands

import (
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/teranos/cleantype/am"
	"github.com/teranos/cleantype/logger"
	"github.com/teranos/cleantype/typename"
)

// decipherFilter cleans text line by line with a cleaner that a config
// reload may swap out mid-stream
type decipherFilter struct {
	mu      sync.RWMutex
	cleaner *typename.Cleaner
	logger  *zap.SugaredLogger
}

func newDecipherFilter(cleaner *typename.Cleaner) *decipherFilter {
	return &decipherFilter{
		cleaner: cleaner,
		logger:  logger.ComponentLogger("decipher"),
	}
}

func (f *decipherFilter) setCleaner(c *typename.Cleaner) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaner = c
}

func (f *decipherFilter) line(s string) string {
	f.mu.RLock()
	c := f.cleaner
	f.mu.RUnlock()
	return c.DecipherBlob(s)
}

// run copies r to w, cleaning each line, until r is exhausted
func (f *decipherFilter) run(r io.Reader, w io.Writer) error {
	lines := 0
	err := scanLines(r, func(s string) error {
		lines++
		_, err := fmt.Fprintln(w, f.line(s))
		return err
	})
	f.logger.Debugw("Decipher finished",
		logger.FieldLines, lines,
		logger.FieldSuccess, err == nil)
	return err
}

// reload is the watcher callback installing the new rule set
func (f *decipherFilter) reload(cfg *am.Config) error {
	f.setCleaner(cfg.Cleaner())
	f.logger.Infow("Decipher rules reloaded",
		"extra_namespaces", len(cfg.Clean.ExtraNamespaces),
		"replacements", len(cfg.Clean.Replacements))
	return nil
}

func newDecipherCmd() *cobra.Command {
	var watchConfig bool

	cmd := &cobra.Command{
		Use:   "decipher",
		Short: "Clean every type name in compiler output read from stdin",
		Long: `Filter stdin to stdout, replacing every template type found in the text
with its cleaned form. Everything else passes through untouched, so the
command can sit at the end of a build pipeline.

With --watch-config, edits to the active config files take effect while the
filter is running.

Examples:
  clang++ -c main.cpp 2>&1 | cleantype decipher
  make 2>&1 | cleantype decipher --watch-config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaner, _, err := loadCleaner(cmd)
			if err != nil {
				return err
			}
			filter := newDecipherFilter(cleaner)

			if watchConfig {
				stop, err := watchRules(cmd, filter)
				if err != nil {
					return err
				}
				defer stop()
			}

			return filter.run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&watchConfig, "watch-config", "w", false, "Reload rules when the config files change")

	return cmd
}

// watchRules starts a config watcher feeding filter. With no config file to
// watch it logs a warning and watches nothing.
func watchRules(cmd *cobra.Command, filter *decipherFilter) (stop func(), err error) {
	configPath, _ := cmd.Flags().GetString("config")
	paths := am.ConfigFiles()
	if configPath != "" {
		paths = []string{configPath}
	}
	if len(paths) == 0 {
		logger.Warnw("No config file to watch; rules stay fixed",
			"hint", "create one with `cleantype config init`")
		return func() {}, nil
	}

	watcher, err := am.NewConfigWatcher(paths...)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		watcher.SetLoader(func() (*am.Config, error) {
			return am.LoadFromFile(configPath)
		})
	}
	watcher.OnReload(filter.reload)
	watcher.Start()

	logger.Infow("Watching config files",
		logger.FieldCount, len(paths))

	return func() {
		if err := watcher.Stop(); err != nil {
			logger.Warnw("Failed to stop config watcher", logger.FieldError, err)
		}
	}, nil
}
