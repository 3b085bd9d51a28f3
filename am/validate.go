package am

import (
	"strings"

	"github.com/teranos/cleantype/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// 0 is valid: indent every templated type
	if c.Display.IndentDepthLimit < 0 {
		return errors.NewInvalidConfigError("display.indent_depth_limit must be >= 0, got %d", c.Display.IndentDepthLimit)
	}

	for i, r := range c.Clean.Replacements {
		if strings.TrimSpace(r.From) == "" {
			return errors.WithHint(
				errors.NewInvalidConfigError("clean.replacements[%d].from cannot be empty", i),
				"every [[clean.replacements]] table needs a non-empty from")
		}
	}

	for i, ns := range c.Clean.ExtraNamespaces {
		if strings.TrimSpace(ns) == "" || strings.Contains(ns, "::") {
			return errors.WithHint(
				errors.NewInvalidConfigError("clean.extra_namespaces[%d] is not a namespace name: %q", i, ns),
				"list bare names such as \"__debug\", without the trailing ::")
		}
	}

	for i, node := range c.Clean.UndesirableNodes {
		if strings.TrimSpace(node) == "" {
			return errors.NewInvalidConfigError("clean.undesirable_nodes[%d] cannot be empty", i)
		}
	}

	return nil
}
