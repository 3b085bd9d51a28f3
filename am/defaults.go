package am

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/teranos/cleantype/typename"
)

// SetDefaults configures default values for all configuration options.
// The clean.* defaults mirror typename.DefaultRules.
func SetDefaults(v *viper.Viper) {
	rules := typename.DefaultRules()

	v.SetDefault("clean.extra_namespaces", []string{})
	v.SetDefault("clean.suppress_elaborated_keywords", rules.SuppressElaboratedKeywords)
	v.SetDefault("clean.undesirable_nodes", rules.UndesirableNodes)
	v.SetDefault("clean.force_east_const", rules.ForceEastConst)
	v.SetDefault("clean.replacements", replacementDefaults(rules.Replacements))

	v.SetDefault("display.indent_depth_limit", DefaultIndentDepthLimit)

	v.SetDefault("log.json", false)
}

// replacementDefaults renders replacements the way a TOML array of tables
// decodes, so defaults and file values unmarshal identically.
func replacementDefaults(in []typename.Replacement) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(in))
	for _, r := range in {
		out = append(out, map[string]interface{}{"from": r.From, "to": r.To})
	}
	return out
}

// DefaultConfig returns the configuration used when no file or environment
// variable overrides anything
func DefaultConfig() *Config {
	rules := typename.DefaultRules()
	cfg := &Config{
		Clean: CleanConfig{
			ExtraNamespaces:            []string{},
			SuppressElaboratedKeywords: rules.SuppressElaboratedKeywords,
			UndesirableNodes:           rules.UndesirableNodes,
			ForceEastConst:             rules.ForceEastConst,
		},
		Display: DisplayConfig{IndentDepthLimit: DefaultIndentDepthLimit},
	}
	for _, r := range rules.Replacements {
		cfg.Clean.Replacements = append(cfg.Clean.Replacements, ReplacementConfig{From: r.From, To: r.To})
	}
	return cfg
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Clean: {ExtraNamespaces: %v, Undesirable: %d, Replacements: %d, EastConst: %t}, Display: {IndentDepthLimit: %d}}",
		c.Clean.ExtraNamespaces, len(c.Clean.UndesirableNodes), len(c.Clean.Replacements),
		c.Clean.ForceEastConst, c.Display.IndentDepthLimit)
}
