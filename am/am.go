// Package am loads cleantype configuration from the system, user and
// project config files and CLEANTYPE_* environment variables.
package am

// Config represents the cleantype configuration
type Config struct {
	Clean   CleanConfig   `mapstructure:"clean" toml:"clean" yaml:"clean" json:"clean"`
	Display DisplayConfig `mapstructure:"display" toml:"display" yaml:"display" json:"display"`
	Log     LogConfig     `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// CleanConfig configures the normalization rules
type CleanConfig struct {
	ExtraNamespaces            []string            `mapstructure:"extra_namespaces" toml:"extra_namespaces" yaml:"extra_namespaces" json:"extra_namespaces"`
	SuppressElaboratedKeywords bool                `mapstructure:"suppress_elaborated_keywords" toml:"suppress_elaborated_keywords" yaml:"suppress_elaborated_keywords" json:"suppress_elaborated_keywords"`
	UndesirableNodes           []string            `mapstructure:"undesirable_nodes" toml:"undesirable_nodes" yaml:"undesirable_nodes" json:"undesirable_nodes"`
	ForceEastConst             bool                `mapstructure:"force_east_const" toml:"force_east_const" yaml:"force_east_const" json:"force_east_const"`
	Replacements               []ReplacementConfig `mapstructure:"replacements" toml:"replacements" yaml:"replacements" json:"replacements"`
}

// ReplacementConfig rewrites a whole cleaned template node
type ReplacementConfig struct {
	From string `mapstructure:"from" toml:"from" yaml:"from" json:"from"`
	To   string `mapstructure:"to" toml:"to" yaml:"to" json:"to"`
}

// DisplayConfig configures CLI rendering
type DisplayConfig struct {
	// IndentDepthLimit is the template depth above which `clean --indent`
	// lays a type out one argument per line (default: 3)
	IndentDepthLimit int `mapstructure:"indent_depth_limit" toml:"indent_depth_limit" yaml:"indent_depth_limit" json:"indent_depth_limit"`
}

// LogConfig configures the logger
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
}

const (
	// EnvPrefix prefixes every environment override, e.g. CLEANTYPE_CLEAN_FORCE_EAST_CONST
	EnvPrefix = "CLEANTYPE"

	// ProjectConfigName is searched for from the working directory upwards
	ProjectConfigName = ".cleantype.toml"

	// SystemConfigPath has the lowest file precedence
	SystemConfigPath = "/etc/cleantype/config.toml"

	DefaultIndentDepthLimit = 3

	DefaultDirPermissions  = 0750
	DefaultFilePermissions = 0644
)
