package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/cleantype/errors"
	"github.com/teranos/cleantype/logger"
)

var globalConfig *Config
var viperInstance *viper.Viper

// ConfigSources records which file set each key during the last load
var ConfigSources = map[string]SourceInfo{}

// Load reads the cleantype configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path on top of the
// defaults, without the cascade or environment variables
func LoadFromFile(configPath string) (*Config, error) {
	v, err := FileViper(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// FileViper returns a Viper instance holding the defaults and the file at
// configPath
func FileViper(configPath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return v, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	ConfigSources = map[string]SourceInfo{}
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// system -> user -> project, env vars still win over all files
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// UserConfigPath returns ~/.cleantype/config.toml, or "" when the home
// directory is unknown
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cleantype", "config.toml")
}

// findProjectConfig searches for .cleantype.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// configFile is one layer of the cascade
type configFile struct {
	source ConfigSource
	path   string
}

// cascade lists the config file candidates, lowest precedence first
func cascade() []configFile {
	files := []configFile{{SourceSystem, SystemConfigPath}}
	if user := UserConfigPath(); user != "" {
		files = append(files, configFile{SourceUser, user})
	}
	if project := findProjectConfig(); project != "" {
		files = append(files, configFile{SourceProject, project})
	}
	return files
}

// ConfigFiles returns the cascade files that exist, lowest precedence first
func ConfigFiles() []string {
	var paths []string
	for _, f := range cascade() {
		if _, err := os.Stat(f.path); err == nil {
			paths = append(paths, f.path)
		}
	}
	return paths
}

// CascadeEntry describes one config file layer
type CascadeEntry struct {
	Source ConfigSource `json:"source"`
	Path   string       `json:"path"`
	Exists bool         `json:"exists"`
}

// Cascade lists the config file layers, lowest precedence first. The project
// layer only appears when a .cleantype.toml was found.
func Cascade() []CascadeEntry {
	var entries []CascadeEntry
	for _, f := range cascade() {
		_, err := os.Stat(f.path)
		entries = append(entries, CascadeEntry{Source: f.source, Path: f.path, Exists: err == nil})
	}
	return entries
}

// mergeConfigFiles merges configuration files in precedence order.
// Files go into viper's config layer so CLEANTYPE_* env vars keep priority.
func mergeConfigFiles(v *viper.Viper) {
	for _, f := range cascade() {
		if _, err := os.Stat(f.path); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(f.path)
		tempViper.SetConfigType("toml")

		if err := tempViper.ReadInConfig(); err != nil {
			logger.Warnw("Skipping unreadable config file",
				logger.FieldPath, f.path,
				logger.FieldError, err)
			continue
		}

		settings := tempViper.AllSettings()
		if err := v.MergeConfigMap(settings); err != nil {
			logger.Warnw("Failed to merge config file",
				logger.FieldPath, f.path,
				logger.FieldError, err)
			continue
		}

		for _, key := range flattenKeys(settings, "") {
			ConfigSources[key] = SourceInfo{Source: f.source, Path: f.path}
		}
		logger.Debugw("Merged config file",
			logger.FieldPath, f.path,
			logger.FieldCount, len(settings))
	}
}

// flattenKeys returns the dotted leaf keys of a nested settings map
func flattenKeys(settings map[string]interface{}, prefix string) []string {
	var keys []string
	for k, value := range settings {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := value.(map[string]interface{}); ok {
			keys = append(keys, flattenKeys(nested, full)...)
			continue
		}
		keys = append(keys, full)
	}
	return keys
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}

// IsSet reports whether key is a known configuration key
func IsSet(key string) bool {
	return initViper().IsSet(key)
}
