package am

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/teranos/cleantype/errors"
	"github.com/teranos/cleantype/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old config backup",
			logger.FieldPath, back3,
			logger.FieldError, err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// WriteDefaults writes the default configuration to path. An existing file
// is only replaced when force is set, after being backed up.
func WriteDefaults(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(
			errors.Newf("config file %s already exists", path),
			"pass --force to overwrite it; the old file is kept as .back1")
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}
	return writeConfig(path, data)
}

// SetValue sets one scalar or list key in the TOML file at path, creating
// the file when missing. raw is coerced to the type of the key's default:
// "true"/"false" for booleans, integers, comma-separated lists for string lists.
func SetValue(path, key, raw string) error {
	key = strings.ToLower(key)

	defaults := viper.New()
	SetDefaults(defaults)
	if !defaults.IsSet(key) {
		return errors.WithHint(
			errors.Newf("unknown config key %q", key),
			"run `cleantype config show` to list the available keys")
	}

	value, err := coerce(defaults.Get(key), raw)
	if err != nil {
		return errors.Wrapf(err, "invalid value for %s", key)
	}

	settings, err := loadConfigMap(path)
	if err != nil {
		return err
	}
	setNested(settings, strings.Split(key, "."), value)
	if err := validateSettings(settings); err != nil {
		return errors.Wrapf(err, "refusing to write %s = %s to %s", key, raw, path)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	return writeConfig(path, data)
}

func coerce(current interface{}, raw string) (interface{}, error) {
	switch current.(type) {
	case bool:
		return strconv.ParseBool(raw)
	case int:
		return strconv.Atoi(raw)
	case []string:
		var items []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if items == nil {
			items = []string{}
		}
		return items, nil
	case string:
		return raw, nil
	default:
		return nil, errors.New("only booleans, integers and string lists can be set from the command line")
	}
}

func setNested(settings map[string]interface{}, path []string, value interface{}) {
	for _, part := range path[:len(path)-1] {
		next, ok := settings[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			settings[part] = next
		}
		settings = next
	}
	settings[path[len(path)-1]] = value
}

// validateSettings checks settings the way a later load of the file would
// see them: on top of the defaults.
func validateSettings(settings map[string]interface{}) error {
	v := viper.New()
	SetDefaults(v)
	if err := v.MergeConfigMap(settings); err != nil {
		return errors.Wrap(err, "failed to merge config")
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// loadConfigMap reads the TOML file at path, or returns an empty map if it doesn't exist
func loadConfigMap(path string) (map[string]interface{}, error) {
	settings := make(map[string]interface{})
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return settings, nil
}

func writeConfig(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	logger.Infow("Wrote config file", logger.FieldPath, path)
	return nil
}
