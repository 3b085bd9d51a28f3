package am

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/teranos/cleantype/errors"
)

// FileReport is the result of checking a single config file
type FileReport struct {
	Path        string   `json:"path"`
	UnknownKeys []string `json:"unknown_keys,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// OK reports whether the file parsed, validated and has no unknown keys
func (r FileReport) OK() bool {
	return r.Error == "" && len(r.UnknownKeys) == 0
}

// CheckFile decodes the TOML file at path on top of the defaults, lists the
// keys no setting consumes (typos viper would silently drop) and validates
// the result
func CheckFile(path string) FileReport {
	report := FileReport{Path: path}

	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		report.Error = errors.Wrapf(err, "failed to parse %s", path).Error()
		return report
	}

	for _, key := range meta.Undecoded() {
		report.UnknownKeys = append(report.UnknownKeys, key.String())
	}
	sort.Strings(report.UnknownKeys)

	if err := cfg.Validate(); err != nil {
		report.Error = err.Error()
	}
	return report
}
