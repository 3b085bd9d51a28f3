package display

import (
	"encoding/json"

	"github.com/teranos/cleantype/errors"
)

// MarshalJSON marshals JSON with two-space indentation
func MarshalJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal JSON")
	}
	return data, nil
}
