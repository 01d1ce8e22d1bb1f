// Package encoding wraps the JSON codec used across the module.
package encoding

import (
	"errors"

	json "github.com/goccy/go-json"
)

var ErrDecodeJSON = errors.New("failed to decode JSON")

// Unmarshal decodes data into a value of type T.
func Unmarshal[T any](data []byte) (T, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}
