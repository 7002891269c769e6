package registry

import (
	"fmt"
	"strconv"
	"time"
)

// Settings are the raw string attributes of a renderer block.
type Settings map[string]string

// String returns the value for key, or def when unset.
func (s Settings) String(key, def string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return def
}

// Bool parses the value for key, or returns def when unset.
func (s Settings) Bool(key string, def bool) (bool, error) {
	v, ok := s[key]
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("setting '%s': %w", key, err)
	}
	return b, nil
}

// Int parses the value for key, or returns def when unset.
func (s Settings) Int(key string, def int) (int, error) {
	v, ok := s[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("setting '%s': %w", key, err)
	}
	return n, nil
}

// Duration parses the value for key, or returns def when unset.
func (s Settings) Duration(key string, def time.Duration) (time.Duration, error) {
	v, ok := s[key]
	if !ok {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("setting '%s': %w", key, err)
	}
	return d, nil
}
