// Package config defines the unified, format-agnostic configuration model and
// the Loader interface that format-specific packages (HCL, YAML) implement.
package config
