// Package config handles application configuration loading and validation.
//
// Configuration is loaded from qrbill.yml and validated using struct
// tags. A missing file falls back to defaults; an invalid one is an
// error.
package config
