package config

import (
	"errors"
	"strings"
)

// Validate rejects configs the commands cannot act on.
func Validate(cfg Config) error {
	if cfg.Listen == "" {
		return errors.New("listen address must not be empty")
	}
	if cfg.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	if cfg.NormalizedSuffix == "" || cfg.SafeSuffix == "" {
		return errors.New("output suffixes must not be empty")
	}
	if strings.ContainsAny(cfg.NormalizedSuffix, "/\\") || strings.ContainsAny(cfg.SafeSuffix, "/\\") {
		return errors.New("output suffixes must not contain path separators")
	}
	return nil
}
