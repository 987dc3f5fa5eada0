package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, Validate(cfg))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gcodeprep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"listen: \":8080\"\nsafe_suffix: \"_checked\"\nheaders: true\n",
	), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "_checked", cfg.SafeSuffix)
	assert.True(t, cfg.Headers)
	// untouched keys keep their defaults
	assert.Equal(t, "_normalized", cfg.NormalizedSuffix)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Listen = ""
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.SafeSuffix = "out/safe"
	assert.Error(t, Validate(cfg))

	assert.NoError(t, Validate(Default()))
}
