package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the gcodeprep service and CLI defaults.
type Config struct {
	// Listen is the address the serve command binds to.
	Listen string `yaml:"listen"`
	// DataDir is the directory served under /data/.
	DataDir string `yaml:"data_dir"`

	NormalizedSuffix string `yaml:"normalized_suffix"`
	SafeSuffix       string `yaml:"safe_suffix"`

	// Headers adds the comment header/footer blocks to file output.
	Headers bool `yaml:"headers"`
	// SkipNormalize runs only the safety annotator.
	SkipNormalize bool `yaml:"skip_normalize"`
}

func Default() Config {
	return Config{
		Listen:           ":9092",
		DataDir:          "./data",
		NormalizedSuffix: "_normalized",
		SafeSuffix:       "_safe",
	}
}

// Load reads a yaml config file on top of the defaults. A missing path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
