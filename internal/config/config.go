package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Output  OutputConfig  `yaml:"output"`
	Batch   BatchConfig   `yaml:"batch"`
	Inbound InboundConfig `yaml:"inbound"`
}

type LogConfig struct {
	Verbose bool   `yaml:"verbose"`
	File    string `yaml:"file"`
}

type OutputConfig struct {
	// Indent is the number of spaces per JSON level; 0 means compact.
	Indent int `yaml:"indent"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// InboundConfig overrides the socks inbound stub written into full
// documents.
type InboundConfig struct {
	Listen string `yaml:"listen"`
	Port   int    `yaml:"port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{Indent: 2},
		Batch:   BatchConfig{Workers: 8},
		Inbound: InboundConfig{Listen: "127.0.0.1", Port: 10808},
	}
}

// Load reads the YAML config at path over the defaults. An empty path
// means ./config.yaml, which is optional; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if cfg.Batch.Workers <= 0 {
		cfg.Batch.Workers = 1
	}
	if cfg.Output.Indent < 0 {
		cfg.Output.Indent = 0
	}

	return cfg, nil
}
