package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/basecodec"
)

// fileConfig is the optional YAML file named by --config. Flags given on the
// command line win over it.
type fileConfig struct {
	Encoding    basecodec.Encoding `yaml:"encoding"`
	MaxInputLen int                `yaml:"max_input_len"`
	Verbose     bool               `yaml:"verbose"`
}

// loadConfig rejects unknown keys so a typo does not silently fall back to
// defaults. An empty file is an empty config.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
