package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type cliConfig struct {
	Output           string
	LogLevel         string
	MaxBytecodeBytes int
}

// solcverctl.toml key mapping.
type fileConfig struct {
	Output           string `toml:"output"`
	LogLevel         string `toml:"log_level"`
	MaxBytecodeBytes int    `toml:"max_bytecode_bytes"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Output:   outputText,
		LogLevel: "warn",
	}
}

// loadCLIConfig overlays the keys present in path onto the defaults.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load solcverctl config: %w", err)
	}

	if meta.IsDefined("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(raw.Output))
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("max_bytecode_bytes") {
		cfg.MaxBytecodeBytes = raw.MaxBytecodeBytes
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cliConfig{}, fmt.Errorf("unknown solcverctl config key %q", undecoded[0].String())
	}

	if err := validateCLIConfig(cfg); err != nil {
		return cliConfig{}, err
	}
	return cfg, nil
}

func validateCLIConfig(cfg cliConfig) error {
	switch cfg.Output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unsupported output %q (supported: text, json, yaml)", cfg.Output)
	}
	if cfg.MaxBytecodeBytes < 0 {
		return fmt.Errorf("max_bytecode_bytes must not be negative")
	}
	return nil
}
