package cliconfig

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the optional parts of Config as a TOML document. The
// target host is never read from a file.
type FileConfig struct {
	Port     int      `toml:"port"`
	Path     string   `toml:"path"`
	Method   string   `toml:"method"`
	Headers  []string `toml:"headers"`
	Timeout  float64  `toml:"timeout"`
	LogLevel string   `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
// Unknown keys are rejected so typos do not pass silently.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setInt("port", fc.Port, &cfg.Port)
	s.setString("path", fc.Path, &cfg.Path)
	s.setString("method", fc.Method, &cfg.Method)
	s.setStrings("header", fc.Headers, &cfg.Headers)
	s.setFloat("timeout", fc.Timeout, &cfg.Timeout)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
}
