package cliconfig

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/httpcheck/internal/domain"
)

// Default values for the CLI flags.
const (
	DefaultPort           = 80
	DefaultTimeoutSeconds = 5.0
	DefaultLogLevel       = "error"
)

// Config holds CLI configuration for httpcheck.
type Config struct {
	Host    string
	Port    int
	Path    string
	Method  string
	Headers []string

	// Timeout is in seconds, as given on the command line.
	Timeout float64

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Port:     DefaultPort,
		Path:     domain.DefaultPath,
		Method:   domain.DefaultMethod,
		Timeout:  DefaultTimeoutSeconds,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host is required", domain.ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range 1-65535", domain.ErrInvalidConfig, c.Port)
	}
	if math.IsNaN(c.Timeout) || c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", domain.ErrInvalidConfig)
	}
	if math.IsInf(c.Timeout, 0) || c.Timeout*float64(time.Second) >= math.MaxInt64 {
		return fmt.Errorf("%w: timeout %v is too large", domain.ErrInvalidConfig, c.Timeout)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// TimeoutDuration converts Timeout to a time.Duration.
func (c Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout * float64(time.Second))
}

// Level parses LogLevel. An empty level means DefaultLogLevel.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.ParseLevel(DefaultLogLevel)
	}
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

// Request builds the request to send. The method is upper-cased here; nothing
// else is normalized.
func (c Config) Request() domain.Request {
	var headers []string
	if len(c.Headers) > 0 {
		headers = append(headers, c.Headers...)
	}
	return domain.Request{
		Host:    c.Host,
		Port:    c.Port,
		Path:    c.Path,
		Method:  strings.ToUpper(c.Method),
		Headers: headers,
	}.WithDefaults()
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if non-zero and flag not changed. Out of range
// values are left for Validate to reject.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if non-zero and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings replaces a list if the file gives one and the flag was not used.
// Header lists are not merged: repeating -H on the command line replaces the
// file's headers entirely.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}
