// Package config loads archive settings from YAML.
//
//	limits:
//	  max_length: 1048576   # 0 or absent: no limit
//	log:
//	  level: debug
//	  development: true
//	frame: false
//
// Keys that are absent keep their defaults.
package config

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/archive/codec"
	"github.com/wippyai/archive/errors"
	"github.com/wippyai/archive/frame"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Limits LimitsConfig `yaml:"limits"`
	// Frame wraps encoded archives in a checksummed envelope.
	Frame bool `yaml:"frame"`
}

type LimitsConfig struct {
	// MaxLength bounds decoded sequence counts and string lengths. Zero
	// leaves them unbounded.
	MaxLength uint64 `yaml:"max_length"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Encoding    string `yaml:"encoding"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Encoding: "console"},
		Frame:  true,
	}
}

// Load reads YAML from r over the defaults. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "malformed config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads the YAML file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindStreamError, err, "open config")
	}
	defer f.Close()
	return Load(f)
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "log.level")
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Value(c.Log.Encoding).
			Detail("log.encoding must be console or json, got %q", c.Log.Encoding).
			Build()
	}
	return nil
}

// CodecOptions returns the codec options implied by the limits.
func (c *Config) CodecOptions() []codec.Option {
	if c.Limits.MaxLength == 0 {
		return nil
	}
	return []codec.Option{codec.WithMaxLength(c.Limits.MaxLength)}
}

// FrameLimit returns the largest frame payload to accept.
func (c *Config) FrameLimit() uint64 {
	if c.Limits.MaxLength == 0 {
		return frame.DefaultMaxLength
	}
	return c.Limits.MaxLength
}

// Logger builds a logger writing to stderr.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "log.level")
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if c.Log.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      c.Log.Development,
		Encoding:         c.Log.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    !c.Log.Development,
	}
	return zc.Build()
}
