// Package config loads the TOML configuration of the subdays command.
package config

import (
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Duration wrapper time.Duration for TOML
type Duration struct {
	time.Duration
}

var _ toml.TextMarshaler = &Duration{}

// UnmarshalText from TOML
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText encode text with TOML format
func (d *Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type benchConfig struct {
	// Benchtime is a duration ("1s") or an iteration count ("100000x").
	Benchtime string   `toml:"benchtime" validate:"benchtime"`
	Count     int      `toml:"count" validate:"gte=1,lte=1000"`
	SetupMode string   `toml:"setup-mode" validate:"oneof=per-batch per-iteration"`
	Cases     []string `toml:"cases" validate:"dive,required"`
}

type outputConfig struct {
	Format string `toml:"format" validate:"oneof=text json"`
	File   string `toml:"file"`
}

type loggingConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

type runConfig struct {
	// Timeout bounds the whole run; zero means no limit. It is checked
	// between cases only.
	Timeout *Duration `toml:"timeout"`
}

// Config is the full configuration of the subdays command, one field per
// TOML table.
type Config struct {
	Bench   benchConfig   `toml:"bench"`
	Run     runConfig     `toml:"run"`
	Output  outputConfig  `toml:"output"`
	Logging loggingConfig `toml:"logging"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Bench: benchConfig{
			Benchtime: "1s",
			Count:     1,
			SetupMode: "per-batch",
		},
		Run: runConfig{
			Timeout: &Duration{},
		},
		Output: outputConfig{
			Format: "text",
		},
		Logging: loggingConfig{
			File:  "stderr",
			Level: "warn",
		},
	}
}

// PrintConfig writes cfg as TOML to w.
func PrintConfig(w io.Writer, cfg *Config) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""
	return encoder.Encode(cfg)
}

// ParseConfig decodes filename over cfg and validates the result. An
// empty filename only validates.
func ParseConfig(filename string, cfg *Config) error {
	if filename != "" {
		md, err := toml.DecodeFile(filename, cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("%s: unknown keys %v", filename, undecoded)
		}
	}
	return Validate(cfg)
}

var benchtimeRe = regexp.MustCompile(`^([0-9]+x|[0-9.]+(ns|us|µs|ms|s|m|h))$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("benchtime", func(fl validator.FieldLevel) bool {
		return benchtimeRe.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks field constraints of cfg.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
