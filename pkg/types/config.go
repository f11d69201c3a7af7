package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the runtime settings for a vending session.
type Config struct {
	Backend   string        `json:"backend" yaml:"backend" mapstructure:"backend" validate:"required,oneof=memory sqlite"`
	Seed      bool          `json:"seed" yaml:"seed" mapstructure:"seed"`
	Pace      time.Duration `json:"pace" yaml:"pace" mapstructure:"pace" validate:"gte=0"`
	LogLevel  string        `json:"log_level" yaml:"log_level" mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string        `json:"log_format" yaml:"log_format" mapstructure:"log_format" validate:"required,oneof=text json"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Defaults applied when neither flags, environment, nor config.yaml set a value.
const (
	DefaultBackend   = BackendMemory
	DefaultPace      = time.Second
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config validation errors.
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrPaceNegative     = errors.New("pace must not be negative")
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLogFormatUnknown = errors.New("unknown log format")
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		Backend:   DefaultBackend,
		Pace:      DefaultPace,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate checks that the Config is well-formed. It returns an error
// wrapping one of the sentinels above, naming the first failing field.
func (c Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}
	fe := ve[0]
	switch fe.StructField() {
	case "Backend":
		if fe.Tag() == "required" {
			return ErrBackendEmpty
		}
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	case "Pace":
		return fmt.Errorf("%w: %s", ErrPaceNegative, c.Pace)
	case "LogLevel":
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	case "LogFormat":
		return fmt.Errorf("%w: %q", ErrLogFormatUnknown, c.LogFormat)
	default:
		return err
	}
}
