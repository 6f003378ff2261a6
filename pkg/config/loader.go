package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds the process-wide settings of the validation engine.
type Config struct {
	// TextSeparator joins messages for single-line display.
	TextSeparator string `env:"VALIDATION_TEXT_SEPARATOR" envDefault:","`
	// Format selects the default text formatter: single_line or multi_line.
	Format string `env:"VALIDATION_FORMAT" envDefault:"single_line"`
	// LogLevel is the minimum level of validation log records.
	LogLevel slog.Level `env:"VALIDATION_LOG_LEVEL" envDefault:"INFO"`
	// LogFormat is text or json.
	LogFormat string `env:"VALIDATION_LOG_FORMAT" envDefault:"json"`
	// Language is the BCP 47 tag rule messages are rendered in.
	Language string `env:"VALIDATION_LANGUAGE" envDefault:"en"`
	// MessagesFile is an optional JSON or YAML message catalog.
	MessagesFile string `env:"VALIDATION_MESSAGES_FILE"`
}

const (
	FormatSingleLine = "single_line"
	FormatMultiLine  = "multi_line"
)

var defaultEnvLoaded sync.Once

// Load parses Config from the environment. Files, when given, are loaded
// into the environment first; otherwise the default .env file is loaded
// once per process if it exists. Variables already set are never overridden.
func Load(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		defaultEnvLoaded.Do(func() {
			// The .env file is optional.
			_ = godotenv.Load()
		})
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load validation configuration: %v", err))
	}
	return cfg
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		TextSeparator: ",",
		Format:        FormatSingleLine,
		LogLevel:      slog.LevelInfo,
		LogFormat:     "json",
		Language:      "en",
	}
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Format {
	case FormatSingleLine, FormatMultiLine:
	default:
		return fmt.Errorf("%w: VALIDATION_FORMAT %q", ErrInvalidConfig, c.Format)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: VALIDATION_LOG_FORMAT %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: VALIDATION_LANGUAGE %q", ErrInvalidConfig, c.Language)
	}
	return nil
}
