// Package config loads the validation engine's settings from environment
// variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are merged into the environment, then the Config
// struct is parsed from its field tags and validated.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // Handle error
//	}
//	log := logger.New(logger.WithConfig(cfg))
//	f := formatter.FromConfig(cfg)
//
// # Variables
//
//	VALIDATION_TEXT_SEPARATOR  separator for single-line text (default ",")
//	VALIDATION_FORMAT          single_line | multi_line (default single_line)
//	VALIDATION_LOG_LEVEL       DEBUG | INFO | WARN | ERROR (default INFO)
//	VALIDATION_LOG_FORMAT      text | json (default json)
//	VALIDATION_LANGUAGE        message language tag (default en)
//	VALIDATION_MESSAGES_FILE   optional JSON or YAML message catalog
//
// # Error Handling
//
// Parsing failures wrap ErrParsingConfig, unreadable explicit files wrap
// ErrLoadingEnvFile and unsupported values wrap ErrInvalidConfig, so
// callers can use errors.Is. MustLoad panics instead.
package config
