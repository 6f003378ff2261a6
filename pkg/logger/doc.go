// Package logger builds the *slog.Logger instances handed to validators and
// contexts, and provides attribute constructors so that log records use the
// same keys everywhere.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	ctx := validation.NewContext(validation.WithLogger(log))
//
// Or from environment configuration:
//
//	cfg := config.MustLoad()
//	log := logger.New(logger.WithConfig(cfg))
//
// # Attributes
//
// Component, ContextID, Property, Properties, Valid, Messages and Count
// name the values the validation engine logs. Error and Errors produce
// attributes only for non-nil errors, so
//
//	log.Info("source finished", logger.Error(err))
//
// needs no nil check.
package logger
