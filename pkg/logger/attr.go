package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component kind or name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// ContextID records the validation context identifier under the key "context_id".
func ContextID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("context_id", id)
}

// Property records a single property key under the key "property".
func Property(path string) slog.Attr {
	return slog.String("property", path)
}

// Properties records the property keys a component concerns under the key
// "properties". If there are none, it returns an empty Attr.
func Properties(paths ...string) slog.Attr {
	if len(paths) == 0 {
		return slog.Attr{}
	}
	return slog.Any("properties", paths)
}

// Valid records a validity flag under the key "valid".
func Valid(valid bool) slog.Attr {
	return slog.Bool("valid", valid)
}

// Messages records validation messages under the key "messages".
func Messages(msgs []string) slog.Attr {
	return slog.Any("messages", msgs)
}

// Count records a collection size under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
