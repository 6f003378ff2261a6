package rules

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/livevalidation/pkg/config"
	"github.com/dmitrymomot/livevalidation/pkg/i18n"
)

// Option customizes the message of a rule.
type Option func(*options)

type options struct {
	message string
	lang    language.Tag
	catalog *i18n.Catalog
}

// WithMessage replaces the default message.
func WithMessage(msg string) Option {
	return func(o *options) {
		if msg != "" {
			o.message = msg
		}
	}
}

// WithLanguage selects the language of the message and its number format.
func WithLanguage(lang language.Tag) Option {
	return func(o *options) {
		o.lang = lang
	}
}

// WithCatalog looks the message up by the rule's translation key. Rules
// whose key is missing from the catalog keep the built-in English text.
func WithCatalog(c *i18n.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithConfig applies the language from cfg and, when c is not nil, the
// catalog. An unparsable language leaves the current one in place.
func WithConfig(cfg config.Config, c *i18n.Catalog) Option {
	return func(o *options) {
		if lang, err := language.Parse(cfg.Language); err == nil {
			o.lang = lang
		}
		if c != nil {
			o.catalog = c
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{lang: language.English}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) render(key, format string, args ...any) string {
	switch {
	case o.message != "":
		return o.message
	case o.catalog != nil:
		return o.catalog.Sprintf(o.lang, key, format, args...)
	default:
		return message.NewPrinter(o.lang).Sprintf(format, args...)
	}
}
