package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/livevalidation/pkg/config"
	"github.com/dmitrymomot/livevalidation/pkg/logger"
)

// DefaultLanguage is used when a catalog is created without WithDefaultLanguage.
var DefaultLanguage = language.English

// Catalog holds validation message templates per language. Templates use
// fmt verbs and are rendered with a locale-aware printer, so numbers follow
// the conventions of the requested language.
//
// A Catalog is read-only after Load and safe for concurrent use.
type Catalog struct {
	messages    map[string]map[string]string
	defaultLang language.Tag
	log         *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language tried after the requested one.
func WithDefaultLanguage(lang language.Tag) Option {
	return func(c *Catalog) {
		c.defaultLang = lang
	}
}

// WithLogger sets the logger used to report missing messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// Load reads src into a new Catalog. Language keys must be valid BCP 47 tags.
func Load(ctx context.Context, src Source, opts ...Option) (*Catalog, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	c := &Catalog{
		messages:    make(map[string]map[string]string),
		defaultLang: DefaultLanguage,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	data, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, msgs := range data {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrInvalidCatalog, lang, err)
		}
		flat := make(map[string]string)
		if err := flatten("", msgs, flat); err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}
		c.messages[tag.String()] = flat
	}

	c.log.DebugContext(ctx, "message catalog loaded", slog.Any("languages", c.Languages()))
	return c, nil
}

// Languages returns the languages in the catalog, sorted.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		out = append(out, lang)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the template for key in lang. It falls back through the
// parent languages of lang (de-AT, then de) and then the default language.
func (c *Catalog) Lookup(lang language.Tag, key string) (string, bool) {
	for _, tag := range c.candidates(lang) {
		if msg, ok := c.messages[tag.String()][key]; ok {
			return msg, true
		}
	}
	return "", false
}

// Sprintf renders key in lang with args. When key is missing, fallback is
// rendered instead.
func (c *Catalog) Sprintf(lang language.Tag, key, fallback string, args ...any) string {
	tmpl, ok := c.Lookup(lang, key)
	if !ok {
		c.log.Debug("message not found", slog.String("lang", lang.String()), slog.String("key", key))
		tmpl = fallback
	}
	return message.NewPrinter(lang).Sprintf(tmpl, args...)
}

func (c *Catalog) candidates(lang language.Tag) []language.Tag {
	var out []language.Tag
	for tag := lang; ; tag = tag.Parent() {
		out = append(out, tag)
		if tag.IsRoot() {
			break
		}
	}
	return append(out, c.defaultLang)
}

func flatten(prefix string, in map[string]any, out map[string]string) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := asMap(v); ok {
			if err := flatten(key, nested, out); err != nil {
				return err
			}
			continue
		}
		switch s := v.(type) {
		case string:
			out[key] = s
		case fmt.Stringer:
			out[key] = s.String()
		default:
			return fmt.Errorf("%w: key %q: expected a string, got %T", ErrInvalidCatalog, key, v)
		}
	}
	return nil
}

// FromConfig loads the catalog in cfg.MessagesFile with cfg.Language as the
// default language. Without a file the catalog is empty and every lookup
// falls back to the caller's text.
func FromConfig(ctx context.Context, cfg config.Config, opts ...Option) (*Catalog, error) {
	lang, err := language.Parse(cfg.Language)
	if err != nil {
		return nil, errors.Join(config.ErrInvalidConfig, err)
	}
	opts = append([]Option{WithDefaultLanguage(lang)}, opts...)
	if cfg.MessagesFile == "" {
		return Load(ctx, MapSource{}, opts...)
	}
	return Load(ctx, FileSource{Path: cfg.MessagesFile}, opts...)
}
