package formatter

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/livevalidation/pkg/config"
	"github.com/dmitrymomot/livevalidation/pkg/validation"
)

// Formatter renders validation text for display.
type Formatter[Out any] interface {
	Format(text validation.Text) Out
}

// Func adapts a function to the Formatter interface.
type Func[Out any] func(text validation.Text) Out

func (f Func[Out]) Format(text validation.Text) Out {
	return f(text)
}

// SingleLine joins messages with Separator, or validation.DefaultSeparator
// when it is empty.
type SingleLine struct {
	Separator string
}

func (f SingleLine) Format(text validation.Text) string {
	return text.ToSingleLine(f.Separator)
}

// MultiLine puts every message on its own line.
type MultiLine struct{}

func (MultiLine) Format(text validation.Text) string {
	return strings.Join(text.Messages(), "\n")
}

// HTML renders messages as an escaped list for server-rendered pages.
// Empty text renders nothing.
type HTML struct {
	Class string
}

func (f HTML) Format(text validation.Text) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if text.IsEmpty() {
			return nil
		}
		var b strings.Builder
		b.WriteString("<ul")
		if f.Class != "" {
			b.WriteString(` class="`)
			b.WriteString(templ.EscapeString(f.Class))
			b.WriteString(`"`)
		}
		b.WriteString(">")
		for _, msg := range text.Messages() {
			b.WriteString("<li>")
			b.WriteString(templ.EscapeString(msg))
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// FromConfig returns the string formatter selected by cfg.
func FromConfig(cfg config.Config) Formatter[string] {
	if cfg.Format == config.FormatMultiLine {
		return MultiLine{}
	}
	return SingleLine{Separator: cfg.TextSeparator}
}

// FieldText formats the messages of the invalid validators concerning path.
func FieldText[Out any](ctx *validation.Context, path string, f Formatter[Out]) Out {
	return f.Format(ctx.TextFor(path))
}

// Text formats the aggregate text of a component.
func Text[Out any](c validation.Component, f Formatter[Out]) Out {
	return f.Format(c.Text())
}
