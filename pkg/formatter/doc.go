// Package formatter turns validation text into display values. The engine
// never knows how messages are shown; a consumer picks a Formatter: one
// line, one message per line, or an HTML list as a templ.Component.
//
// # Usage
//
//	f := formatter.SingleLine{Separator: "; "}
//	label := formatter.FieldText(ctx, "Password", f)
//
//	list := formatter.HTML{Class: "errors"}.Format(ctx.Text())
//	_ = list.Render(r.Context(), w)
package formatter
