// Package layouts renders the page shell shared by every dashboard page.
package layouts

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// AppLayout wraps body in the branded page shell: header, tab navigation and
// an optional flash message. URLs pass through templ.URL and colours through
// templ.SanitizeCSS before they reach an attribute.
func AppLayout(d AppLayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString("<title>" + templ.EscapeString(d.Title) + "</title>")
		b.WriteString(`<link rel="stylesheet" href="/static/dashboard.css"></head><body>`)

		b.WriteString(`<header` + styleAttr("background-color", d.PrimaryColor) + `>`)
		if d.Logo != "" {
			b.WriteString(`<img src="` + urlAttr(d.Logo) + `" alt="` + templ.EscapeString(d.CompanyName) + `">`)
		}
		b.WriteString("<h1>" + templ.EscapeString(d.CompanyName) + "</h1>")
		if d.Username != "" {
			b.WriteString(`<span class="user">` + templ.EscapeString(d.Username) + "</span>")
		}
		b.WriteString("</header><nav>")
		for _, t := range d.Tabs {
			b.WriteString(`<a href="` + urlAttr(t.Href) + `" title="` + templ.EscapeString(t.Description) + `" data-icon="` + templ.EscapeString(t.Icon) + `"`)
			if t.ID == d.ActiveNav {
				b.WriteString(` class="active"` + styleAttr("background-color", d.SecondaryColor))
			}
			b.WriteString(">" + templ.EscapeString(t.Label) + "</a>")
		}
		b.WriteString("</nav><main>")
		if d.FlashMsg != "" {
			b.WriteString(`<div class="` + templ.EscapeString(templ.Classes("flash", "flash-"+d.FlashKind).String()) + `">` + templ.EscapeString(d.FlashMsg) + "</div>")
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

// urlAttr sanitizes s for an href or src attribute. Unsafe schemes become
// templ.FailedSanitizationURL.
func urlAttr(s string) string {
	return templ.EscapeString(string(templ.URL(s)))
}

// styleAttr renders a single-declaration style attribute, or nothing when
// value is empty.
func styleAttr(property, value string) string {
	if value == "" {
		return ""
	}
	return ` style="` + templ.EscapeString(string(templ.SanitizeCSS(property, value))) + `"`
}
