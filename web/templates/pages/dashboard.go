// Package pages holds the full HTML pages served by the web host.
package pages

import (
	"context"
	"io"

	"dashboard-customization/web/templates/layouts"

	"github.com/a-h/templ"
)

// Dashboard renders the page shell around the active tab's component.
func Dashboard(d layouts.AppLayoutData, tab templ.Component) templ.Component {
	return layouts.AppLayout(d, tab)
}

// TabPlaceholder renders a notice in place of a tab that has no component.
func TabPlaceholder(tabID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="p-4 bg-white rounded-lg shadow"><h2 class="text-xl font-bold mb-4">Not available</h2>`+
			`<p>Nothing is registered for tab <code>`+templ.EscapeString(tabID)+`</code>.</p></div>`)
		return err
	})
}
