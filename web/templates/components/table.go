// Package components holds the tab components of the dashboard: each renders a
// card with a heading and a table of fixed rows.
package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// tableCard renders a heading and a table. headers and every row must have the
// same number of cells; all text is escaped.
func tableCard(heading string, headers []string, rows [][]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="p-4 bg-white rounded-lg shadow">`)
		b.WriteString(`<h2 class="text-xl font-bold mb-4">`)
		b.WriteString(templ.EscapeString(heading))
		b.WriteString(`</h2><table class="w-full"><thead><tr>`)
		for _, h := range headers {
			b.WriteString("<th>")
			b.WriteString(templ.EscapeString(h))
			b.WriteString("</th>")
		}
		b.WriteString("</tr></thead><tbody>")
		for _, row := range rows {
			b.WriteString("<tr>")
			for _, cell := range row {
				b.WriteString("<td>")
				b.WriteString(templ.EscapeString(cell))
				b.WriteString("</td>")
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table></div>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
