package layouts_test

import (
	"context"
	"strings"
	"testing"

	"dashboard-customization/web/templates/layouts"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestAppLayout_Branding(t *testing.T) {
	html := render(t, layouts.AppLayout(layouts.AppLayoutData{
		Title:          "QuoinStone",
		CompanyName:    "QuoinStone Group",
		Logo:           "/path/to/quoinstone-logo.png",
		PrimaryColor:   "#3B82F6",
		SecondaryColor: "#60A5FA",
		Tabs: []layouts.NavTab{
			{ID: "propertyManagement", Label: "Property Management", Href: "/dashboard/propertyManagement"},
			{ID: "invoiceProcessing", Label: "Invoice Processing", Href: "/dashboard/invoiceProcessing"},
		},
		ActiveNav: "propertyManagement",
		FlashMsg:  "saved",
		FlashKind: "success",
	}, templ.Raw("<p>body</p>")))

	assert.Contains(t, html, `<header style="background-color:#3B82F6;">`)
	assert.Contains(t, html, `<img src="/path/to/quoinstone-logo.png"`)
	assert.Contains(t, html, `href="/dashboard/propertyManagement"`)
	assert.Contains(t, html, `class="active" style="background-color:#60A5FA;"`)
	assert.Contains(t, html, `<div class="flash flash-success">saved</div>`)
	assert.Contains(t, html, "<main><div")
	assert.True(t, strings.HasSuffix(html, "<p>body</p></main></body></html>"))
}

func TestAppLayout_SanitizesAttributes(t *testing.T) {
	html := render(t, layouts.AppLayout(layouts.AppLayoutData{
		CompanyName:    `<script>alert("x")</script>`,
		Logo:           "javascript:alert(1)",
		PrimaryColor:   "red;background-image:url(https://evil.example/x)",
		SecondaryColor: `blue" onmouseover="alert(3)`,
		Tabs: []layouts.NavTab{
			{ID: "a", Label: "A", Href: "javascript:alert(2)"},
		},
		ActiveNav: "a",
	}, nil))

	assert.NotContains(t, html, "javascript:")
	assert.NotContains(t, html, "evil.example")
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "onmouseover")
	assert.Contains(t, html, `<img src="`+string(templ.FailedSanitizationURL)+`"`)
	assert.Contains(t, html, `<a href="`+string(templ.FailedSanitizationURL)+`"`)
	assert.Contains(t, html, `<header style="background-color:zTemplUnsafeCSSPropertyValue;">`)
	assert.Contains(t, html, `class="active" style="background-color:zTemplUnsafeCSSPropertyValue;"`)
}

func TestAppLayout_OmitsEmptyOptionalParts(t *testing.T) {
	html := render(t, layouts.AppLayout(layouts.AppLayoutData{CompanyName: "Acme"}, nil))

	assert.Contains(t, html, "<header>")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, `class="user"`)
	assert.NotContains(t, html, "flash")
}
