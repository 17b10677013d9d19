// Package customization assembles the bundle an external host consumes: the
// static config, the tab component registry and the reference data.
package customization

import (
	"sort"

	"dashboard-customization/internal/core"
	"dashboard-customization/web/templates/components"

	"github.com/a-h/templ"
)

// ComponentFunc builds the renderable unit for one tab.
type ComponentFunc func(cfg *core.AppConfig) templ.Component

// Registry maps tab ids to their components.
type Registry map[string]ComponentFunc

// Lookup returns the component registered for id. Unknown ids yield (nil, false);
// deciding what to show instead is up to the host.
func (r Registry) Lookup(id string) (ComponentFunc, bool) {
	fn, ok := r[id]
	if !ok || fn == nil {
		return nil, false
	}
	return fn, true
}

// Keys returns the registered tab ids in sorted order.
func (r Registry) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bundle is the exported customization: config, components and data.
type Bundle struct {
	Config     core.AppConfig
	Components Registry
	Data       core.ReferenceData
}

// DefaultRegistry returns the registry of the shipped tabs.
func DefaultRegistry() Registry {
	return Registry{
		core.TabPropertyManagement: components.PropertyManagement,
		core.TabInvoiceProcessing:  components.InvoiceProcessing,
	}
}

// New returns the QuoinStone Group bundle.
func New() *Bundle {
	return &Bundle{
		Config:     core.DefaultConfig(),
		Components: DefaultRegistry(),
		Data:       core.DefaultReferenceData(),
	}
}

// Render builds the component for tabID against the bundle's config.
func (b *Bundle) Render(tabID string) (templ.Component, bool) {
	fn, ok := b.Components.Lookup(tabID)
	if !ok {
		return nil, false
	}
	return fn(&b.Config), true
}
