package app

import (
	"dashboard-customization/internal/core"

	"github.com/a-h/templ"
)

// BundleResult is returned by GetBundle. It is the wire form of the bundle:
// components are reported by key since they cannot be serialized.
type BundleResult struct {
	Config     core.AppConfig     `json:"config" yaml:"config"`
	Components []string           `json:"components" yaml:"components"`
	Data       core.ReferenceData `json:"data" yaml:"data"`
}

// TabEntry is one dashboard tab plus whether a component is registered for it.
type TabEntry struct {
	Tab        core.TabConfig `json:"tab"`
	Registered bool           `json:"registered"`
}

// TabListResult is returned by ListTabs.
type TabListResult struct {
	Tabs []TabEntry `json:"tabs"`
}

// TabResult is returned by RenderTab. Tab is the zero value when the id is
// registered but not declared in the config.
type TabResult struct {
	TabID     string
	Tab       core.TabConfig
	Component templ.Component
}

// ChartResult is returned by GetChart.
type ChartResult struct {
	Section string           `json:"section"`
	Name    string           `json:"name"`
	Chart   core.ChartConfig `json:"chart"`
}

// ReferenceListResult is returned by GetReferenceList.
type ReferenceListResult struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}
