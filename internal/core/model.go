package core

import (
	"maps"
	"slices"
)

// Icon is an opaque handle naming an asset in the external icon set.
// The bundle only names which icon goes with which tab; the host resolves it.
type Icon string

const (
	IconHome        Icon = "home"
	IconBarChart2   Icon = "bar-chart-2"
	IconSettings    Icon = "settings"
	IconUsers       Icon = "users"
	IconCalendar    Icon = "calendar"
	IconPhone       Icon = "phone"
	IconFileText    Icon = "file-text"
	IconCheckSquare Icon = "check-square"
	IconMail        Icon = "mail"
)

// TabConfig describes one navigable section of the dashboard.
type TabConfig struct {
	ID          string `json:"id" yaml:"id" jsonschema_description:"Tab identifier; must match a key in the component registry"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Icon        Icon   `json:"icon" yaml:"icon" jsonschema_description:"Icon handle resolved by the rendering host"`
}

// DashboardConfig is the main dashboard view: its tabs and the charts shown above them.
type DashboardConfig struct {
	Tabs   []TabConfig            `json:"tabs" yaml:"tabs"`
	Charts map[string]ChartConfig `json:"charts" yaml:"charts"`
}

// AnalyticsConfig is the analytics view. It carries charts only.
type AnalyticsConfig struct {
	Charts map[string]ChartConfig `json:"charts" yaml:"charts"`
}

// Client is a tenant listed by the dashboard. Purely descriptive.
type Client struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Industry string `json:"industry" yaml:"industry"`
}

// Features is the set of boolean feature flags carried by the config.
// Nothing in this repository reads them to gate tabs or components.
type Features map[string]bool

// Enabled reports whether the named flag is present and true.
func (f Features) Enabled(name string) bool {
	return f[name]
}

// AppConfig is the static customization descriptor consumed by the rendering host.
type AppConfig struct {
	Title          string          `json:"title" yaml:"title"`
	CompanyName    string          `json:"companyName" yaml:"companyName"`
	Logo           string          `json:"logo" yaml:"logo"`
	PrimaryColor   string          `json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor string          `json:"secondaryColor" yaml:"secondaryColor"`
	UserName       string          `json:"userName" yaml:"userName"`
	Dashboard      DashboardConfig `json:"dashboard" yaml:"dashboard"`
	Analytics      AnalyticsConfig `json:"analytics" yaml:"analytics"`
	Clients        []Client        `json:"clients" yaml:"clients"`
	Features       Features        `json:"features" yaml:"features"`
}

// Clone returns a deep copy of c. Slices, maps and chart points of the copy
// share nothing with c.
func (c AppConfig) Clone() AppConfig {
	out := c
	out.Dashboard.Tabs = slices.Clone(c.Dashboard.Tabs)
	out.Dashboard.Charts = cloneCharts(c.Dashboard.Charts)
	out.Analytics.Charts = cloneCharts(c.Analytics.Charts)
	out.Clients = slices.Clone(c.Clients)
	out.Features = maps.Clone(c.Features)
	return out
}

func cloneCharts(charts map[string]ChartConfig) map[string]ChartConfig {
	if charts == nil {
		return nil
	}
	out := make(map[string]ChartConfig, len(charts))
	for name, chart := range charts {
		out[name] = chart.Clone()
	}
	return out
}

// Tab returns the dashboard tab with the given id.
func (c *AppConfig) Tab(id string) (TabConfig, bool) {
	for _, t := range c.Dashboard.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return TabConfig{}, false
}

// Chart section names used to address charts by "section/name".
const (
	SectionDashboard = "dashboard"
	SectionAnalytics = "analytics"
)

// Charts returns the chart map of the named section, or nil for an unknown section.
func (c *AppConfig) Charts(section string) map[string]ChartConfig {
	switch section {
	case SectionDashboard:
		return c.Dashboard.Charts
	case SectionAnalytics:
		return c.Analytics.Charts
	default:
		return nil
	}
}
