package app

import (
	"fmt"
	"sort"

	"dashboard-customization/internal/core"
	"dashboard-customization/internal/customization"

	"go.uber.org/multierr"
)

// checkBundle reports every tab without a registered component, every
// duplicated tab id, every unknown chart kind, every chart data key missing
// from a data point and every point whose label field is also a value field. The bundle never calls this itself; hosts do.
func checkBundle(b *customization.Bundle) error {
	var err error

	seen := make(map[string]bool, len(b.Config.Dashboard.Tabs))
	for _, t := range b.Config.Dashboard.Tabs {
		if seen[t.ID] {
			err = multierr.Append(err, fmt.Errorf("tab %q: duplicate id", t.ID))
		}
		seen[t.ID] = true
		if _, ok := b.Components.Lookup(t.ID); !ok {
			err = multierr.Append(err, fmt.Errorf("tab %q: no component registered", t.ID))
		}
	}

	for _, section := range []string{core.SectionDashboard, core.SectionAnalytics} {
		err = multierr.Append(err, checkCharts(section, b.Config.Charts(section)))
	}
	return err
}

func checkCharts(section string, charts map[string]core.ChartConfig) error {
	names := make([]string, 0, len(charts))
	for name := range charts {
		names = append(names, name)
	}
	sort.Strings(names)

	var err error
	for _, name := range names {
		chart := charts[name]
		if !chart.Type.Valid() {
			err = multierr.Append(err, fmt.Errorf("chart %s/%s: unknown type %q", section, name, chart.Type))
		}
		for i, p := range chart.Data {
			if _, clash := p.Values[p.LabelKey]; clash {
				err = multierr.Append(err, fmt.Errorf("chart %s/%s: data[%d] uses %q as both label and value", section, name, i, p.LabelKey))
			}
			for _, key := range chart.DataKeys {
				if _, ok := p.Value(key); !ok {
					err = multierr.Append(err, fmt.Errorf("chart %s/%s: data[%d] (%s) has no numeric field %q", section, name, i, p.Label, key))
				}
			}
		}
	}
	return err
}
