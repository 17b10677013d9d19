package components

import (
	"dashboard-customization/internal/core"

	"github.com/a-h/templ"
)

// PropertyManagement renders the property occupancy table. cfg is accepted so
// every tab component shares one signature; the table does not read it.
func PropertyManagement(cfg *core.AppConfig) templ.Component {
	properties := core.SeedProperties()

	rows := make([][]string, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, []string{p.Name, p.Status, p.NextAction, p.FormattedNextActionDate()})
	}
	return tableCard("Property Management",
		[]string{"Property", "Status", "Next Action", "Next Action Date"}, rows)
}
