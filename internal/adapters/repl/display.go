package repl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"dashboard-customization/internal/app"
	"dashboard-customization/internal/core"
)

func printTabs(w io.Writer, result *app.TabListResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintf(w, "  %-20s %-22s %s\n", "ID", "LABEL", "DESCRIPTION")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, e := range result.Tabs {
		mark := ""
		if !e.Registered {
			mark = " (no component)"
		}
		fmt.Fprintf(w, "  %-20s %-22s %s%s\n", e.Tab.ID, e.Tab.Label, e.Tab.Description, mark)
	}
	fmt.Fprintln(w, strings.Repeat("=", 72))
}

func printChart(w io.Writer, result *app.ChartResult) {
	c := result.Chart
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintf(w, "  %s/%s  (%s)\n", result.Section, result.Name, c.Type)
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintf(w, "  %-16s", "LABEL")
	for _, k := range c.DataKeys {
		fmt.Fprintf(w, " %12s", strings.ToUpper(k))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 62))
	for _, p := range c.Data {
		fmt.Fprintf(w, "  %-16s", p.Label)
		for _, k := range c.DataKeys {
			cell := "-"
			if v, ok := p.Value(k); ok {
				cell = strconv.FormatFloat(v, 'f', -1, 64)
			}
			fmt.Fprintf(w, " %12s", cell)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, strings.Repeat("=", 62))
}

func printClients(w io.Writer, clients []core.Client) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 62))
	if len(clients) == 0 {
		fmt.Fprintln(w, "  No clients configured.")
		fmt.Fprintln(w, strings.Repeat("=", 62))
		return
	}
	fmt.Fprintf(w, "  %-10s %-28s %s\n", "ID", "NAME", "INDUSTRY")
	fmt.Fprintln(w, strings.Repeat("-", 62))
	for _, c := range clients {
		fmt.Fprintf(w, "  %-10s %-28s %s\n", c.ID, c.Name, c.Industry)
	}
	fmt.Fprintln(w, strings.Repeat("=", 62))
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `
Commands:
  /tabs                       list dashboard tabs
  /render <tab-id>            render a tab as HTML
  /chart <section> <name>     show a chart's data (section: dashboard, analytics)
  /clients                    list clients
  /data <list>                show a reference list
  /check                      verify tab and chart consistency
  /help                       this help
  /exit                       leave`)
}
