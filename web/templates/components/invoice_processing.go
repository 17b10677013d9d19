package components

import (
	"dashboard-customization/internal/core"

	"github.com/a-h/templ"
)

// InvoiceProcessing renders the invoice tracking table with currency-prefixed amounts.
func InvoiceProcessing(cfg *core.AppConfig) templ.Component {
	invoices := core.SeedInvoices()

	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{inv.Property, inv.FormattedAmount(), inv.Status, inv.FormattedDueDate()})
	}
	return tableCard("Invoice Processing",
		[]string{"Property", "Amount", "Status", "Due Date"}, rows)
}
