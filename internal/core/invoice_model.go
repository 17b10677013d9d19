package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every invoice amount.
const CurrencySymbol = "£"

// Invoice is one row of the invoice processing table. Like Property it is
// component-local and never stored.
type Invoice struct {
	ID       int
	Property string
	Amount   decimal.Decimal
	Status   string
	DueDate  time.Time
}

// FormattedAmount returns the amount with the currency prefix, e.g. "£5000".
func (i Invoice) FormattedAmount() string {
	return CurrencySymbol + i.Amount.String()
}

// FormattedDueDate returns DueDate as YYYY-MM-DD.
func (i Invoice) FormattedDueDate() string {
	return i.DueDate.Format(DateLayout)
}

// SeedInvoices returns a fresh copy of the invoice rows shown by the invoice
// processing tab.
func SeedInvoices() []Invoice {
	return []Invoice{
		{ID: 1, Property: "Shopping Center A", Amount: decimal.NewFromInt(5000), Status: "Pending", DueDate: civilDate(2023, time.September, 30)},
		{ID: 2, Property: "Office Building B", Amount: decimal.NewFromInt(7500), Status: "Paid", DueDate: civilDate(2023, time.September, 15)},
		{ID: 3, Property: "Retail Space C", Amount: decimal.NewFromInt(3000), Status: "Overdue", DueDate: civilDate(2023, time.September, 1)},
	}
}
