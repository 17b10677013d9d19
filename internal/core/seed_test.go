package core_test

import (
	"testing"

	"dashboard-customization/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedProperties(t *testing.T) {
	props := core.SeedProperties()
	require.Len(t, props, 3)

	assert.Equal(t, "Shopping Center A", props[0].Name)
	assert.Equal(t, "Vacant", props[0].Status)
	assert.Equal(t, "Occupy", props[0].NextAction)
	assert.Equal(t, "2023-09-15", props[0].FormattedNextActionDate())
	assert.Equal(t, "2023-10-01", props[1].FormattedNextActionDate())
	assert.Equal(t, "2023-09-20", props[2].FormattedNextActionDate())

	props[0].Status = "Occupied"
	assert.Equal(t, "Vacant", core.SeedProperties()[0].Status, "seed must be rebuilt on every call")
}

func TestSeedInvoices(t *testing.T) {
	invoices := core.SeedInvoices()
	require.Len(t, invoices, 3)

	want := []struct {
		property, amount, status, due string
	}{
		{"Shopping Center A", "£5000", "Pending", "2023-09-30"},
		{"Office Building B", "£7500", "Paid", "2023-09-15"},
		{"Retail Space C", "£3000", "Overdue", "2023-09-01"},
	}
	for i, w := range want {
		assert.Equal(t, w.property, invoices[i].Property)
		assert.Equal(t, w.amount, invoices[i].FormattedAmount())
		assert.Equal(t, w.status, invoices[i].Status)
		assert.Equal(t, w.due, invoices[i].FormattedDueDate())
	}
}
