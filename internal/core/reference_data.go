package core

import "slices"

// Reference list names, as exposed by the bundle's data member.
const (
	DataPropertyStatuses = "propertyStatuses"
	DataInvoiceStatuses  = "invoiceStatuses"
	DataActionTypes      = "actionTypes"
)

// ReferenceData holds illustrative label vocabularies. Nothing enforces them.
type ReferenceData struct {
	PropertyStatuses []string `json:"propertyStatuses" yaml:"propertyStatuses"`
	InvoiceStatuses  []string `json:"invoiceStatuses" yaml:"invoiceStatuses"`
	ActionTypes      []string `json:"actionTypes" yaml:"actionTypes"`
}

// DefaultReferenceData returns a fresh copy of the shipped vocabularies.
func DefaultReferenceData() ReferenceData {
	return ReferenceData{
		PropertyStatuses: []string{"Vacant", "Occupied", "In Process"},
		InvoiceStatuses:  []string{"Pending", "Paid", "Overdue"},
		ActionTypes:      []string{"Occupy", "Vacate", "Maintain"},
	}
}

// Clone returns a copy of d whose lists share no backing arrays with d.
func (d ReferenceData) Clone() ReferenceData {
	return ReferenceData{
		PropertyStatuses: slices.Clone(d.PropertyStatuses),
		InvoiceStatuses:  slices.Clone(d.InvoiceStatuses),
		ActionTypes:      slices.Clone(d.ActionTypes),
	}
}

// Names lists the reference lists in declaration order.
func (d ReferenceData) Names() []string {
	return []string{DataPropertyStatuses, DataInvoiceStatuses, DataActionTypes}
}

// Lookup returns a copy of the named list.
func (d ReferenceData) Lookup(name string) ([]string, bool) {
	var list []string
	switch name {
	case DataPropertyStatuses:
		list = d.PropertyStatuses
	case DataInvoiceStatuses:
		list = d.InvoiceStatuses
	case DataActionTypes:
		list = d.ActionTypes
	default:
		return nil, false
	}
	return slices.Clone(list), true
}
