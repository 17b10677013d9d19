package core

import "time"

// DateLayout is the civil-date form used for every date shown in the tables.
const DateLayout = "2006-01-02"

// Property is one row of the property management table. Rows live only for the
// duration of a render and are rebuilt from the seed every time.
type Property struct {
	ID             int
	Name           string
	Status         string
	NextAction     string
	NextActionDate time.Time
}

// FormattedNextActionDate returns NextActionDate as YYYY-MM-DD.
func (p Property) FormattedNextActionDate() string {
	return p.NextActionDate.Format(DateLayout)
}

// SeedProperties returns a fresh copy of the property rows shown by the
// property management tab.
func SeedProperties() []Property {
	return []Property{
		{ID: 1, Name: "Shopping Center A", Status: "Vacant", NextAction: "Occupy", NextActionDate: civilDate(2023, time.September, 15)},
		{ID: 2, Name: "Office Building B", Status: "Occupied", NextAction: "Vacate", NextActionDate: civilDate(2023, time.October, 1)},
		{ID: 3, Name: "Retail Space C", Status: "Vacant", NextAction: "Occupy", NextActionDate: civilDate(2023, time.September, 20)},
	}
}

func civilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
