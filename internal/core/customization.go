package core

// Tab identifiers of the shipped dashboard.
const (
	TabPropertyManagement = "propertyManagement"
	TabInvoiceProcessing  = "invoiceProcessing"
)

// DefaultConfig returns the QuoinStone Group customization. Each call builds a
// new value, so callers may modify the result freely.
func DefaultConfig() AppConfig {
	return AppConfig{
		Title:          "QuoinStone Group - Property Management",
		CompanyName:    "QuoinStone Group",
		Logo:           "/path/to/quoinstone-logo.png",
		PrimaryColor:   "#3B82F6",
		SecondaryColor: "#60A5FA",
		UserName:       "Tim Struth",
		Dashboard: DashboardConfig{
			Tabs: []TabConfig{
				{
					ID:          TabPropertyManagement,
					Label:       "Property Management",
					Description: "Manage property occupancy and actions",
					Icon:        IconHome,
				},
				{
					ID:          TabInvoiceProcessing,
					Label:       "Invoice Processing",
					Description: "Handle invoice payments and tracking",
					Icon:        IconFileText,
				},
			},
			Charts: map[string]ChartConfig{
				"propertyStatus": {
					Type:     ChartPie,
					DataKeys: []string{"value"},
					Colors:   []string{"#3B82F6", "#60A5FA", "#93C5FD"},
					Data: []DataPoint{
						NewDataPoint("name", "Vacant", "value", 30),
						NewDataPoint("name", "Occupied", "value", 50),
						NewDataPoint("name", "In Process", "value", 20),
					},
				},
				"invoiceStatus": {
					Type:     ChartBar,
					DataKeys: []string{"count"},
					Colors:   []string{"#3B82F6"},
					Data: []DataPoint{
						NewDataPoint("name", "Pending", "count", 15),
						NewDataPoint("name", "Paid", "count", 25),
						NewDataPoint("name", "Overdue", "count", 5),
					},
				},
			},
		},
		Analytics: AnalyticsConfig{
			Charts: map[string]ChartConfig{
				"propertyOccupancyRate": {
					Type:     ChartLine,
					DataKeys: []string{"rate"},
					Colors:   []string{"#3B82F6"},
					Data: []DataPoint{
						NewDataPoint("month", "Jan", "rate", 75),
						NewDataPoint("month", "Feb", "rate", 78),
						NewDataPoint("month", "Mar", "rate", 80),
						NewDataPoint("month", "Apr", "rate", 82),
					},
				},
				"invoiceProcessingEfficiency": {
					Type:     ChartBar,
					DataKeys: []string{"efficiency"},
					Colors:   []string{"#60A5FA"},
					Data: []DataPoint{
						NewDataPoint("month", "Jan", "efficiency", 85),
						NewDataPoint("month", "Feb", "efficiency", 87),
						NewDataPoint("month", "Mar", "efficiency", 90),
						NewDataPoint("month", "Apr", "efficiency", 92),
					},
				},
			},
		},
		Clients: []Client{
			{ID: "client1", Name: "Shopping Center A", Industry: "Retail"},
			{ID: "client2", Name: "Office Building B", Industry: "Commercial"},
			{ID: "client3", Name: "Retail Space C", Industry: "Retail"},
		},
		Features: Features{
			"propertyManagement":  true,
			"invoiceProcessing":   true,
			"reporting":           true,
			"clientCommunication": true,
		},
	}
}
