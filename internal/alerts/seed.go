package alerts

import "time"

// DemoAlerts returns the demo security alerts loaded at startup when demo
// seeding is enabled. Timestamps are relative to now so the feed looks live.
func DemoAlerts(now time.Time) []Alert {
	return []Alert{
		{
			Title:       "Unauthorized Access Detected",
			Description: "Security cameras detected unauthorized personnel attempting to access Warehouse Section C.",
			Severity:    "Critical",
			Category:    "Theft",
			Location:    "Warehouse - Section C",
			Timestamp:   now.Add(-2 * time.Hour),
			Status:      StatusActive,
		},
		{
			Title:       "Fire Alarm Activated",
			Description: "Smoke detected in Production Line 3 area. Automatic sprinkler system activated.",
			Severity:    "Critical",
			Category:    "Fire",
			Location:    "Production Floor - Line 3",
			Timestamp:   now.Add(-1 * time.Hour),
			Status:      StatusActive,
		},
		{
			Title:       "Shipment Discrepancy Alert",
			Description: "Loading dock reported shipment leaving facility without matching order documentation.",
			Severity:    "Warning",
			Category:    "UnauthorizedShipment",
			Location:    "Loading Dock - Bay 2",
			Timestamp:   now.Add(-24 * time.Hour),
			Status:      StatusResolved,
		},
	}
}
