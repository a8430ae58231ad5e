// Package production manages the production line collection.
package production

// Material is one input consumed by a production line run.
type Material struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Line is a production line. Status is a free-form label (e.g. active,
// maintenance); today_produced and output_rate are independently settable.
type Line struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Product          string     `json:"product"`
	Materials        []Material `json:"materials"`
	OutputRate       int        `json:"output_rate"`
	OutputUnit       string     `json:"output_unit"`
	Status           string     `json:"status"`
	Efficiency       float64    `json:"efficiency"`
	TodayProduced    int        `json:"today_produced"`
	TargetProduction int        `json:"target_production"`
}

// StatusActive is the status label counted by the dashboard.
const StatusActive = "active"
