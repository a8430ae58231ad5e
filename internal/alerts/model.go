// Package alerts manages security alerts. Alerts are admin-only and have a
// single one-way transition: Active to Resolved.
package alerts

import "time"

// Alert lifecycle statuses.
const (
	StatusActive   = "Active"
	StatusResolved = "Resolved"
)

// Alert is a facility security alert. The timestamp is immutable once the
// alert is created.
type Alert struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
}
