package dto

import "github.com/team7/classroom-informer-api/internal/models"

// AvailabilityCheckResponse wraps the alerts produced by a favorites
// availability check.
type AvailabilityCheckResponse struct {
	CheckedAt   string         `json:"checked_at"`
	AlertsCount int            `json:"alerts_count"`
	Alerts      []models.Alert `json:"alerts"`
}
