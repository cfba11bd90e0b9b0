package models

import "time"

// PlannerMetrics aggregates engine counters for API consumption.
type PlannerMetrics struct {
	BuildsTotal              uint64    `json:"builds_total"`
	ClashesTotal             uint64    `json:"clashes_total"`
	AverageDetectionDuration float64   `json:"average_detection_ms"`
	AverageLayoutDuration    float64   `json:"average_layout_ms"`
	GeneratedAt              time.Time `json:"generated_at"`
}
