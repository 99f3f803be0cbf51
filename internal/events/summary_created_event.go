package events

import (
	"time"

	"log-summary/internal/models"
)

// SummaryCreatedEvent announces that a new analysis run was stored. It is produced by the
// ingestion service right after the summary store accepted the run, and consumed by the export
// workers that write the per-path CSV.
//
// Duplicate uploads of a run that is already stored do not produce an event.
//
// Example JSON:
//
//	{
//	  "summaryId": "01HMZ3NDEKTSV4RRFFQ69G5FAV",
//	  "server": "app-01",
//	  "version": "1.2.3",
//	  "createdAt": "2024-01-01T00:05:00Z",
//	  "paths": [
//	    {"path": "/a", "count": 1, "min": 50, "max": 50, "sum": 50, "mean": 50, "median": 50, "p95": 50, "p99": 50},
//	    {"path": "/b", "count": 1, "min": 150, "max": 150, "sum": 150, "mean": 150, "median": 150, "p95": 150, "p99": 150}
//	  ]
//	}
type SummaryCreatedEvent struct {
	SummaryID string                `json:"summaryId"`
	Server    string                `json:"server"`
	Version   string                `json:"version"`
	CreatedAt time.Time             `json:"createdAt"`
	Paths     models.PathAggregates `json:"paths"`
}
