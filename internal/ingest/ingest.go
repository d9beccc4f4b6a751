package ingest

import (
	"time"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Run summarises one import from Open Library into the catalog.
type Run struct {
	StartedAt       time.Time  `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	Status          string     `json:"status"`
	Subjects        []string   `json:"subjects"`
	BooksMax        int        `json:"books_max"`
	BooksFetched    int        `json:"books_fetched"`
	BooksAdded      int        `json:"books_added"`
	SkippedExisting int        `json:"skipped_existing"`
	SkippedInvalid  int        `json:"skipped_invalid"`
	Error           string     `json:"error,omitempty"`
}
