package notifier

import "time"

// ImportFinished is event sent after import run.
type ImportFinished struct {
	RunID                 string    `json:"runId"`
	StartedAt             time.Time `json:"startedAt"`
	FinishedAt            time.Time `json:"finishedAt"`
	DryRun                bool      `json:"dryRun"`
	Committed             bool      `json:"committed"`
	Inserted              int       `json:"inserted"`
	SkippedDuplicates     int       `json:"skippedDuplicates"`
	SkippedNoManufacturer int       `json:"skippedNoManufacturer"`
}
