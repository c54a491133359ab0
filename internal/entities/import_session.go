package entities

import (
	"time"
)

type ImportStatus string

const (
	ImportStatusRunning   ImportStatus = "running"
	ImportStatusCompleted ImportStatus = "completed"
	ImportStatusFailed    ImportStatus = "failed"
)

// ImportSession records one run of the z database import.
type ImportSession struct {
	ID                 uint         `gorm:"primaryKey" json:"id"`
	SourcePath         string       `gorm:"size:4096" json:"source_path"`
	Merge              bool         `json:"merge"`
	Status             ImportStatus `gorm:"size:20;default:'running'" json:"status"`
	LinesTotal         int          `json:"lines_total"`
	LinesImported      int          `json:"lines_imported"`
	LinesSkipped       int          `json:"lines_skipped"`
	DirectoriesCreated int          `json:"directories_created"`
	DirectoriesUpdated int          `json:"directories_updated"`
	Errors             string       `gorm:"type:text" json:"errors,omitempty"` // JSON array of errors
	StartedAt          time.Time    `json:"started_at"`
	CompletedAt        *time.Time   `json:"completed_at,omitempty"`
}

func (ImportSession) TableName() string {
	return "import_sessions"
}
