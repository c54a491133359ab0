// Package imports provides database operations for import session history.
//
// # Usage
//
//	repo := imports.NewRepository(db)
//	session, err := repo.Start("/home/me/.z", true)
//	// ... run the import, fill in the counters ...
//	err = repo.Complete(session, lineErrors)
package imports

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/jumpdb/internal/entities"
)

// maxStoredErrors caps how many per-line errors are kept on a session row.
const maxStoredErrors = 100

// Repository handles all import session database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new imports repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Start creates a running import session.
func (r *Repository) Start(sourcePath string, merge bool) (*entities.ImportSession, error) {
	session := &entities.ImportSession{
		SourcePath: sourcePath,
		Merge:      merge,
		Status:     entities.ImportStatusRunning,
		StartedAt:  time.Now(),
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Complete marks the session completed, storing its counters and up to
// maxStoredErrors of the given per-line errors.
func (r *Repository) Complete(session *entities.ImportSession, lineErrors []string) error {
	if len(lineErrors) > maxStoredErrors {
		lineErrors = lineErrors[:maxStoredErrors]
	}
	if len(lineErrors) > 0 {
		data, err := json.Marshal(lineErrors)
		if err != nil {
			return err
		}
		session.Errors = string(data)
	}

	now := time.Now()
	session.Status = entities.ImportStatusCompleted
	session.CompletedAt = &now
	return r.db.Save(session).Error
}

// Fail marks the session failed with the given error.
func (r *Repository) Fail(session *entities.ImportSession, cause error) error {
	data, err := json.Marshal([]string{cause.Error()})
	if err != nil {
		return err
	}

	now := time.Now()
	session.Status = entities.ImportStatusFailed
	session.Errors = string(data)
	session.CompletedAt = &now
	return r.db.Save(session).Error
}

// Recent returns the most recent sessions, newest first.
func (r *Repository) Recent(limit int) ([]entities.ImportSession, error) {
	if limit <= 0 {
		limit = 10
	}

	var sessions []entities.ImportSession
	err := r.db.Order("started_at DESC").Order("id DESC").Limit(limit).Find(&sessions).Error
	return sessions, err
}
