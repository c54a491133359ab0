// Package directories provides database operations for directory records.
//
// # Usage
//
//	repo := directories.NewRepository(db)
//	dirs, err := repo.GetAll()
package directories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/jumpdb/internal/entities"
)

// saveBatchSize keeps each INSERT well below SQLite's bound-variable limit.
const saveBatchSize = 500

// Repository handles all directory database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new directories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns every directory ordered by path.
func (r *Repository) GetAll() ([]entities.Directory, error) {
	var dirs []entities.Directory
	err := r.db.Order("path ASC").Find(&dirs).Error
	return dirs, err
}

// GetByPath returns the directory with the exact path, or nil if none exists.
func (r *Repository) GetByPath(path string) (*entities.Directory, error) {
	var dir entities.Directory
	err := r.db.Where("path = ?", path).First(&dir).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dir, nil
}

// Count returns the number of stored directories.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Directory{}).Count(&count).Error
	return count, err
}

// SaveAll writes the given directories in a single transaction. Records
// with an ID are updated in place; new records are inserted, falling back to
// an update when the path already exists.
func (r *Repository) SaveAll(dirs []entities.Directory) error {
	if len(dirs) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var created []*entities.Directory

		for i := range dirs {
			dir := &dirs[i]
			if dir.ID == 0 {
				created = append(created, dir)
				continue
			}

			err := tx.Model(&entities.Directory{}).Where("id = ?", dir.ID).Updates(map[string]any{
				"rank":          dir.Rank,
				"last_accessed": dir.LastAccessed,
			}).Error
			if err != nil {
				return err
			}
		}

		for start := 0; start < len(created); start += saveBatchSize {
			end := min(start+saveBatchSize, len(created))

			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "path"}},
				DoUpdates: clause.AssignmentColumns([]string{"rank", "last_accessed", "updated_at"}),
			}).Create(created[start:end]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByPath removes the directory with the given path.
func (r *Repository) DeleteByPath(path string) error {
	return r.db.Where("path = ?", path).Delete(&entities.Directory{}).Error
}
