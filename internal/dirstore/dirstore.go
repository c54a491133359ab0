// Package dirstore holds the in-memory view of the directory database used by
// commands that mutate it. A Store is loaded once, mutated in place and
// written back by Save only when Modified is set.
package dirstore

import (
	"fmt"

	"github.com/mrlokans/jumpdb/internal/entities"
)

// Repository is the persistence backend of a Store.
type Repository interface {
	GetAll() ([]entities.Directory, error)
	SaveAll(dirs []entities.Directory) error
}

type Store struct {
	Dirs     []entities.Directory
	Modified bool

	repo Repository
}

// Open loads every directory from repo.
func Open(repo Repository) (*Store, error) {
	dirs, err := repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load directories: %w", err)
	}
	return &Store{Dirs: dirs, repo: repo}, nil
}

// New returns a store over the given records with no persistence backend.
// Save on such a store only clears Modified.
func New(dirs []entities.Directory) *Store {
	return &Store{Dirs: dirs}
}

func (s *Store) IsEmpty() bool {
	return len(s.Dirs) == 0
}

// Find returns the directory whose path equals path exactly, or nil.
func (s *Store) Find(path string) *entities.Directory {
	for i := range s.Dirs {
		if s.Dirs[i].Path == path {
			return &s.Dirs[i]
		}
	}
	return nil
}

// Add appends dir. It does not check for an existing record with the same path.
func (s *Store) Add(dir entities.Directory) {
	s.Dirs = append(s.Dirs, dir)
}

// Save persists the store if it was modified.
func (s *Store) Save() error {
	if !s.Modified {
		return nil
	}
	if s.repo != nil {
		if err := s.repo.SaveAll(s.Dirs); err != nil {
			return fmt.Errorf("failed to save directories: %w", err)
		}
	}
	s.Modified = false
	return nil
}
