package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/jumpdb/internal/database"
	"github.com/mrlokans/jumpdb/internal/utils"
)

// configureLogging routes operational log output (database setup and the
// like) to stderr only in verbose mode.
func configureLogging(verbose bool) {
	if verbose {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		return
	}
	log.SetOutput(io.Discard)
}

// absPath expands "~" and makes path absolute.
func absPath(path string) (string, error) {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// openDatabase opens the database at dbPath, creating its parent directory.
func openDatabase(dbPath string) (*database.Database, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}
