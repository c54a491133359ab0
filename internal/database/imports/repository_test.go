package imports

import (
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/jumpdb/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := filepath.Join(t.TempDir(), "imports.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.ImportSession{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}

	return db, NewRepository(db), cleanup
}

func TestStartAndComplete(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	session, err := repo.Start("/home/me/.z", true)
	require.NoError(t, err)
	assert.NotZero(t, session.ID)
	assert.Equal(t, entities.ImportStatusRunning, session.Status)

	session.LinesTotal = 3
	session.LinesImported = 2
	session.LinesSkipped = 1
	require.NoError(t, repo.Complete(session, []string{"line 2: invalid entry"}))

	var stored entities.ImportSession
	require.NoError(t, db.First(&stored, session.ID).Error)
	assert.Equal(t, entities.ImportStatusCompleted, stored.Status)
	assert.Equal(t, 3, stored.LinesTotal)
	assert.Equal(t, 1, stored.LinesSkipped)
	assert.True(t, stored.Merge)
	assert.JSONEq(t, `["line 2: invalid entry"]`, stored.Errors)
	assert.NotNil(t, stored.CompletedAt)
}

func TestComplete_TruncatesErrors(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	session, err := repo.Start("/z", false)
	require.NoError(t, err)

	var lineErrors []string
	for i := 0; i < maxStoredErrors+5; i++ {
		lineErrors = append(lineErrors, "error "+strconv.Itoa(i))
	}
	require.NoError(t, repo.Complete(session, lineErrors))

	assert.Contains(t, session.Errors, "error 99")
	assert.NotContains(t, session.Errors, "error 100")
}

func TestFail(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	session, err := repo.Start("/z", false)
	require.NoError(t, err)

	require.NoError(t, repo.Fail(session, errors.New("could not read z database")))
	assert.Equal(t, entities.ImportStatusFailed, session.Status)
	assert.JSONEq(t, `["could not read z database"]`, session.Errors)
}

func TestRecent(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	for i := 0; i < 3; i++ {
		_, err := repo.Start("/z"+strconv.Itoa(i), false)
		require.NoError(t, err)
	}

	sessions, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "/z2", sessions[0].SourcePath)
	assert.Equal(t, "/z1", sessions[1].SourcePath)
}
