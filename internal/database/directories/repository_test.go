package directories

import (
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
	dbPath := filepath.Join(t.TempDir(), "directories.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Directory{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}

	return db, repo, cleanup
}

func TestSaveAll(t *testing.T) {
	t.Run("inserts new directories", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		dirs := []entities.Directory{
			{Path: "/b", Rank: 2, LastAccessed: 200},
			{Path: "/a", Rank: 1.5, LastAccessed: 100},
		}
		require.NoError(t, repo.SaveAll(dirs))

		assert.NotZero(t, dirs[0].ID)
		assert.NotZero(t, dirs[1].ID)

		stored, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, "/a", stored[0].Path)
		assert.Equal(t, 1.5, stored[0].Rank)
		assert.Equal(t, int64(100), stored[0].LastAccessed)
		assert.Equal(t, "/b", stored[1].Path)
	})

	t.Run("updates loaded directories in place", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		require.NoError(t, repo.SaveAll([]entities.Directory{{Path: "/a", Rank: 1, LastAccessed: 100}}))

		loaded, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, loaded, 1)

		loaded[0].Rank = 4
		loaded[0].LastAccessed = 900
		require.NoError(t, repo.SaveAll(loaded))

		dir, err := repo.GetByPath("/a")
		require.NoError(t, err)
		require.NotNil(t, dir)
		assert.Equal(t, float64(4), dir.Rank)
		assert.Equal(t, int64(900), dir.LastAccessed)

		count, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("new record with existing path updates instead of duplicating", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		require.NoError(t, repo.SaveAll([]entities.Directory{{Path: "/a", Rank: 1, LastAccessed: 100}}))
		require.NoError(t, repo.SaveAll([]entities.Directory{{Path: "/a", Rank: 7, LastAccessed: 300}}))

		count, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		dir, err := repo.GetByPath("/a")
		require.NoError(t, err)
		assert.Equal(t, float64(7), dir.Rank)
		assert.Equal(t, int64(300), dir.LastAccessed)
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		assert.NoError(t, repo.SaveAll(nil))
	})

	t.Run("saves more than one batch", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		dirs := make([]entities.Directory, saveBatchSize+10)
		for i := range dirs {
			dirs[i] = entities.Directory{Path: filepath.Join("/batch", string(rune('a'+i%26)), strconv.Itoa(i)), Rank: 1}
		}
		require.NoError(t, repo.SaveAll(dirs))

		count, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(len(dirs)), count)
	})
}

func TestGetByPath(t *testing.T) {
	t.Run("returns nil when missing", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		dir, err := repo.GetByPath("/missing")
		assert.NoError(t, err)
		assert.Nil(t, dir)
	})
}

func TestDeleteByPath(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveAll([]entities.Directory{{Path: "/a"}, {Path: "/b"}}))
	require.NoError(t, repo.DeleteByPath("/a"))

	dirs, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	assert.Equal(t, "/b", dirs[0].Path)
}
