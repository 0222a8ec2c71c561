package database

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/learningmate/examstore/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestMigrate_CreatesSkillTables(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	assert.True(t, db.DB.Migrator().HasTable("exams"))
	for _, skill := range entities.Skills {
		assert.True(t, db.DB.Migrator().HasTable(skill.TopicsTable()), skill.TopicsTable())
		assert.True(t, db.DB.Migrator().HasTable(skill.QuestionsTable()), skill.QuestionsTable())
	}
}

func TestMigrate_IsRepeatable(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Migrate())
	require.NoError(t, db.Migrate())
}

func TestConnection(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("runs statements on one connection", func(t *testing.T) {
		err := db.Connection(ctx, func(conn *gorm.DB) error {
			if err := conn.Exec("CREATE TEMP TABLE scratch (n INTEGER)").Error; err != nil {
				return err
			}
			if err := conn.Exec("INSERT INTO scratch (n) VALUES (1), (2)").Error; err != nil {
				return err
			}
			// Temp tables are private to a connection.
			var count int64
			if err := conn.Raw("SELECT COUNT(*) FROM scratch").Scan(&count).Error; err != nil {
				return err
			}
			assert.Equal(t, int64(2), count)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("propagates callback error", func(t *testing.T) {
		boom := errors.New("boom")

		err := db.Connection(ctx, func(conn *gorm.DB) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
	})

	t.Run("releases connection after error", func(t *testing.T) {
		_ = db.Connection(ctx, func(conn *gorm.DB) error {
			return errors.New("first")
		})

		err := db.Connection(ctx, func(conn *gorm.DB) error {
			return conn.Exec("SELECT 1").Error
		})

		assert.NoError(t, err)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := db.Connection(cancelled, func(conn *gorm.DB) error {
			return conn.Exec("SELECT 1").Error
		})

		assert.Error(t, err)
	})
}

func TestPing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, db.Ping(context.Background()))
}

func TestClose(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping(context.Background()))
}
