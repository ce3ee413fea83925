package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/config"
	"github.com/mrlokans/audiobook/internal/entities"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase_MigratesAllTables(t *testing.T) {
	db := setupTestDB(t)

	for _, model := range Models {
		assert.True(t, db.DB.Migrator().HasTable(model), "missing table for %T", model)
	}
	assert.NoError(t, db.Ping())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.Database{Driver: "oracle", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"./audiobook.db", "./audiobook.db?_foreign_keys=on"},
		{"file.db?cache=shared", "file.db?cache=shared&_foreign_keys=on"},
		{"file.db?_foreign_keys=off", "file.db?_foreign_keys=off"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.in))
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)

	err := db.DB.Create(&entities.Chapter{BookID: 999, ChapterNumber: 1, ChapterName: "Orphan"}).Error
	assert.Error(t, err)
}

func TestRestrict(t *testing.T) {
	db := setupTestDB(t)

	book := entities.Book{BookName: "Gita"}
	require.NoError(t, db.DB.Create(&book).Error)
	assert.NoError(t, Restrict(db.DB, &entities.Chapter{}, "book_id", book.ID, "chapters"))

	require.NoError(t, db.DB.Create(&entities.Chapter{BookID: book.ID, ChapterName: "One"}).Error)
	err := Restrict(db.DB, &entities.Chapter{}, "book_id", book.ID, "chapters")
	assert.ErrorIs(t, err, ErrIntegrity)
	assert.ErrorContains(t, err, "1 chapters")

	ok, err := Exists(db.DB, &entities.Book{}, book.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, Translate(nil))
	assert.ErrorIs(t, Translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, Translate(fmt.Errorf("wrapped: %w", gorm.ErrForeignKeyViolated)), ErrIntegrity)

	verr := NewValidationError("book", "required")
	assert.Same(t, verr, Translate(verr))

	other := errors.New("disk full")
	assert.Equal(t, other, Translate(other))
}

func TestValidationError(t *testing.T) {
	var verr *ValidationError
	verr = verr.Add("title", "required").Add("book", "missing")

	assert.Equal(t, "validation failed: book: missing; title: required", verr.Error())
	assert.True(t, IsValidationError(fmt.Errorf("ctx: %w", verr)))
	assert.False(t, IsValidationError(ErrNotFound))
	assert.Equal(t, `invalid pk "3" - object does not exist`, MissingReference(3))
}
