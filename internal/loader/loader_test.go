package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/entities"
)

const gitaCatalog = `
[[book]]
number = 1
name = "Bhagavad Gita"
image = "covers/gita.jpg"

  [[book.chapter]]
  number = 1
  name = "Arjuna Vishada Yoga"

    [[book.chapter.section]]
    number = 1
    name = "Opening"

      [[book.chapter.section.shloka]]
      number = 1
      text = "dharma-kshetre kuru-kshetre"

        [[book.chapter.section.shloka.audio]]
        file_name = "1-1.mp3"
        url = "audio/1-1.mp3"

        [[book.chapter.section.shloka.audio]]
        file_name = "1-1-slow.mp3"
        url = "https://cdn.example.com/1-1-slow.mp3"

    [[book.chapter.shloka]]
    number = 2
    text = "sanjaya uvacha"

  [[book.chapter]]
  number = 2
  name = "Sankhya Yoga"
`

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "loader.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func count(t *testing.T, db *database.Database, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.DB.Model(model).Count(&n).Error)
	return n
}

func TestParse(t *testing.T) {
	t.Run("nested tree", func(t *testing.T) {
		cat, err := Parse(strings.NewReader(gitaCatalog))
		require.NoError(t, err)

		require.Len(t, cat.Books, 1)
		book := cat.Books[0]
		assert.Equal(t, "Bhagavad Gita", book.Name)
		require.Len(t, book.Chapters, 2)
		require.Len(t, book.Chapters[0].Sections, 1)
		assert.Len(t, book.Chapters[0].Sections[0].Shlokas[0].Audio, 2)
		assert.Len(t, book.Chapters[0].Shlokas, 1)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Parse(strings.NewReader("[[book]]\nnumber = 1\nname = \"Gita\"\nauthor = \"Vyasa\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "book.author")
	})

	t.Run("missing names are rejected", func(t *testing.T) {
		_, err := Parse(strings.NewReader("[[book]]\nnumber = 1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid catalog")
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Parse(strings.NewReader("[[book]\n"))
		assert.Error(t, err)
	})
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(gitaCatalog), 0o600))

	cat, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, cat.Books, 1)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoader_Load(t *testing.T) {
	cat, err := Parse(strings.NewReader(gitaCatalog))
	require.NoError(t, err)

	t.Run("writes the whole tree", func(t *testing.T) {
		db := setupTestDB(t)

		stats, err := New(db.DB).Load(context.Background(), cat, false)
		require.NoError(t, err)
		assert.Equal(t, Stats{Books: 1, Chapters: 2, Sections: 1, Shlokas: 2, AudioFiles: 2}, stats)

		var loose entities.Shloka
		require.NoError(t, db.DB.Where("shloka_number = ?", 2).First(&loose).Error)
		assert.Nil(t, loose.SectionID)

		var nested entities.Shloka
		require.NoError(t, db.DB.Where("shloka_number = ?", 1).First(&nested).Error)
		require.NotNil(t, nested.SectionID)
		assert.Equal(t, int64(2), count(t, db, &entities.AudioFile{}))
	})

	t.Run("dry run reports without writing", func(t *testing.T) {
		db := setupTestDB(t)

		stats, err := New(db.DB).Load(context.Background(), cat, true)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Shlokas)
		assert.Zero(t, count(t, db, &entities.Book{}))
		assert.Zero(t, count(t, db, &entities.Shloka{}))
	})

	t.Run("loading twice appends", func(t *testing.T) {
		db := setupTestDB(t)
		loader := New(db.DB)

		_, err := loader.Load(context.Background(), cat, false)
		require.NoError(t, err)
		_, err = loader.Load(context.Background(), cat, false)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count(t, db, &entities.Book{}))
	})
}

func TestStats_String(t *testing.T) {
	s := Stats{Books: 1, Chapters: 2, Sections: 3, Shlokas: 4, AudioFiles: 5}
	assert.Equal(t, "1 books, 2 chapters, 3 sections, 4 shlokas, 5 audio files", s.String())
}
