package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/audiofiles"
	"github.com/mrlokans/audiobook/internal/database/chapters"
	"github.com/mrlokans/audiobook/internal/database/sections"
	"github.com/mrlokans/audiobook/internal/database/shlokas"
	"github.com/mrlokans/audiobook/internal/entities"
)

type fixture struct {
	service *Service
	db      *database.Database

	gita, sutra          entities.Book
	gitaOne, gitaTwo     entities.Chapter
	sutraOne             entities.Chapter
	opening              entities.Section
	inSection, noSection entities.Shloka
}

func setupTestDB(t *testing.T) *fixture {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &fixture{service: NewService(db.DB), db: db}
	f.gita = entities.Book{BookNumber: 1, BookName: "Gita"}
	f.sutra = entities.Book{BookNumber: 2, BookName: "Yoga Sutras"}
	require.NoError(t, db.DB.Create(&f.gita).Error)
	require.NoError(t, db.DB.Create(&f.sutra).Error)

	f.gitaOne = entities.Chapter{BookID: f.gita.ID, ChapterNumber: 1, ChapterName: "Arjuna Vishada"}
	f.sutraOne = entities.Chapter{BookID: f.sutra.ID, ChapterNumber: 1, ChapterName: "Samadhi Pada"}
	f.gitaTwo = entities.Chapter{BookID: f.gita.ID, ChapterNumber: 2, ChapterName: "Sankhya"}
	for _, ch := range []*entities.Chapter{&f.gitaOne, &f.sutraOne, &f.gitaTwo} {
		require.NoError(t, db.DB.Create(ch).Error)
	}

	f.opening = entities.Section{ChapterID: f.gitaOne.ID, SectionNumber: 1, SectionName: "Opening"}
	require.NoError(t, db.DB.Create(&f.opening).Error)

	f.inSection = entities.Shloka{ChapterID: f.gitaOne.ID, SectionID: &f.opening.ID, ShlokaNumber: 1, ShlokText: "dharma kshetre"}
	f.noSection = entities.Shloka{ChapterID: f.gitaOne.ID, ShlokaNumber: 2, ShlokText: "sanjaya uvacha"}
	require.NoError(t, db.DB.Create(&f.inSection).Error)
	require.NoError(t, db.DB.Create(&f.noSection).Error)
	return f
}

func TestService_GetBookDetail(t *testing.T) {
	f := setupTestDB(t)

	detail, err := f.service.GetBookDetail(context.Background(), f.gita.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gita", detail.Book.BookName)
	require.Len(t, detail.Chapters, 2)
	assert.Equal(t, f.gitaOne.ID, detail.Chapters[0].ID)
	assert.Equal(t, f.gitaTwo.ID, detail.Chapters[1].ID)
	for _, ch := range detail.Chapters {
		assert.Equal(t, f.gita.ID, ch.BookID)
	}

	_, err = f.service.GetBookDetail(context.Background(), 404)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestService_ListChaptersOfBook(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()

	list, err := f.service.ListChaptersOfBook(ctx, f.sutra.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.sutraOne.ID, list[0].ID)

	_, err = f.service.ListChaptersOfBook(ctx, 404)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestService_GetChapterDetail(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()

	detail, err := f.service.GetChapterDetail(ctx, f.gita.ID, f.gitaOne.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Sections, 1)
	require.Len(t, detail.Shlokas, 2, "shlokas without a section are included")
	assert.Equal(t, &f.opening.ID, detail.Shlokas[0].SectionID)
	assert.Nil(t, detail.Shlokas[1].SectionID)

	_, err = f.service.GetChapterDetail(ctx, f.sutra.ID, f.gitaOne.ID)
	assert.ErrorIs(t, err, database.ErrNotFound, "chapter of another book")
}

func TestService_GetSectionDetail(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()

	detail, err := f.service.GetSectionDetail(ctx, f.gitaOne.ID, f.opening.ID)
	require.NoError(t, err)
	require.Len(t, detail.Shlokas, 1)
	assert.Equal(t, f.inSection.ID, detail.Shlokas[0].ID)

	_, err = f.service.GetSectionDetail(ctx, f.gitaTwo.ID, f.opening.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestService_DetailAfterCreate(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()

	section := &entities.Section{ChapterID: f.gitaTwo.ID, SectionNumber: 1, SectionName: "New"}
	require.NoError(t, sections.NewRepository(f.db.DB).Create(ctx, section))
	_, err := f.service.GetSectionDetail(ctx, f.gitaTwo.ID, section.ID)
	require.NoError(t, err)

	shloka := &entities.Shloka{ChapterID: f.gitaTwo.ID, SectionID: &section.ID, ShlokaNumber: 1, ShlokText: "new"}
	require.NoError(t, shlokas.NewRepository(f.db.DB).Create(ctx, shloka))
	detail, err := f.service.GetShlokaDetail(ctx, shloka.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.AudioFiles)

	_, err = chapters.NewRepository(f.db.DB).Get(ctx, chapters.Scope{BookID: f.gita.ID}, f.gitaTwo.ID)
	require.NoError(t, err)
}

func TestService_AudioFiles(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	repo := audiofiles.NewRepository(f.db.DB)

	first := &entities.AudioFile{ShlokaID: f.noSection.ID, FileName: "a1.mp3", FileURL: "audio/a1.mp3"}
	second := &entities.AudioFile{ShlokaID: f.noSection.ID, FileName: "a2.mp3", FileURL: "audio/a2.mp3"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	all, err := f.service.ListAudioFiles(ctx)
	require.NoError(t, err)
	var count int64
	require.NoError(t, f.db.DB.Model(&entities.AudioFile{}).Count(&count).Error)
	assert.Len(t, all, int(count))

	detail, err := f.service.GetShlokaDetail(ctx, f.noSection.ID)
	require.NoError(t, err)
	require.Len(t, detail.AudioFiles, 2)
	assert.Equal(t, first.ID, detail.AudioFiles[0].ID)
	assert.Equal(t, second.ID, detail.AudioFiles[1].ID)

	_, err = f.service.GetShlokaDetail(ctx, 404)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
