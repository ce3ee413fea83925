// Package catalog composes the read-only detail views of the content
// hierarchy: an entity together with its immediate children.
package catalog

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/database/audiofiles"
	"github.com/mrlokans/audiobook/internal/database/books"
	"github.com/mrlokans/audiobook/internal/database/chapters"
	"github.com/mrlokans/audiobook/internal/database/query"
	"github.com/mrlokans/audiobook/internal/database/sections"
	"github.com/mrlokans/audiobook/internal/database/shlokas"
	"github.com/mrlokans/audiobook/internal/entities"
)

type BookDetail struct {
	Book     entities.Book
	Chapters []entities.Chapter
}

// ChapterDetail lists every shloka of the chapter, including those that
// skip the section level.
type ChapterDetail struct {
	Chapter  entities.Chapter
	Sections []entities.Section
	Shlokas  []entities.Shloka
}

type SectionDetail struct {
	Section entities.Section
	Shlokas []entities.Shloka
}

type ShlokaDetail struct {
	Shloka     entities.Shloka
	AudioFiles []entities.AudioFile
}

// Service reads the catalog. Lookups that miss, or that name a child of a
// different parent, return an error wrapping database.ErrNotFound.
type Service struct {
	books      *books.Repository
	chapters   *chapters.Repository
	sections   *sections.Repository
	shlokas    *shlokas.Repository
	audioFiles *audiofiles.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		books:      books.NewRepository(db),
		chapters:   chapters.NewRepository(db),
		sections:   sections.NewRepository(db),
		shlokas:    shlokas.NewRepository(db),
		audioFiles: audiofiles.NewRepository(db),
	}
}

func (s *Service) ListBooks(ctx context.Context) ([]entities.Book, error) {
	return s.books.List(ctx, query.Filter{})
}

func (s *Service) GetBookDetail(ctx context.Context, bookID uint) (*BookDetail, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("book %d: %w", bookID, err)
	}
	list, err := s.chapters.ListByBook(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	return &BookDetail{Book: *book, Chapters: list}, nil
}

func (s *Service) ListChaptersOfBook(ctx context.Context, bookID uint) ([]entities.Chapter, error) {
	log.Printf("Listing chapters of book %d", bookID)
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return nil, fmt.Errorf("book %d: %w", bookID, err)
	}
	return s.chapters.ListByBook(ctx, bookID)
}

func (s *Service) GetChapterDetail(ctx context.Context, bookID, chapterID uint) (*ChapterDetail, error) {
	chapter, err := s.chapters.Get(ctx, chapters.Scope{BookID: bookID}, chapterID)
	if err != nil {
		return nil, fmt.Errorf("chapter %d of book %d: %w", chapterID, bookID, err)
	}
	sectionList, err := s.sections.ListByChapter(ctx, chapter.ID)
	if err != nil {
		return nil, err
	}
	shlokaList, err := s.shlokas.ListByChapter(ctx, chapter.ID)
	if err != nil {
		return nil, err
	}
	return &ChapterDetail{Chapter: *chapter, Sections: sectionList, Shlokas: shlokaList}, nil
}

func (s *Service) GetSectionDetail(ctx context.Context, chapterID, sectionID uint) (*SectionDetail, error) {
	section, err := s.sections.GetInChapter(ctx, chapterID, sectionID)
	if err != nil {
		return nil, fmt.Errorf("section %d of chapter %d: %w", sectionID, chapterID, err)
	}
	shlokaList, err := s.shlokas.ListBySection(ctx, section.ID)
	if err != nil {
		return nil, err
	}
	return &SectionDetail{Section: *section, Shlokas: shlokaList}, nil
}

func (s *Service) GetShlokaDetail(ctx context.Context, shlokaID uint) (*ShlokaDetail, error) {
	shloka, err := s.shlokas.GetByID(ctx, shlokaID)
	if err != nil {
		return nil, fmt.Errorf("shloka %d: %w", shlokaID, err)
	}
	return &ShlokaDetail{Shloka: *shloka, AudioFiles: shloka.AudioFiles}, nil
}

// ListAudioFiles returns every audio file ordered by id.
func (s *Service) ListAudioFiles(ctx context.Context) ([]entities.AudioFile, error) {
	return s.audioFiles.List(ctx, query.Filter{})
}
