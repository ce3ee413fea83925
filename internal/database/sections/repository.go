// Package sections provides database operations for chapter sections.
//
// # Usage
//
//	repo := sections.NewRepository(db)
//	section, err := repo.GetInChapter(ctx, chapterID, sectionID)
//	err = repo.AttachShlokas(ctx, []entities.Section{*section})
package sections

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/query"
	"github.com/mrlokans/audiobook/internal/database/shlokas"
	"github.com/mrlokans/audiobook/internal/entities"
)

var Filters = query.FilterSet{
	Exact: map[string]string{"chapter": "chapter_id"},
}

var writableColumns = []string{"chapter_id", "section_number", "section_name", "section_image", "updated_at"}

// Repository handles all section database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sections repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns sections matching filter. Shlokas are not loaded.
func (r *Repository) List(ctx context.Context, filter query.Filter) ([]entities.Section, error) {
	sections := []entities.Section{}
	if err := filter.Apply(r.db.WithContext(ctx)).Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// ListByChapter returns a chapter's sections ordered by id.
func (r *Repository) ListByChapter(ctx context.Context, chapterID uint) ([]entities.Section, error) {
	return r.List(ctx, query.Filter{}.Where("chapter_id", int64(chapterID)))
}

// GetByID retrieves a section or returns database.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Section, error) {
	var section entities.Section
	if err := r.db.WithContext(ctx).First(&section, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &section, nil
}

// GetInChapter retrieves a section only if it belongs to chapterID.
func (r *Repository) GetInChapter(ctx context.Context, chapterID, id uint) (*entities.Section, error) {
	var section entities.Section
	err := r.db.WithContext(ctx).Where("chapter_id = ?", chapterID).First(&section, id).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &section, nil
}

// AttachShlokas fills Shlokas (with their audio) for every section in place.
func (r *Repository) AttachShlokas(ctx context.Context, sections []entities.Section) error {
	if len(sections) == 0 {
		return nil
	}
	ids := make([]uint, len(sections))
	for i := range sections {
		ids[i] = sections[i].ID
	}

	var rows []entities.Shloka
	err := r.db.WithContext(ctx).Where("section_id IN ?", ids).Order("id ASC").Find(&rows).Error
	if err != nil {
		return fmt.Errorf("load section shlokas: %w", err)
	}
	if err := shlokas.NewRepository(r.db).AttachAudio(ctx, rows); err != nil {
		return err
	}

	bySection := make(map[uint][]entities.Shloka, len(sections))
	for _, s := range rows {
		bySection[*s.SectionID] = append(bySection[*s.SectionID], s)
	}
	for i := range sections {
		sections[i].Shlokas = bySection[sections[i].ID]
		if sections[i].Shlokas == nil {
			sections[i].Shlokas = []entities.Shloka{}
		}
	}
	return nil
}

// Create inserts a section after checking its chapter exists.
func (r *Repository) Create(ctx context.Context, section *entities.Section) error {
	section.ID = 0
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateChapter(tx, section.ChapterID); err != nil {
			return err
		}
		if err := tx.Omit("Chapter").Create(section).Error; err != nil {
			return fmt.Errorf("create section: %w", database.Translate(err))
		}
		return nil
	})
}

// Update overwrites every writable column of an existing section and reloads it.
func (r *Repository) Update(ctx context.Context, section *entities.Section) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.Section
		if err := tx.First(&existing, section.ID).Error; err != nil {
			return fmt.Errorf("section %d: %w", section.ID, database.Translate(err))
		}
		if err := validateChapter(tx, section.ChapterID); err != nil {
			return err
		}
		// Shlokas carry their own chapter id, so a populated section stays put.
		if existing.ChapterID != section.ChapterID {
			count, err := database.CountWhere(tx, &entities.Shloka{}, "section_id", section.ID)
			if err != nil {
				return err
			}
			if count > 0 {
				return database.NewValidationError("chapter", "A section with shlokas cannot move to another chapter.")
			}
		}
		if err := tx.Model(&entities.Section{ID: section.ID}).Select(writableColumns).Updates(section).Error; err != nil {
			return fmt.Errorf("update section: %w", database.Translate(err))
		}
		return tx.First(section, section.ID).Error
	})
}

// Delete removes a section that has no shlokas.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := database.Exists(tx, &entities.Section{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("section %d: %w", id, database.ErrNotFound)
		}
		if err := database.Restrict(tx, &entities.Shloka{}, "section_id", id, "shlokas"); err != nil {
			return err
		}
		return database.Translate(tx.Delete(&entities.Section{}, id).Error)
	})
}

func validateChapter(tx *gorm.DB, chapterID uint) error {
	if chapterID == 0 {
		return database.NewValidationError("chapter", "This field is required.")
	}
	ok, err := database.Exists(tx, &entities.Chapter{}, chapterID)
	if err != nil {
		return err
	}
	if !ok {
		return database.NewValidationError("chapter", database.MissingReference(chapterID))
	}
	return nil
}
