// Package shlokas provides database operations for verses and attaches
// their audio files.
//
// A shloka always references a chapter and may reference a section of that
// same chapter. Create and Update enforce both.
package shlokas

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/query"
	"github.com/mrlokans/audiobook/internal/entities"
)

var Filters = query.FilterSet{
	Exact: map[string]string{
		"chapter":       "chapter_id",
		"section":       "section_id",
		"shloka_number": "shloka_number",
	},
	Search: []string{"shlok_text"},
	Ordering: map[string]string{
		"shloka_number": "shloka_number",
		"chapter":       "chapter_id",
		"section":       "section_id",
	},
}

var writableColumns = []string{"shloka_number", "shlok_text", "chapter_id", "section_id", "updated_at"}

// Repository handles all shloka database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new shlokas repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns shlokas matching filter with their audio files attached.
func (r *Repository) List(ctx context.Context, filter query.Filter) ([]entities.Shloka, error) {
	shlokas := []entities.Shloka{}
	if err := filter.Apply(r.db.WithContext(ctx)).Find(&shlokas).Error; err != nil {
		return nil, fmt.Errorf("list shlokas: %w", err)
	}
	if err := r.AttachAudio(ctx, shlokas); err != nil {
		return nil, err
	}
	return shlokas, nil
}

// ListByChapter returns every shloka referencing the chapter, with or without a section.
func (r *Repository) ListByChapter(ctx context.Context, chapterID uint) ([]entities.Shloka, error) {
	return r.List(ctx, query.Filter{}.Where("chapter_id", int64(chapterID)))
}

// ListBySection returns the shlokas of one section.
func (r *Repository) ListBySection(ctx context.Context, sectionID uint) ([]entities.Shloka, error) {
	return r.List(ctx, query.Filter{}.Where("section_id", int64(sectionID)))
}

// GetByID retrieves a shloka with its audio files.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Shloka, error) {
	var shloka entities.Shloka
	if err := r.db.WithContext(ctx).First(&shloka, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	rows := []entities.Shloka{shloka}
	if err := r.AttachAudio(ctx, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// AttachAudio fills AudioFiles for every shloka in place, ordered by id.
func (r *Repository) AttachAudio(ctx context.Context, shlokas []entities.Shloka) error {
	if len(shlokas) == 0 {
		return nil
	}
	ids := make([]uint, len(shlokas))
	for i := range shlokas {
		ids[i] = shlokas[i].ID
	}

	var files []entities.AudioFile
	err := r.db.WithContext(ctx).Where("shloka_id IN ?", ids).Order("id ASC").Find(&files).Error
	if err != nil {
		return fmt.Errorf("load audio files: %w", err)
	}

	byShloka := make(map[uint][]entities.AudioFile, len(shlokas))
	for _, f := range files {
		byShloka[f.ShlokaID] = append(byShloka[f.ShlokaID], f)
	}
	for i := range shlokas {
		shlokas[i].AudioFiles = byShloka[shlokas[i].ID]
		if shlokas[i].AudioFiles == nil {
			shlokas[i].AudioFiles = []entities.AudioFile{}
		}
	}
	return nil
}

// Create inserts a shloka after validating its chapter and section.
func (r *Repository) Create(ctx context.Context, shloka *entities.Shloka) error {
	shloka.ID = 0
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateParents(tx, shloka); err != nil {
			return err
		}
		if err := tx.Omit("Chapter", "Section").Create(shloka).Error; err != nil {
			return fmt.Errorf("create shloka: %w", database.Translate(err))
		}
		shloka.AudioFiles = []entities.AudioFile{}
		return nil
	})
}

// Update overwrites every writable column of an existing shloka and reloads it.
func (r *Repository) Update(ctx context.Context, shloka *entities.Shloka) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := database.Exists(tx, &entities.Shloka{}, shloka.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("shloka %d: %w", shloka.ID, database.ErrNotFound)
		}
		if err := validateParents(tx, shloka); err != nil {
			return err
		}
		if err := tx.Model(&entities.Shloka{ID: shloka.ID}).Select(writableColumns).Updates(shloka).Error; err != nil {
			return fmt.Errorf("update shloka: %w", database.Translate(err))
		}
		return nil
	})
	if err != nil {
		return err
	}
	reloaded, err := r.GetByID(ctx, shloka.ID)
	if err != nil {
		return err
	}
	*shloka = *reloaded
	return nil
}

// Delete removes a shloka that has no audio files.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := database.Exists(tx, &entities.Shloka{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("shloka %d: %w", id, database.ErrNotFound)
		}
		if err := database.Restrict(tx, &entities.AudioFile{}, "shloka_id", id, "audio files"); err != nil {
			return err
		}
		return database.Translate(tx.Delete(&entities.Shloka{}, id).Error)
	})
}

func validateParents(tx *gorm.DB, shloka *entities.Shloka) error {
	var verr *database.ValidationError

	if shloka.ChapterID == 0 {
		verr = verr.Add("chapter", "This field is required.")
	} else if ok, err := database.Exists(tx, &entities.Chapter{}, shloka.ChapterID); err != nil {
		return err
	} else if !ok {
		verr = verr.Add("chapter", database.MissingReference(shloka.ChapterID))
	}

	if shloka.SectionID != nil {
		var section entities.Section
		err := tx.Select("id", "chapter_id").First(&section, *shloka.SectionID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			verr = verr.Add("section", database.MissingReference(*shloka.SectionID))
		case err != nil:
			return err
		case shloka.ChapterID != 0 && section.ChapterID != shloka.ChapterID:
			verr = verr.Add("section", fmt.Sprintf("Section %d does not belong to chapter %d.", section.ID, shloka.ChapterID))
		}
	}

	if verr != nil {
		return verr
	}
	return nil
}
