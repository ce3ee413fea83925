// Package audiofiles provides database operations for shloka narration files.
//
// A shloka may have any number of audio files; the CRUD layer presents the
// lowest id as the shloka's primary audio.
package audiofiles

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/query"
	"github.com/mrlokans/audiobook/internal/entities"
)

var Filters = query.FilterSet{
	Exact:  map[string]string{"shloka": "shloka_id"},
	Search: []string{"file_name"},
	Ordering: map[string]string{
		"shloka":    "shloka_id",
		"file_name": "file_name",
	},
}

var writableColumns = []string{"shloka_id", "file_name", "file_url", "updated_at"}

// Repository handles all audio file database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new audio files repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns audio files matching filter.
func (r *Repository) List(ctx context.Context, filter query.Filter) ([]entities.AudioFile, error) {
	files := []entities.AudioFile{}
	if err := filter.Apply(r.db.WithContext(ctx)).Find(&files).Error; err != nil {
		return nil, fmt.Errorf("list audio files: %w", err)
	}
	return files, nil
}

// GetByID retrieves an audio file or returns database.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.AudioFile, error) {
	var file entities.AudioFile
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &file, nil
}

// Create inserts an audio file after checking its shloka exists.
func (r *Repository) Create(ctx context.Context, file *entities.AudioFile) error {
	file.ID = 0
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateShloka(tx, file.ShlokaID); err != nil {
			return err
		}
		if err := tx.Omit("Shloka").Create(file).Error; err != nil {
			return fmt.Errorf("create audio file: %w", database.Translate(err))
		}
		return nil
	})
}

// Update overwrites every writable column of an existing audio file and reloads it.
func (r *Repository) Update(ctx context.Context, file *entities.AudioFile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := database.Exists(tx, &entities.AudioFile{}, file.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("audio file %d: %w", file.ID, database.ErrNotFound)
		}
		if err := validateShloka(tx, file.ShlokaID); err != nil {
			return err
		}
		if err := tx.Model(&entities.AudioFile{ID: file.ID}).Select(writableColumns).Updates(file).Error; err != nil {
			return fmt.Errorf("update audio file: %w", database.Translate(err))
		}
		return tx.First(file, file.ID).Error
	})
}

// Delete removes an audio file. Nothing references audio files.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.AudioFile{}, id)
	if result.Error != nil {
		return database.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("audio file %d: %w", id, database.ErrNotFound)
	}
	return nil
}

func validateShloka(tx *gorm.DB, shlokaID uint) error {
	if shlokaID == 0 {
		return database.NewValidationError("shloka", "This field is required.")
	}
	ok, err := database.Exists(tx, &entities.Shloka{}, shlokaID)
	if err != nil {
		return err
	}
	if !ok {
		return database.NewValidationError("shloka", database.MissingReference(shlokaID))
	}
	return nil
}
