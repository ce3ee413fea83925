// Package chapters provides database operations for chapters, optionally
// scoped to their parent book.
//
// # Usage
//
//	repo := chapters.NewRepository(db)
//	list, err := repo.List(ctx, chapters.Scope{BookID: 3}, query.Filter{})
//	chapter, err := repo.Get(ctx, chapters.Scope{BookID: 3}, 12)
package chapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/query"
	"github.com/mrlokans/audiobook/internal/entities"
)

var Filters = query.FilterSet{
	Exact: map[string]string{"book": "book_id"},
}

var writableColumns = []string{"book_id", "chapter_number", "chapter_name", "chapter_image", "updated_at"}

// Scope restricts operations to one book. The zero value is unscoped.
type Scope struct {
	BookID uint
}

func (s Scope) IsScoped() bool {
	return s.BookID != 0
}

func (s Scope) apply(db *gorm.DB) *gorm.DB {
	if s.IsScoped() {
		return db.Where("book_id = ?", s.BookID)
	}
	return db
}

// Repository handles all chapter database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new chapters repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns the chapters in scope that match filter.
func (r *Repository) List(ctx context.Context, scope Scope, filter query.Filter) ([]entities.Chapter, error) {
	chapters := []entities.Chapter{}
	db := scope.apply(r.db.WithContext(ctx))
	if err := filter.Apply(db).Find(&chapters).Error; err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	return chapters, nil
}

// ListByBook returns a book's chapters ordered by id.
func (r *Repository) ListByBook(ctx context.Context, bookID uint) ([]entities.Chapter, error) {
	return r.List(ctx, Scope{BookID: bookID}, query.Filter{})
}

// Get retrieves a chapter in scope. A chapter of another book is ErrNotFound.
func (r *Repository) Get(ctx context.Context, scope Scope, id uint) (*entities.Chapter, error) {
	var chapter entities.Chapter
	if err := scope.apply(r.db.WithContext(ctx)).First(&chapter, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &chapter, nil
}

// GetByID retrieves a chapter regardless of its book.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Chapter, error) {
	return r.Get(ctx, Scope{}, id)
}

// Create inserts a chapter after checking its book exists.
func (r *Repository) Create(ctx context.Context, chapter *entities.Chapter) error {
	chapter.ID = 0
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateBook(tx, chapter.BookID); err != nil {
			return err
		}
		if err := tx.Omit("Book").Create(chapter).Error; err != nil {
			return fmt.Errorf("create chapter: %w", database.Translate(err))
		}
		return nil
	})
}

// Update overwrites every writable column of a chapter in scope and reloads it.
func (r *Repository) Update(ctx context.Context, scope Scope, chapter *entities.Chapter) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.inScope(tx, scope, chapter.ID); err != nil {
			return err
		}
		if err := validateBook(tx, chapter.BookID); err != nil {
			return err
		}
		if err := tx.Model(&entities.Chapter{ID: chapter.ID}).Select(writableColumns).Updates(chapter).Error; err != nil {
			return fmt.Errorf("update chapter: %w", database.Translate(err))
		}
		return tx.First(chapter, chapter.ID).Error
	})
}

// Delete removes a chapter in scope that has no sections or shlokas.
func (r *Repository) Delete(ctx context.Context, scope Scope, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.inScope(tx, scope, id); err != nil {
			return err
		}
		if err := database.Restrict(tx, &entities.Section{}, "chapter_id", id, "sections"); err != nil {
			return err
		}
		if err := database.Restrict(tx, &entities.Shloka{}, "chapter_id", id, "shlokas"); err != nil {
			return err
		}
		return database.Translate(tx.Delete(&entities.Chapter{}, id).Error)
	})
}

func (r *Repository) inScope(tx *gorm.DB, scope Scope, id uint) error {
	var count int64
	if err := scope.apply(tx.Model(&entities.Chapter{})).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("chapter %d: %w", id, database.ErrNotFound)
	}
	return nil
}

func validateBook(tx *gorm.DB, bookID uint) error {
	if bookID == 0 {
		return database.NewValidationError("book", "This field is required.")
	}
	ok, err := database.Exists(tx, &entities.Book{}, bookID)
	if err != nil {
		return err
	}
	if !ok {
		return database.NewValidationError("book", database.MissingReference(bookID))
	}
	return nil
}
