// Package books provides database operations for books.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(ctx, 1)
package books

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/query"
	"github.com/mrlokans/audiobook/internal/entities"
)

// Filters is empty: books are only ever listed in full.
var Filters = query.FilterSet{}

var writableColumns = []string{"book_number", "book_name", "book_image", "updated_at"}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns books matching filter, ordered by id unless the filter says otherwise.
func (r *Repository) List(ctx context.Context, filter query.Filter) ([]entities.Book, error) {
	books := []entities.Book{}
	if err := filter.Apply(r.db.WithContext(ctx)).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// GetByID retrieves a book or returns database.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &book, nil
}

// Create inserts a book; GORM fills in ID and timestamps.
func (r *Repository) Create(ctx context.Context, book *entities.Book) error {
	book.ID = 0
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", database.Translate(err))
	}
	return nil
}

// Update overwrites every writable column of an existing book and reloads it.
func (r *Repository) Update(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := database.Exists(tx, &entities.Book{}, book.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("book %d: %w", book.ID, database.ErrNotFound)
		}
		if err := tx.Model(&entities.Book{ID: book.ID}).Select(writableColumns).Updates(book).Error; err != nil {
			return fmt.Errorf("update book: %w", database.Translate(err))
		}
		return tx.First(book, book.ID).Error
	})
}

// Delete removes a book that has no chapters.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := database.Exists(tx, &entities.Book{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("book %d: %w", id, database.ErrNotFound)
		}
		if err := database.Restrict(tx, &entities.Chapter{}, "book_id", id, "chapters"); err != nil {
			return err
		}
		return database.Translate(tx.Delete(&entities.Book{}, id).Error)
	})
}
