package http

import (
	"context"

	"github.com/mrlokans/audiobook/internal/catalog"
	"github.com/mrlokans/audiobook/internal/database/chapters"
	"github.com/mrlokans/audiobook/internal/database/query"
	"github.com/mrlokans/audiobook/internal/entities"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the interface it needs; the database
// repositories satisfy them (see internal/interfaces).

// CatalogReader serves the read-only detail views.
type CatalogReader interface {
	ListBooks(ctx context.Context) ([]entities.Book, error)
	GetBookDetail(ctx context.Context, bookID uint) (*catalog.BookDetail, error)
	ListChaptersOfBook(ctx context.Context, bookID uint) ([]entities.Chapter, error)
	GetChapterDetail(ctx context.Context, bookID, chapterID uint) (*catalog.ChapterDetail, error)
	GetSectionDetail(ctx context.Context, chapterID, sectionID uint) (*catalog.SectionDetail, error)
	GetShlokaDetail(ctx context.Context, shlokaID uint) (*catalog.ShlokaDetail, error)
	ListAudioFiles(ctx context.Context) ([]entities.AudioFile, error)
}

type BookStore interface {
	List(ctx context.Context, filter query.Filter) ([]entities.Book, error)
	GetByID(ctx context.Context, id uint) (*entities.Book, error)
	Create(ctx context.Context, book *entities.Book) error
	Update(ctx context.Context, book *entities.Book) error
	Delete(ctx context.Context, id uint) error
}

// ChapterStore takes a scope on every call; the zero scope spans all books.
type ChapterStore interface {
	List(ctx context.Context, scope chapters.Scope, filter query.Filter) ([]entities.Chapter, error)
	Get(ctx context.Context, scope chapters.Scope, id uint) (*entities.Chapter, error)
	Create(ctx context.Context, chapter *entities.Chapter) error
	Update(ctx context.Context, scope chapters.Scope, chapter *entities.Chapter) error
	Delete(ctx context.Context, scope chapters.Scope, id uint) error
}

type SectionStore interface {
	List(ctx context.Context, filter query.Filter) ([]entities.Section, error)
	GetByID(ctx context.Context, id uint) (*entities.Section, error)
	AttachShlokas(ctx context.Context, sections []entities.Section) error
	Create(ctx context.Context, section *entities.Section) error
	Update(ctx context.Context, section *entities.Section) error
	Delete(ctx context.Context, id uint) error
}

// ShlokaStore returns shlokas with their audio files attached.
type ShlokaStore interface {
	List(ctx context.Context, filter query.Filter) ([]entities.Shloka, error)
	GetByID(ctx context.Context, id uint) (*entities.Shloka, error)
	Create(ctx context.Context, shloka *entities.Shloka) error
	Update(ctx context.Context, shloka *entities.Shloka) error
	Delete(ctx context.Context, id uint) error
}

type AudioFileStore interface {
	List(ctx context.Context, filter query.Filter) ([]entities.AudioFile, error)
	GetByID(ctx context.Context, id uint) (*entities.AudioFile, error)
	Create(ctx context.Context, file *entities.AudioFile) error
	Update(ctx context.Context, file *entities.AudioFile) error
	Delete(ctx context.Context, id uint) error
}

type UserStore interface {
	ListRoles(ctx context.Context) ([]entities.Role, error)
	GetRoleByID(ctx context.Context, id uint) (*entities.Role, error)
	CreateRole(ctx context.Context, name string) (*entities.Role, error)
	DeleteRole(ctx context.Context, id uint) (int64, error)
	ListUsers(ctx context.Context, filter query.Filter) ([]entities.User, error)
	GetUserByID(ctx context.Context, id uint) (*entities.User, error)
	CreateUser(ctx context.Context, username, email string, roleID *uint) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
