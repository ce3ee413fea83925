// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations
//	├── errors.go        # NotFound / Integrity / Validation error kinds
//	├── query/           # Declarative filter sets for list endpoints
//	├── books/           # Book CRUD
//	├── chapters/        # Chapter CRUD, optionally scoped to a book
//	├── sections/        # Section CRUD
//	├── shlokas/         # Shloka CRUD with audio preloading
//	├── audiofiles/      # Audio file CRUD
//	└── users/           # Users and roles
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase("./audiobook.db")
//
//	booksRepo := books.NewRepository(db.DB)
//	chaptersRepo := chapters.NewRepository(db.DB)
//
//	book, err := booksRepo.GetByID(ctx, 1)
//	list, err := chaptersRepo.List(ctx, chapters.Scope{BookID: book.ID}, query.Filter{})
//
// # Delete Policy
//
// The content hierarchy is restrictive: a parent with children cannot be
// deleted and the repositories return ErrIntegrity. Roles are the exception,
// deleting a role deletes the users that hold it.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Return errors through database.Translate
//  5. Add compile-time interface check in internal/interfaces
package database
