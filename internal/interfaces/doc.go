// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Read Path
//
//   - CatalogReader: detail views of the book hierarchy (internal/http/stores.go),
//     implemented by catalog.Service
//
// ## Data Access Interfaces
//
//   - BookStore, ChapterStore, SectionStore, ShlokaStore, AudioFileStore:
//     CRUD over the content hierarchy (internal/http/stores.go)
//   - UserStore: roles and users (internal/http/stores.go)
//
// Each store is implemented by the Repository of the matching
// internal/database sub-package.
//
// # Adding a New Catalog Resource
//
//  1. Add the entity to internal/entities and to database.Models.
//
//  2. Create sub-package internal/database/<resource>/ with a FilterSet and
//     a Repository:
//
//     var Filters = query.FilterSet{Exact: map[string]string{"shloka": "shloka_id"}}
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Declare the store interface in internal/http/stores.go, add a
//     controller, and register it in router.go.
//
//  4. Add a compile-time check to checks.go:
//
//     var _ http.NewStore = (*resource.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
