package http

import (
	"github.com/mrlokans/audiobook/internal/config"
	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/media"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Catalog  CatalogReader

	// CRUD stores
	Books      BookStore
	Chapters   ChapterStore
	Sections   SectionStore
	Shlokas    ShlokaStore
	AudioFiles AudioFileStore
	Users      UserStore

	// Media URL resolution
	Media *media.Resolver

	// Per-client request limiting (disabled unless Enabled)
	RateLimit config.RateLimit

	// Reject writes under /api with 403
	ReadOnly bool

	// Application info
	Version string
}
