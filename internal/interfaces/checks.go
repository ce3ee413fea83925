package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/audiobook/internal/catalog"
	"github.com/mrlokans/audiobook/internal/database/audiofiles"
	"github.com/mrlokans/audiobook/internal/database/books"
	"github.com/mrlokans/audiobook/internal/database/chapters"
	"github.com/mrlokans/audiobook/internal/database/sections"
	"github.com/mrlokans/audiobook/internal/database/shlokas"
	"github.com/mrlokans/audiobook/internal/database/users"
	"github.com/mrlokans/audiobook/internal/http"
)

// =============================================================================
// Read Path
// =============================================================================

var _ http.CatalogReader = (*catalog.Service)(nil)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.BookStore = (*books.Repository)(nil)
var _ http.ChapterStore = (*chapters.Repository)(nil)
var _ http.SectionStore = (*sections.Repository)(nil)
var _ http.ShlokaStore = (*shlokas.Repository)(nil)
var _ http.AudioFileStore = (*audiofiles.Repository)(nil)
var _ http.UserStore = (*users.Repository)(nil)
