package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/chapters"
	"github.com/mrlokans/audiobook/internal/dto"
	"github.com/mrlokans/audiobook/internal/entities"
	"github.com/mrlokans/audiobook/internal/media"
)

// ChaptersController serves chapters either nested under a book, where the
// book comes from the route, or across all books.
type ChaptersController struct {
	store     ChapterStore
	media     *media.Resolver
	bookParam string // empty when unscoped
	idParam   string
}

// NewBookChaptersController serves /api/books/:id/chapters/:chapterId.
func NewBookChaptersController(store ChapterStore, resolver *media.Resolver) *ChaptersController {
	return &ChaptersController{store: store, media: resolver, bookParam: "id", idParam: "chapterId"}
}

// NewChaptersController serves /api/chapters/:id.
func NewChaptersController(store ChapterStore, resolver *media.Resolver) *ChaptersController {
	return &ChaptersController{store: store, media: resolver, idParam: "id"}
}

func (cc *ChaptersController) scope(c *gin.Context) (chapters.Scope, bool) {
	if cc.bookParam == "" {
		return chapters.Scope{}, true
	}
	bookID, ok := parseIDParam(c, cc.bookParam)
	return chapters.Scope{BookID: bookID}, ok
}

func (cc *ChaptersController) List(c *gin.Context) {
	scope, ok := cc.scope(c)
	if !ok {
		return
	}
	filter, ok := parseFilter(c, chapters.Filters)
	if !ok {
		return
	}
	list, err := cc.store.List(c.Request.Context(), scope, filter)
	if err != nil {
		respondInternalError(c, err, "list chapters")
		return
	}
	respondOK(c, dto.FromChapters(list, mediaURLs(c, cc.media)))
}

func (cc *ChaptersController) Create(c *gin.Context) {
	scope, ok := cc.scope(c)
	if !ok {
		return
	}
	var payload dto.ChapterPayload
	if !bindPayload(c, &payload) {
		return
	}
	chapter := payload.ToEntity()
	if !cc.applyScope(c, scope, &chapter) {
		return
	}
	if err := cc.store.Create(c.Request.Context(), &chapter); err != nil {
		respondStoreError(c, err, "chapter")
		return
	}
	respondCreated(c, dto.FromChapter(chapter, mediaURLs(c, cc.media)))
}

// Get refuses unscoped retrieval; a chapter is only addressable through its book.
func (cc *ChaptersController) Get(c *gin.Context) {
	scope, ok := cc.scope(c)
	if !ok {
		return
	}
	if !scope.IsScoped() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Book ID not found in request.", Code: codeNotFound})
		return
	}
	id, ok := parseIDParam(c, cc.idParam)
	if !ok {
		return
	}
	chapter, err := cc.store.Get(c.Request.Context(), scope, id)
	if err != nil {
		respondStoreError(c, err, "chapter")
		return
	}
	respondOK(c, dto.FromChapter(*chapter, mediaURLs(c, cc.media)))
}

func (cc *ChaptersController) Update(c *gin.Context) {
	scope, ok := cc.scope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, cc.idParam)
	if !ok {
		return
	}
	var payload dto.ChapterPayload
	if !bindPayload(c, &payload) {
		return
	}
	chapter := payload.ToEntity()
	chapter.ID = id
	if !cc.applyScope(c, scope, &chapter) {
		return
	}
	if err := cc.store.Update(c.Request.Context(), scope, &chapter); err != nil {
		respondStoreError(c, err, "chapter")
		return
	}
	respondOK(c, dto.FromChapter(chapter, mediaURLs(c, cc.media)))
}

func (cc *ChaptersController) Patch(c *gin.Context) {
	scope, ok := cc.scope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, cc.idParam)
	if !ok {
		return
	}
	chapter, err := cc.store.Get(c.Request.Context(), scope, id)
	if err != nil {
		respondStoreError(c, err, "chapter")
		return
	}
	var patch dto.ChapterPatch
	if !bindPayload(c, &patch) {
		return
	}
	patch.ApplyTo(chapter)
	if !cc.applyScope(c, scope, chapter) {
		return
	}
	if err := cc.store.Update(c.Request.Context(), scope, chapter); err != nil {
		respondStoreError(c, err, "chapter")
		return
	}
	respondOK(c, dto.FromChapter(*chapter, mediaURLs(c, cc.media)))
}

func (cc *ChaptersController) Delete(c *gin.Context) {
	scope, ok := cc.scope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, cc.idParam)
	if !ok {
		return
	}
	if err := cc.store.Delete(c.Request.Context(), scope, id); err != nil {
		respondStoreError(c, err, "chapter")
		return
	}
	c.Status(http.StatusNoContent)
}

// applyScope fills the book from the route and rejects a conflicting one.
func (cc *ChaptersController) applyScope(c *gin.Context, scope chapters.Scope, chapter *entities.Chapter) bool {
	if !scope.IsScoped() {
		return true
	}
	if chapter.BookID != 0 && chapter.BookID != scope.BookID {
		respondValidation(c, database.NewValidationError("book", "Must match the book in the URL."))
		return false
	}
	chapter.BookID = scope.BookID
	return true
}
