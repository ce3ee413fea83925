package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audiobook/internal/database/books"
	"github.com/mrlokans/audiobook/internal/dto"
	"github.com/mrlokans/audiobook/internal/media"
)

type BooksController struct {
	store BookStore
	media *media.Resolver
}

func NewBooksController(store BookStore, resolver *media.Resolver) *BooksController {
	return &BooksController{store: store, media: resolver}
}

func (bc *BooksController) List(c *gin.Context) {
	filter, ok := parseFilter(c, books.Filters)
	if !ok {
		return
	}
	list, err := bc.store.List(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	respondOK(c, dto.FromBooks(list, mediaURLs(c, bc.media)))
}

func (bc *BooksController) Create(c *gin.Context) {
	var payload dto.BookPayload
	if !bindPayload(c, &payload) {
		return
	}
	book := payload.ToEntity()
	if err := bc.store.Create(c.Request.Context(), &book); err != nil {
		respondStoreError(c, err, "book")
		return
	}
	respondCreated(c, dto.FromBook(book, mediaURLs(c, bc.media)))
}

func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	book, err := bc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}
	respondOK(c, dto.FromBook(*book, mediaURLs(c, bc.media)))
}

func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload dto.BookPayload
	if !bindPayload(c, &payload) {
		return
	}
	book := payload.ToEntity()
	book.ID = id
	if err := bc.store.Update(c.Request.Context(), &book); err != nil {
		respondStoreError(c, err, "book")
		return
	}
	respondOK(c, dto.FromBook(book, mediaURLs(c, bc.media)))
}

func (bc *BooksController) Patch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	book, err := bc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}
	var patch dto.BookPatch
	if !bindPayload(c, &patch) {
		return
	}
	patch.ApplyTo(book)
	if err := bc.store.Update(c.Request.Context(), book); err != nil {
		respondStoreError(c, err, "book")
		return
	}
	respondOK(c, dto.FromBook(*book, mediaURLs(c, bc.media)))
}

func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := bc.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "book")
		return
	}
	c.Status(http.StatusNoContent)
}
