package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audiobook/internal/database/shlokas"
	"github.com/mrlokans/audiobook/internal/dto"
	"github.com/mrlokans/audiobook/internal/media"
)

// ShlokasController serves shlokas with their primary audio file embedded.
type ShlokasController struct {
	store ShlokaStore
	media *media.Resolver
}

func NewShlokasController(store ShlokaStore, resolver *media.Resolver) *ShlokasController {
	return &ShlokasController{store: store, media: resolver}
}

func (sc *ShlokasController) List(c *gin.Context) {
	filter, ok := parseFilter(c, shlokas.Filters)
	if !ok {
		return
	}
	list, err := sc.store.List(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "list shlokas")
		return
	}
	respondOK(c, dto.FromShlokas(list, mediaURLs(c, sc.media)))
}

func (sc *ShlokasController) Create(c *gin.Context) {
	var payload dto.ShlokaPayload
	if !bindPayload(c, &payload) {
		return
	}
	shloka := payload.ToEntity()
	if err := sc.store.Create(c.Request.Context(), &shloka); err != nil {
		respondStoreError(c, err, "shloka")
		return
	}
	respondCreated(c, dto.FromShloka(shloka, mediaURLs(c, sc.media)))
}

func (sc *ShlokasController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	shloka, err := sc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "shloka")
		return
	}
	respondOK(c, dto.FromShloka(*shloka, mediaURLs(c, sc.media)))
}

func (sc *ShlokasController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload dto.ShlokaPayload
	if !bindPayload(c, &payload) {
		return
	}
	shloka := payload.ToEntity()
	shloka.ID = id
	if err := sc.store.Update(c.Request.Context(), &shloka); err != nil {
		respondStoreError(c, err, "shloka")
		return
	}
	respondOK(c, dto.FromShloka(shloka, mediaURLs(c, sc.media)))
}

func (sc *ShlokasController) Patch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	shloka, err := sc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "shloka")
		return
	}
	var patch dto.ShlokaPatch
	if !bindPayload(c, &patch) {
		return
	}
	patch.ApplyTo(shloka)
	if err := sc.store.Update(c.Request.Context(), shloka); err != nil {
		respondStoreError(c, err, "shloka")
		return
	}
	respondOK(c, dto.FromShloka(*shloka, mediaURLs(c, sc.media)))
}

func (sc *ShlokasController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := sc.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "shloka")
		return
	}
	c.Status(http.StatusNoContent)
}
