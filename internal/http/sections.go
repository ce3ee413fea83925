package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audiobook/internal/database/sections"
	"github.com/mrlokans/audiobook/internal/dto"
	"github.com/mrlokans/audiobook/internal/entities"
	"github.com/mrlokans/audiobook/internal/media"
)

// SectionsController serves sections with their shlokas embedded read-only.
type SectionsController struct {
	store SectionStore
	media *media.Resolver
}

func NewSectionsController(store SectionStore, resolver *media.Resolver) *SectionsController {
	return &SectionsController{store: store, media: resolver}
}

func (sc *SectionsController) List(c *gin.Context) {
	filter, ok := parseFilter(c, sections.Filters)
	if !ok {
		return
	}
	list, err := sc.store.List(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "list sections")
		return
	}
	if err := sc.store.AttachShlokas(c.Request.Context(), list); err != nil {
		respondInternalError(c, err, "list sections")
		return
	}
	respondOK(c, dto.FromSections(list, mediaURLs(c, sc.media)))
}

func (sc *SectionsController) Create(c *gin.Context) {
	var payload dto.SectionPayload
	if !bindPayload(c, &payload) {
		return
	}
	section := payload.ToEntity()
	if err := sc.store.Create(c.Request.Context(), &section); err != nil {
		respondStoreError(c, err, "section")
		return
	}
	respondCreated(c, dto.FromSection(section, mediaURLs(c, sc.media)))
}

func (sc *SectionsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	section, err := sc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "section")
		return
	}
	sc.respondSection(c, http.StatusOK, section)
}

func (sc *SectionsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload dto.SectionPayload
	if !bindPayload(c, &payload) {
		return
	}
	section := payload.ToEntity()
	section.ID = id
	if err := sc.store.Update(c.Request.Context(), &section); err != nil {
		respondStoreError(c, err, "section")
		return
	}
	sc.respondSection(c, http.StatusOK, &section)
}

func (sc *SectionsController) Patch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	section, err := sc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "section")
		return
	}
	var patch dto.SectionPatch
	if !bindPayload(c, &patch) {
		return
	}
	patch.ApplyTo(section)
	if err := sc.store.Update(c.Request.Context(), section); err != nil {
		respondStoreError(c, err, "section")
		return
	}
	sc.respondSection(c, http.StatusOK, section)
}

func (sc *SectionsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := sc.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "section")
		return
	}
	c.Status(http.StatusNoContent)
}

func (sc *SectionsController) respondSection(c *gin.Context, status int, section *entities.Section) {
	rows := []entities.Section{*section}
	if err := sc.store.AttachShlokas(c.Request.Context(), rows); err != nil {
		respondInternalError(c, err, "section shlokas")
		return
	}
	c.JSON(status, dto.FromSection(rows[0], mediaURLs(c, sc.media)))
}
