package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audiobook/internal/database/audiofiles"
	"github.com/mrlokans/audiobook/internal/dto"
	"github.com/mrlokans/audiobook/internal/media"
)

// AudioFilesController serves audio files as a flat resource.
type AudioFilesController struct {
	store AudioFileStore
	media *media.Resolver
}

func NewAudioFilesController(store AudioFileStore, resolver *media.Resolver) *AudioFilesController {
	return &AudioFilesController{store: store, media: resolver}
}

func (ac *AudioFilesController) List(c *gin.Context) {
	filter, ok := parseFilter(c, audiofiles.Filters)
	if !ok {
		return
	}
	list, err := ac.store.List(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "list audio files")
		return
	}
	respondOK(c, dto.FromAudioFiles(list, mediaURLs(c, ac.media)))
}

func (ac *AudioFilesController) Create(c *gin.Context) {
	var payload dto.AudioFilePayload
	if !bindPayload(c, &payload) {
		return
	}
	file := payload.ToEntity()
	if err := ac.store.Create(c.Request.Context(), &file); err != nil {
		respondStoreError(c, err, "audio file")
		return
	}
	respondCreated(c, dto.FromAudioFile(file, mediaURLs(c, ac.media)))
}

func (ac *AudioFilesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	file, err := ac.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "audio file")
		return
	}
	respondOK(c, dto.FromAudioFile(*file, mediaURLs(c, ac.media)))
}

func (ac *AudioFilesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload dto.AudioFilePayload
	if !bindPayload(c, &payload) {
		return
	}
	file := payload.ToEntity()
	file.ID = id
	if err := ac.store.Update(c.Request.Context(), &file); err != nil {
		respondStoreError(c, err, "audio file")
		return
	}
	respondOK(c, dto.FromAudioFile(file, mediaURLs(c, ac.media)))
}

func (ac *AudioFilesController) Patch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	file, err := ac.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "audio file")
		return
	}
	var patch dto.AudioFilePatch
	if !bindPayload(c, &patch) {
		return
	}
	patch.ApplyTo(file)
	if err := ac.store.Update(c.Request.Context(), file); err != nil {
		respondStoreError(c, err, "audio file")
		return
	}
	respondOK(c, dto.FromAudioFile(*file, mediaURLs(c, ac.media)))
}

func (ac *AudioFilesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ac.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "audio file")
		return
	}
	c.Status(http.StatusNoContent)
}
