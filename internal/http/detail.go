package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audiobook/internal/dto"
	"github.com/mrlokans/audiobook/internal/media"
)

// DetailController serves the hierarchical read views outside /api.
type DetailController struct {
	catalog CatalogReader
	media   *media.Resolver
}

func NewDetailController(catalog CatalogReader, resolver *media.Resolver) *DetailController {
	return &DetailController{catalog: catalog, media: resolver}
}

func (dc *DetailController) ListBooks(c *gin.Context) {
	books, err := dc.catalog.ListBooks(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	respondOK(c, dto.FromBooks(books, mediaURLs(c, dc.media)))
}

func (dc *DetailController) BookDetail(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}
	detail, err := dc.catalog.GetBookDetail(c.Request.Context(), bookID)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}
	respondOK(c, dto.NewBookDetail(detail, mediaURLs(c, dc.media)))
}

func (dc *DetailController) BookChapters(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}
	chapters, err := dc.catalog.ListChaptersOfBook(c.Request.Context(), bookID)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}
	respondOK(c, dto.FromChapters(chapters, mediaURLs(c, dc.media)))
}

func (dc *DetailController) ChapterDetail(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}
	detail, err := dc.catalog.GetChapterDetail(c.Request.Context(), bookID, chapterID)
	if err != nil {
		respondStoreError(c, err, "chapter")
		return
	}
	respondOK(c, dto.NewChapterDetail(detail, mediaURLs(c, dc.media)))
}

func (dc *DetailController) SectionDetail(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}
	sectionID, ok := parseIDParam(c, "sectionId")
	if !ok {
		return
	}
	detail, err := dc.catalog.GetSectionDetail(c.Request.Context(), chapterID, sectionID)
	if err != nil {
		respondStoreError(c, err, "section")
		return
	}
	respondOK(c, dto.NewSectionDetail(detail, mediaURLs(c, dc.media)))
}

func (dc *DetailController) ShlokaDetail(c *gin.Context) {
	shlokaID, ok := parseIDParam(c, "shlokaId")
	if !ok {
		return
	}
	detail, err := dc.catalog.GetShlokaDetail(c.Request.Context(), shlokaID)
	if err != nil {
		respondStoreError(c, err, "shloka")
		return
	}
	respondOK(c, dto.NewShlokaDetail(detail, mediaURLs(c, dc.media)))
}

func (dc *DetailController) AudioFiles(c *gin.Context) {
	files, err := dc.catalog.ListAudioFiles(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list audio files")
		return
	}
	respondOK(c, dto.FromAudioFiles(files, mediaURLs(c, dc.media)))
}
