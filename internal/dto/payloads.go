package dto

import (
	"encoding/json"

	"github.com/mrlokans/audiobook/internal/entities"
)

// Payload types are decoded with unknown fields rejected. Read-only fields
// (id, embedded children) are accepted so a retrieved record can be sent
// back unchanged, and are then ignored.
//
// *Payload types back create and full update; *Patch types back partial
// update and only touch the fields present in the request.

type BookPayload struct {
	ID         json.RawMessage `json:"id,omitempty"`
	BookNumber *int            `json:"book_number" binding:"required,min=0"`
	BookName   *string         `json:"book_name" binding:"required,min=1,max=255"`
	BookImage  *string         `json:"book_image" binding:"omitempty,max=1024"`
}

func (p BookPayload) ToEntity() entities.Book {
	return entities.Book{
		BookNumber: *p.BookNumber,
		BookName:   *p.BookName,
		BookImage:  deref(p.BookImage),
	}
}

type BookPatch struct {
	ID         json.RawMessage  `json:"id,omitempty"`
	BookNumber *int             `json:"book_number" binding:"omitempty,min=0"`
	BookName   *string          `json:"book_name" binding:"omitempty,min=1,max=255"`
	BookImage  Nullable[string] `json:"book_image"`
}

func (p BookPatch) ApplyTo(b *entities.Book) {
	if p.BookNumber != nil {
		b.BookNumber = *p.BookNumber
	}
	if p.BookName != nil {
		b.BookName = *p.BookName
	}
	if p.BookImage.Set {
		b.BookImage = deref(p.BookImage.Value)
	}
}

// ChapterPayload leaves book optional so the scoped route can supply it.
type ChapterPayload struct {
	ID            json.RawMessage `json:"id,omitempty"`
	ChapterNumber *int            `json:"chapter_number" binding:"required,min=0"`
	ChapterName   *string         `json:"chapter_name" binding:"required,min=1,max=255"`
	ChapterImage  *string         `json:"chapter_image" binding:"omitempty,max=1024"`
	Book          *uint           `json:"book"`
}

func (p ChapterPayload) ToEntity() entities.Chapter {
	return entities.Chapter{
		ChapterNumber: *p.ChapterNumber,
		ChapterName:   *p.ChapterName,
		ChapterImage:  deref(p.ChapterImage),
		BookID:        deref(p.Book),
	}
}

type ChapterPatch struct {
	ID            json.RawMessage  `json:"id,omitempty"`
	ChapterNumber *int             `json:"chapter_number" binding:"omitempty,min=0"`
	ChapterName   *string          `json:"chapter_name" binding:"omitempty,min=1,max=255"`
	ChapterImage  Nullable[string] `json:"chapter_image"`
	Book          *uint            `json:"book"`
}

func (p ChapterPatch) ApplyTo(c *entities.Chapter) {
	if p.ChapterNumber != nil {
		c.ChapterNumber = *p.ChapterNumber
	}
	if p.ChapterName != nil {
		c.ChapterName = *p.ChapterName
	}
	if p.ChapterImage.Set {
		c.ChapterImage = deref(p.ChapterImage.Value)
	}
	if p.Book != nil {
		c.BookID = *p.Book
	}
}

type SectionPayload struct {
	ID            json.RawMessage `json:"id,omitempty"`
	SectionNumber *int            `json:"section_number" binding:"required,min=0"`
	SectionName   *string         `json:"section_name" binding:"required,min=1,max=255"`
	SectionImage  *string         `json:"section_image" binding:"omitempty,max=1024"`
	Shlokas       json.RawMessage `json:"shlokas,omitempty"`
	Chapter       *uint           `json:"chapter"`
}

func (p SectionPayload) ToEntity() entities.Section {
	return entities.Section{
		SectionNumber: *p.SectionNumber,
		SectionName:   *p.SectionName,
		SectionImage:  deref(p.SectionImage),
		ChapterID:     deref(p.Chapter),
	}
}

type SectionPatch struct {
	ID            json.RawMessage  `json:"id,omitempty"`
	SectionNumber *int             `json:"section_number" binding:"omitempty,min=0"`
	SectionName   *string          `json:"section_name" binding:"omitempty,min=1,max=255"`
	SectionImage  Nullable[string] `json:"section_image"`
	Shlokas       json.RawMessage  `json:"shlokas,omitempty"`
	Chapter       *uint            `json:"chapter"`
}

func (p SectionPatch) ApplyTo(s *entities.Section) {
	if p.SectionNumber != nil {
		s.SectionNumber = *p.SectionNumber
	}
	if p.SectionName != nil {
		s.SectionName = *p.SectionName
	}
	if p.SectionImage.Set {
		s.SectionImage = deref(p.SectionImage.Value)
	}
	if p.Chapter != nil {
		s.ChapterID = *p.Chapter
	}
}

// ShlokaPayload ignores the embedded audio; audio files are written through
// their own resource.
type ShlokaPayload struct {
	ID           json.RawMessage `json:"id,omitempty"`
	ShlokaNumber *int            `json:"shloka_number" binding:"required,min=0"`
	ShlokText    *string         `json:"shlok_text" binding:"required,min=1"`
	Audio        json.RawMessage `json:"audio,omitempty"`
	Chapter      *uint           `json:"chapter"`
	Section      *uint           `json:"section"`
}

func (p ShlokaPayload) ToEntity() entities.Shloka {
	return entities.Shloka{
		ShlokaNumber: *p.ShlokaNumber,
		ShlokText:    *p.ShlokText,
		ChapterID:    deref(p.Chapter),
		SectionID:    p.Section,
	}
}

type ShlokaPatch struct {
	ID           json.RawMessage `json:"id,omitempty"`
	ShlokaNumber *int            `json:"shloka_number" binding:"omitempty,min=0"`
	ShlokText    *string         `json:"shlok_text" binding:"omitempty,min=1"`
	Audio        json.RawMessage `json:"audio,omitempty"`
	Chapter      *uint           `json:"chapter"`
	Section      Nullable[uint]  `json:"section"`
}

func (p ShlokaPatch) ApplyTo(s *entities.Shloka) {
	if p.ShlokaNumber != nil {
		s.ShlokaNumber = *p.ShlokaNumber
	}
	if p.ShlokText != nil {
		s.ShlokText = *p.ShlokText
	}
	if p.Chapter != nil {
		s.ChapterID = *p.Chapter
	}
	s.SectionID = p.Section.Or(s.SectionID)
}

type AudioFilePayload struct {
	ID       json.RawMessage `json:"id,omitempty"`
	FileName *string         `json:"file_name" binding:"required,min=1,max=255"`
	FileURL  *string         `json:"file_url" binding:"required,min=1,max=2048"`
	Shloka   *uint           `json:"shloka"`
}

func (p AudioFilePayload) ToEntity() entities.AudioFile {
	return entities.AudioFile{
		FileName: *p.FileName,
		FileURL:  *p.FileURL,
		ShlokaID: deref(p.Shloka),
	}
}

type AudioFilePatch struct {
	ID       json.RawMessage `json:"id,omitempty"`
	FileName *string         `json:"file_name" binding:"omitempty,min=1,max=255"`
	FileURL  *string         `json:"file_url" binding:"omitempty,min=1,max=2048"`
	Shloka   *uint           `json:"shloka"`
}

func (p AudioFilePatch) ApplyTo(a *entities.AudioFile) {
	if p.FileName != nil {
		a.FileName = *p.FileName
	}
	if p.FileURL != nil {
		a.FileURL = *p.FileURL
	}
	if p.Shloka != nil {
		a.ShlokaID = *p.Shloka
	}
}

type RolePayload struct {
	ID   json.RawMessage `json:"id,omitempty"`
	Name *string         `json:"name" binding:"required,min=1,max=100"`
}

type UserPayload struct {
	ID       json.RawMessage `json:"id,omitempty"`
	Username *string         `json:"username" binding:"required,min=1,max=100"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Role     *uint           `json:"role"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
