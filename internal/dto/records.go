// Package dto holds the JSON wire forms of catalog entities and the
// payloads accepted by the CRUD API.
//
// Media fields are resolved through a URLFunc at conversion time, so the
// same entity serializes identically on every endpoint.
package dto

import "github.com/mrlokans/audiobook/internal/entities"

// URLFunc maps a stored media path to its public URL, nil for no media.
type URLFunc func(path string) *string

// RawURL leaves stored paths untouched. Used where no request is available.
func RawURL(path string) *string {
	if path == "" {
		return nil
	}
	return &path
}

type Book struct {
	ID         uint    `json:"id"`
	BookNumber int     `json:"book_number"`
	BookName   string  `json:"book_name"`
	BookImage  *string `json:"book_image"`
}

type Chapter struct {
	ID            uint    `json:"id"`
	ChapterNumber int     `json:"chapter_number"`
	ChapterName   string  `json:"chapter_name"`
	ChapterImage  *string `json:"chapter_image"`
	Book          uint    `json:"book"`
}

// Section is the CRUD form, carrying its shlokas read-only.
type Section struct {
	ID            uint     `json:"id"`
	SectionNumber int      `json:"section_number"`
	SectionName   string   `json:"section_name"`
	SectionImage  *string  `json:"section_image"`
	Shlokas       []Shloka `json:"shlokas"`
	Chapter       uint     `json:"chapter"`
}

// SectionSummary is the section form used inside detail documents.
type SectionSummary struct {
	ID            uint    `json:"id"`
	SectionNumber int     `json:"section_number"`
	SectionName   string  `json:"section_name"`
	SectionImage  *string `json:"section_image"`
	Chapter       uint    `json:"chapter"`
}

// Shloka is the CRUD form with the primary audio file embedded.
type Shloka struct {
	ID           uint       `json:"id"`
	ShlokaNumber int        `json:"shloka_number"`
	ShlokText    string     `json:"shlok_text"`
	Audio        *AudioFile `json:"audio"`
	Chapter      uint       `json:"chapter"`
	Section      *uint      `json:"section"`
}

// ShlokaSummary is the flat shloka form used inside detail documents.
type ShlokaSummary struct {
	ID           uint   `json:"id"`
	ShlokaNumber int    `json:"shloka_number"`
	ShlokText    string `json:"shlok_text"`
	Chapter      uint   `json:"chapter"`
	Section      *uint  `json:"section"`
}

type AudioFile struct {
	ID       uint    `json:"id"`
	FileName string  `json:"file_name"`
	FileURL  *string `json:"file_url"`
	Shloka   uint    `json:"shloka"`
}

// AudioFileSummary omits the owning shloka, which is implied by the document.
type AudioFileSummary struct {
	ID       uint    `json:"id"`
	FileName string  `json:"file_name"`
	FileURL  *string `json:"file_url"`
}

type Role struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     *Role  `json:"role"`
}

func FromBook(b entities.Book, url URLFunc) Book {
	return Book{
		ID:         b.ID,
		BookNumber: b.BookNumber,
		BookName:   b.BookName,
		BookImage:  url(b.BookImage),
	}
}

func FromBooks(books []entities.Book, url URLFunc) []Book {
	out := make([]Book, len(books))
	for i, b := range books {
		out[i] = FromBook(b, url)
	}
	return out
}

func FromChapter(c entities.Chapter, url URLFunc) Chapter {
	return Chapter{
		ID:            c.ID,
		ChapterNumber: c.ChapterNumber,
		ChapterName:   c.ChapterName,
		ChapterImage:  url(c.ChapterImage),
		Book:          c.BookID,
	}
}

func FromChapters(chapters []entities.Chapter, url URLFunc) []Chapter {
	out := make([]Chapter, len(chapters))
	for i, c := range chapters {
		out[i] = FromChapter(c, url)
	}
	return out
}

// FromSection expects Shlokas to be attached; a nil slice renders as [].
func FromSection(s entities.Section, url URLFunc) Section {
	return Section{
		ID:            s.ID,
		SectionNumber: s.SectionNumber,
		SectionName:   s.SectionName,
		SectionImage:  url(s.SectionImage),
		Shlokas:       FromShlokas(s.Shlokas, url),
		Chapter:       s.ChapterID,
	}
}

func FromSections(sections []entities.Section, url URLFunc) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = FromSection(s, url)
	}
	return out
}

func SummarizeSection(s entities.Section, url URLFunc) SectionSummary {
	return SectionSummary{
		ID:            s.ID,
		SectionNumber: s.SectionNumber,
		SectionName:   s.SectionName,
		SectionImage:  url(s.SectionImage),
		Chapter:       s.ChapterID,
	}
}

func SummarizeSections(sections []entities.Section, url URLFunc) []SectionSummary {
	out := make([]SectionSummary, len(sections))
	for i, s := range sections {
		out[i] = SummarizeSection(s, url)
	}
	return out
}

func FromShloka(s entities.Shloka, url URLFunc) Shloka {
	out := Shloka{
		ID:           s.ID,
		ShlokaNumber: s.ShlokaNumber,
		ShlokText:    s.ShlokText,
		Chapter:      s.ChapterID,
		Section:      s.SectionID,
	}
	if audio := s.Audio(); audio != nil {
		file := FromAudioFile(*audio, url)
		out.Audio = &file
	}
	return out
}

func FromShlokas(shlokas []entities.Shloka, url URLFunc) []Shloka {
	out := make([]Shloka, len(shlokas))
	for i, s := range shlokas {
		out[i] = FromShloka(s, url)
	}
	return out
}

func SummarizeShloka(s entities.Shloka) ShlokaSummary {
	return ShlokaSummary{
		ID:           s.ID,
		ShlokaNumber: s.ShlokaNumber,
		ShlokText:    s.ShlokText,
		Chapter:      s.ChapterID,
		Section:      s.SectionID,
	}
}

func SummarizeShlokas(shlokas []entities.Shloka) []ShlokaSummary {
	out := make([]ShlokaSummary, len(shlokas))
	for i, s := range shlokas {
		out[i] = SummarizeShloka(s)
	}
	return out
}

func FromAudioFile(a entities.AudioFile, url URLFunc) AudioFile {
	return AudioFile{
		ID:       a.ID,
		FileName: a.FileName,
		FileURL:  url(a.FileURL),
		Shloka:   a.ShlokaID,
	}
}

func FromAudioFiles(files []entities.AudioFile, url URLFunc) []AudioFile {
	out := make([]AudioFile, len(files))
	for i, f := range files {
		out[i] = FromAudioFile(f, url)
	}
	return out
}

func SummarizeAudioFiles(files []entities.AudioFile, url URLFunc) []AudioFileSummary {
	out := make([]AudioFileSummary, len(files))
	for i, f := range files {
		out[i] = AudioFileSummary{ID: f.ID, FileName: f.FileName, FileURL: url(f.FileURL)}
	}
	return out
}

func FromRole(r entities.Role) Role {
	return Role{ID: r.ID, Name: r.Name}
}

func FromRoles(roles []entities.Role) []Role {
	out := make([]Role, len(roles))
	for i, r := range roles {
		out[i] = FromRole(r)
	}
	return out
}

func FromUser(u entities.User) User {
	out := User{ID: u.ID, Username: u.Username, Email: u.Email}
	if u.Role != nil {
		role := FromRole(*u.Role)
		out.Role = &role
	}
	return out
}

func FromUsers(users []entities.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = FromUser(u)
	}
	return out
}
