package entities

import "time"

// Book is the root of the catalog hierarchy.
type Book struct {
	ID         uint   `gorm:"primaryKey"`
	BookNumber int    `gorm:"index;not null"`
	BookName   string `gorm:"size:255;not null"`
	BookImage  string `gorm:"size:1024"` // Relative media path, resolved at serialization time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Chapter struct {
	ID            uint   `gorm:"primaryKey"`
	BookID        uint   `gorm:"index;not null"`
	ChapterNumber int    `gorm:"index;not null"`
	ChapterName   string `gorm:"size:255;not null"`
	ChapterImage  string `gorm:"size:1024"`
	Book          *Book  `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Section struct {
	ID            uint     `gorm:"primaryKey"`
	ChapterID     uint     `gorm:"index;not null"`
	SectionNumber int      `gorm:"index;not null"`
	SectionName   string   `gorm:"size:255;not null"`
	SectionImage  string   `gorm:"size:1024"`
	Chapter       *Chapter `gorm:"foreignKey:ChapterID;constraint:OnDelete:RESTRICT"`
	Shlokas       []Shloka `gorm:"-"` // Filled by the sections repository, not an association
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Shloka is a single verse. It always belongs to a chapter and may skip the
// section level, in which case SectionID is nil.
type Shloka struct {
	ID           uint        `gorm:"primaryKey"`
	ShlokaNumber int         `gorm:"index;not null"`
	ShlokText    string      `gorm:"type:text;not null"`
	ChapterID    uint        `gorm:"index;not null"`
	SectionID    *uint       `gorm:"index"`
	Chapter      *Chapter    `gorm:"foreignKey:ChapterID;constraint:OnDelete:RESTRICT"`
	Section      *Section    `gorm:"foreignKey:SectionID;constraint:OnDelete:RESTRICT"`
	AudioFiles   []AudioFile `gorm:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Audio returns the shloka's primary audio file, the one with the lowest ID,
// or nil when none has been loaded.
func (s Shloka) Audio() *AudioFile {
	if len(s.AudioFiles) == 0 {
		return nil
	}
	first := s.AudioFiles[0]
	for _, a := range s.AudioFiles[1:] {
		if a.ID < first.ID {
			first = a
		}
	}
	return &first
}

type AudioFile struct {
	ID        uint    `gorm:"primaryKey"`
	ShlokaID  uint    `gorm:"index;not null"`
	FileName  string  `gorm:"size:255;not null"`
	FileURL   string  `gorm:"size:2048;not null"` // Relative path or absolute URL
	Shloka    *Shloka `gorm:"foreignKey:ShlokaID;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Book) TableName() string {
	return "books"
}

func (Chapter) TableName() string {
	return "chapters"
}

func (Section) TableName() string {
	return "sections"
}

func (Shloka) TableName() string {
	return "shlokas"
}

func (AudioFile) TableName() string {
	return "audio_files"
}
