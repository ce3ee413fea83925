// Package loader bulk-loads a nested catalog tree from TOML.
//
// A catalog file lists books with their chapters; chapters hold sections
// and shlokas, and shlokas hold audio files. Shlokas may sit directly under
// a chapter to skip the section level:
//
//	[[book]]
//	number = 1
//	name = "Bhagavad Gita"
//
//	  [[book.chapter]]
//	  number = 1
//	  name = "Arjuna Vishada Yoga"
//
//	    [[book.chapter.section]]
//	    number = 1
//	    name = "Opening"
//
//	      [[book.chapter.section.shloka]]
//	      number = 1
//	      text = "dharma-kshetre kuru-kshetre"
//
//	        [[book.chapter.section.shloka.audio]]
//	        file_name = "1-1.mp3"
//	        url = "audio/1-1.mp3"
//
// Everything is written in one transaction through the catalog repositories,
// so a file either loads completely or not at all.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/database/audiofiles"
	"github.com/mrlokans/audiobook/internal/database/books"
	"github.com/mrlokans/audiobook/internal/database/chapters"
	"github.com/mrlokans/audiobook/internal/database/sections"
	"github.com/mrlokans/audiobook/internal/database/shlokas"
	"github.com/mrlokans/audiobook/internal/entities"
)

type Catalog struct {
	Books []Book `toml:"book" validate:"dive"`
}

type Book struct {
	Number   int       `toml:"number" validate:"min=0"`
	Name     string    `toml:"name" validate:"required,max=255"`
	Image    string    `toml:"image" validate:"max=1024"`
	Chapters []Chapter `toml:"chapter" validate:"dive"`
}

type Chapter struct {
	Number   int       `toml:"number" validate:"min=0"`
	Name     string    `toml:"name" validate:"required,max=255"`
	Image    string    `toml:"image" validate:"max=1024"`
	Sections []Section `toml:"section" validate:"dive"`
	Shlokas  []Shloka  `toml:"shloka" validate:"dive"` // Shlokas outside any section
}

type Section struct {
	Number  int      `toml:"number" validate:"min=0"`
	Name    string   `toml:"name" validate:"required,max=255"`
	Image   string   `toml:"image" validate:"max=1024"`
	Shlokas []Shloka `toml:"shloka" validate:"dive"`
}

type Shloka struct {
	Number int     `toml:"number" validate:"min=0"`
	Text   string  `toml:"text" validate:"required"`
	Audio  []Audio `toml:"audio" validate:"dive"`
}

type Audio struct {
	FileName string `toml:"file_name" validate:"required,max=255"`
	URL      string `toml:"url" validate:"required,max=2048"`
}

// Stats counts the rows a load created.
type Stats struct {
	Books      int
	Chapters   int
	Sections   int
	Shlokas    int
	AudioFiles int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d books, %d chapters, %d sections, %d shlokas, %d audio files",
		s.Books, s.Chapters, s.Sections, s.Shlokas, s.AudioFiles)
}

// errDryRun rolls back a dry-run transaction.
var errDryRun = errors.New("dry run")

var validate = validator.New()

// Parse decodes and validates a catalog. Unknown keys are rejected.
func Parse(r io.Reader) (*Catalog, error) {
	var cat Catalog
	md, err := toml.NewDecoder(r).Decode(&cat)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in catalog: %s", strings.Join(keys, ", "))
	}
	if err := validate.Struct(&cat); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &cat, nil
}

// ParseFile reads and parses the catalog at path.
func ParseFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Loader writes catalogs into the database.
type Loader struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// Load inserts every entity of cat. With dryRun the transaction is rolled
// back after all writes succeed, so the returned stats describe what would
// have been created.
func (l *Loader) Load(ctx context.Context, cat *Catalog, dryRun bool) (Stats, error) {
	var stats Stats
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w := newWriter(tx)
		for i := range cat.Books {
			if err := w.book(ctx, &cat.Books[i], &stats); err != nil {
				return fmt.Errorf("book %d (%s): %w", cat.Books[i].Number, cat.Books[i].Name, err)
			}
		}
		if dryRun {
			return errDryRun
		}
		return nil
	})
	if errors.Is(err, errDryRun) {
		return stats, nil
	}
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

type writer struct {
	books      *books.Repository
	chapters   *chapters.Repository
	sections   *sections.Repository
	shlokas    *shlokas.Repository
	audioFiles *audiofiles.Repository
}

func newWriter(tx *gorm.DB) *writer {
	return &writer{
		books:      books.NewRepository(tx),
		chapters:   chapters.NewRepository(tx),
		sections:   sections.NewRepository(tx),
		shlokas:    shlokas.NewRepository(tx),
		audioFiles: audiofiles.NewRepository(tx),
	}
}

func (w *writer) book(ctx context.Context, b *Book, stats *Stats) error {
	book := &entities.Book{BookNumber: b.Number, BookName: b.Name, BookImage: b.Image}
	if err := w.books.Create(ctx, book); err != nil {
		return err
	}
	stats.Books++

	for i := range b.Chapters {
		ch := &b.Chapters[i]
		if err := w.chapter(ctx, book.ID, ch, stats); err != nil {
			return fmt.Errorf("chapter %d (%s): %w", ch.Number, ch.Name, err)
		}
	}
	return nil
}

func (w *writer) chapter(ctx context.Context, bookID uint, c *Chapter, stats *Stats) error {
	chapter := &entities.Chapter{BookID: bookID, ChapterNumber: c.Number, ChapterName: c.Name, ChapterImage: c.Image}
	if err := w.chapters.Create(ctx, chapter); err != nil {
		return err
	}
	stats.Chapters++

	for i := range c.Sections {
		s := &c.Sections[i]
		section := &entities.Section{ChapterID: chapter.ID, SectionNumber: s.Number, SectionName: s.Name, SectionImage: s.Image}
		if err := w.sections.Create(ctx, section); err != nil {
			return fmt.Errorf("section %d (%s): %w", s.Number, s.Name, err)
		}
		stats.Sections++

		for j := range s.Shlokas {
			if err := w.shloka(ctx, chapter.ID, &section.ID, &s.Shlokas[j], stats); err != nil {
				return fmt.Errorf("section %d: shloka %d: %w", s.Number, s.Shlokas[j].Number, err)
			}
		}
	}

	for i := range c.Shlokas {
		if err := w.shloka(ctx, chapter.ID, nil, &c.Shlokas[i], stats); err != nil {
			return fmt.Errorf("shloka %d: %w", c.Shlokas[i].Number, err)
		}
	}
	return nil
}

func (w *writer) shloka(ctx context.Context, chapterID uint, sectionID *uint, s *Shloka, stats *Stats) error {
	shloka := &entities.Shloka{ChapterID: chapterID, SectionID: sectionID, ShlokaNumber: s.Number, ShlokText: s.Text}
	if err := w.shlokas.Create(ctx, shloka); err != nil {
		return err
	}
	stats.Shlokas++

	for _, a := range s.Audio {
		file := &entities.AudioFile{ShlokaID: shloka.ID, FileName: a.FileName, FileURL: a.URL}
		if err := w.audioFiles.Create(ctx, file); err != nil {
			return fmt.Errorf("audio %s: %w", a.FileName, err)
		}
		stats.AudioFiles++
	}
	return nil
}
