package dto

import "github.com/mrlokans/audiobook/internal/catalog"

type BookDetail struct {
	Book     Book      `json:"book"`
	Chapters []Chapter `json:"chapters"`
}

type ChapterDetail struct {
	Chapter  Chapter          `json:"chapter"`
	Sections []SectionSummary `json:"sections"`
	Shlokas  []ShlokaSummary  `json:"shlokas"`
}

type SectionDetail struct {
	Section SectionSummary  `json:"section"`
	Shlokas []ShlokaSummary `json:"shlokas"`
}

type ShlokaDetail struct {
	Shloka     ShlokaSummary      `json:"shloka"`
	AudioFiles []AudioFileSummary `json:"audio_files"`
}

func NewBookDetail(d *catalog.BookDetail, url URLFunc) BookDetail {
	return BookDetail{
		Book:     FromBook(d.Book, url),
		Chapters: FromChapters(d.Chapters, url),
	}
}

func NewChapterDetail(d *catalog.ChapterDetail, url URLFunc) ChapterDetail {
	return ChapterDetail{
		Chapter:  FromChapter(d.Chapter, url),
		Sections: SummarizeSections(d.Sections, url),
		Shlokas:  SummarizeShlokas(d.Shlokas),
	}
}

func NewSectionDetail(d *catalog.SectionDetail, url URLFunc) SectionDetail {
	return SectionDetail{
		Section: SummarizeSection(d.Section, url),
		Shlokas: SummarizeShlokas(d.Shlokas),
	}
}

func NewShlokaDetail(d *catalog.ShlokaDetail, url URLFunc) ShlokaDetail {
	return ShlokaDetail{
		Shloka:     SummarizeShloka(d.Shloka),
		AudioFiles: SummarizeAudioFiles(d.AudioFiles, url),
	}
}
