package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/audiobook/internal/catalog"
	"github.com/mrlokans/audiobook/internal/config"
	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/audiofiles"
	"github.com/mrlokans/audiobook/internal/database/books"
	"github.com/mrlokans/audiobook/internal/database/chapters"
	"github.com/mrlokans/audiobook/internal/database/sections"
	"github.com/mrlokans/audiobook/internal/database/shlokas"
	"github.com/mrlokans/audiobook/internal/database/users"
	"github.com/mrlokans/audiobook/internal/entities"
	"github.com/mrlokans/audiobook/internal/media"
)

const testHost = "api.example.com"

type testServer struct {
	t      *testing.T
	db     *database.Database
	router *gin.Engine
}

func newTestServer(t *testing.T, rateLimit config.RateLimit) *testServer {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "http.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	router := NewRouter(RouterConfig{
		Database:   db,
		Catalog:    catalog.NewService(db.DB),
		Books:      books.NewRepository(db.DB),
		Chapters:   chapters.NewRepository(db.DB),
		Sections:   sections.NewRepository(db.DB),
		Shlokas:    shlokas.NewRepository(db.DB),
		AudioFiles: audiofiles.NewRepository(db.DB),
		Users:      users.NewRepository(db.DB),
		Media:      media.NewResolver("/media/"),
		RateLimit:  rateLimit,
		Version:    "test",
	})
	return &testServer{t: t, db: db, router: router}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, "http://"+testHost+path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into a generic value for assertions.
func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func validationDetails(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	resp := decode[struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}](t, w)
	require.Equal(t, codeValidation, resp.Code)
	return resp.Details
}

// seed inserts a small hierarchy directly through GORM.
type seeded struct {
	gita, sutra entities.Book
	gitaOne     entities.Chapter
	sutraOne    entities.Chapter
	opening     entities.Section
	first       entities.Shloka
	loose       entities.Shloka
	recitation  entities.AudioFile
}

func (s *testServer) seed() seeded {
	s.t.Helper()
	db := s.db.DB
	var f seeded

	f.gita = entities.Book{BookNumber: 1, BookName: "Bhagavad Gita", BookImage: "covers/gita.jpg"}
	f.sutra = entities.Book{BookNumber: 2, BookName: "Yoga Sutras"}
	require.NoError(s.t, db.Create(&f.gita).Error)
	require.NoError(s.t, db.Create(&f.sutra).Error)

	f.gitaOne = entities.Chapter{BookID: f.gita.ID, ChapterNumber: 1, ChapterName: "Arjuna Vishada"}
	f.sutraOne = entities.Chapter{BookID: f.sutra.ID, ChapterNumber: 1, ChapterName: "Samadhi Pada"}
	require.NoError(s.t, db.Create(&f.gitaOne).Error)
	require.NoError(s.t, db.Create(&f.sutraOne).Error)

	f.opening = entities.Section{ChapterID: f.gitaOne.ID, SectionNumber: 1, SectionName: "Opening"}
	require.NoError(s.t, db.Create(&f.opening).Error)

	f.first = entities.Shloka{ChapterID: f.gitaOne.ID, SectionID: &f.opening.ID, ShlokaNumber: 1, ShlokText: "dharma kshetre kuru kshetre"}
	f.loose = entities.Shloka{ChapterID: f.gitaOne.ID, ShlokaNumber: 2, ShlokText: "sanjaya uvacha"}
	require.NoError(s.t, db.Create(&f.first).Error)
	require.NoError(s.t, db.Create(&f.loose).Error)

	f.recitation = entities.AudioFile{ShlokaID: f.first.ID, FileName: "1-1.mp3", FileURL: "audio/1-1.mp3"}
	require.NoError(s.t, db.Create(&f.recitation).Error)
	return f
}
