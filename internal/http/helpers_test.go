package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/dto"
	"github.com/mrlokans/audiobook/internal/media"
)

func init() {
	gin.SetMode(gin.TestMode)
	configureBinding()
}

func TestParseIDParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseIDParam_LargeID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "bookId", Value: "99999999999"}}

	id, ok := parseIDParam(c, "bookId")

	assert.True(t, ok)
	assert.Equal(t, uint(99999999999), id)
}

func TestParseIDParam_Invalid(t *testing.T) {
	for _, value := range []string{"abc", "-1", "0", ""} {
		t.Run(fmt.Sprintf("value %q", value), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "chapterId", Value: value}}

			id, ok := parseIDParam(c, "chapterId")

			assert.False(t, ok)
			assert.Equal(t, uint(0), id)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid chapterId")
		})
	}
}

func TestRespondStoreError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", database.NewValidationError("book", "Invalid pk \"9\" - object does not exist."), http.StatusBadRequest, codeValidation},
		{"not found", fmt.Errorf("book 9: %w", database.ErrNotFound), http.StatusNotFound, codeNotFound},
		{"integrity", fmt.Errorf("book 9: %w", database.ErrIntegrity), http.StatusConflict, codeIntegrity},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondStoreError(c, tt.err, "book")

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotContains(t, resp.Error, "disk on fire")
		})
	}
}

func TestBindPayload(t *testing.T) {
	bind := func(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
		t.Helper()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var payload dto.BookPayload
		return w, bindPayload(c, &payload)
	}
	details := func(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
		t.Helper()
		var resp struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, codeValidation, resp.Code)
		return resp.Details
	}

	t.Run("accepts a valid body", func(t *testing.T) {
		_, ok := bind(t, `{"book_number": 1, "book_name": "Gita"}`)
		assert.True(t, ok)
	})

	t.Run("accepts id as read-only", func(t *testing.T) {
		_, ok := bind(t, `{"id": 7, "book_number": 1, "book_name": "Gita", "book_image": null}`)
		assert.True(t, ok)
	})

	t.Run("reports missing fields by json name", func(t *testing.T) {
		w, ok := bind(t, `{}`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		got := details(t, w)
		assert.Equal(t, "This field is required.", got["book_number"])
		assert.Equal(t, "This field is required.", got["book_name"])
	})

	t.Run("rejects blank names", func(t *testing.T) {
		w, ok := bind(t, `{"book_number": 1, "book_name": ""}`)
		assert.False(t, ok)
		assert.Equal(t, "This field may not be blank.", details(t, w)["book_name"])
	})

	t.Run("rejects negative numbers", func(t *testing.T) {
		w, ok := bind(t, `{"book_number": -1, "book_name": "Gita"}`)
		assert.False(t, ok)
		assert.Equal(t, "Ensure this value is greater than or equal to 0.", details(t, w)["book_number"])
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		w, ok := bind(t, `{"book_number": 1, "book_name": "Gita", "author": "Vyasa"}`)
		assert.False(t, ok)
		assert.Equal(t, "Unknown field.", details(t, w)["author"])
	})

	t.Run("rejects wrong types", func(t *testing.T) {
		w, ok := bind(t, `{"book_number": "one", "book_name": "Gita"}`)
		assert.False(t, ok)
		assert.Equal(t, "A valid integer is required.", details(t, w)["book_number"])
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		w, ok := bind(t, ``)
		assert.False(t, ok)
		assert.Equal(t, "No data provided.", details(t, w)[nonFieldErrors])
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		w, ok := bind(t, `{"book_number": 1,`)
		assert.False(t, ok)
		assert.Contains(t, details(t, w), nonFieldErrors)
	})
}

func TestMediaURLs(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "http://api.example.com/api/books", nil)

	t.Run("without resolver returns stored path", func(t *testing.T) {
		url := mediaURLs(c, nil)
		assert.Equal(t, "covers/gita.jpg", *url("covers/gita.jpg"))
		assert.Nil(t, url(""))
	})

	t.Run("relative base uses request origin", func(t *testing.T) {
		url := mediaURLs(c, media.NewResolver("/media/"))
		assert.Equal(t, "http://api.example.com/media/covers/gita.jpg", *url("covers/gita.jpg"))
	})
}
