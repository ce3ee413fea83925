package media

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	req := httptest.NewRequest("GET", "http://catalog.local:8188/book/1/", nil)

	tests := []struct {
		name string
		base string
		path string
		want *string
	}{
		{name: "empty path", base: "/media/", path: "", want: nil},
		{name: "blank path", base: "/media/", path: "   ", want: nil},
		{name: "relative base", base: "/media/", path: "books/gita.jpg", want: ptr("http://catalog.local:8188/media/books/gita.jpg")},
		{name: "leading slash path", base: "/media/", path: "/books/gita.jpg", want: ptr("http://catalog.local:8188/media/books/gita.jpg")},
		{name: "base without trailing slash", base: "/media", path: "a.mp3", want: ptr("http://catalog.local:8188/media/a.mp3")},
		{name: "absolute base", base: "https://cdn.example.com/audio/", path: "a.mp3", want: ptr("https://cdn.example.com/audio/a.mp3")},
		{name: "absolute path passes through", base: "/media/", path: "https://s3.example.com/x.mp3", want: ptr("https://s3.example.com/x.mp3")},
		{name: "uppercase scheme", base: "/media/", path: "HTTP://old.example.com/x.mp3", want: ptr("HTTP://old.example.com/x.mp3")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewResolver(tt.base).Resolve(req, tt.path)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestResolver_WithoutRequest(t *testing.T) {
	got := NewResolver("/media/").Resolve(nil, "a.mp3")
	require.NotNil(t, got)
	assert.Equal(t, "/media/a.mp3", *got)
}

func TestOrigin_ForwardedHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "http://10.0.0.5/", nil)
	req.Header.Set("X-Forwarded-Proto", "https, http")
	req.Header.Set("X-Forwarded-Host", "gita.example.org")

	assert.Equal(t, "https://gita.example.org", Origin(req))
	assert.Equal(t, "https://gita.example.org/media/a.mp3", *NewResolver("/media/").Resolve(req, "a.mp3"))
}

func ptr(s string) *string {
	return &s
}
