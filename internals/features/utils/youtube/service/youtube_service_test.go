package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"materialku_backend/internals/configs"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch dengan param lain", "https://www.youtube.com/watch?t=42&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link dengan query", "https://youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ", true},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"bukan youtube", "https://vimeo.com/12345678", "", false},
		{"id kependekan", "https://www.youtube.com/watch?v=pendek", "", false},
		{"string kosong", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tc.url)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, ingin %v", ok, tc.wantOK)
			}
			if id != tc.wantID {
				t.Errorf("id = %q, ingin %q", id, tc.wantID)
			}
		})
	}
}

func withFakeAPI(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	oldBase, oldKey := APIBaseURL, configs.YouTubeAPIKey
	APIBaseURL = srv.URL
	configs.YouTubeAPIKey = "test-key"
	t.Cleanup(func() {
		APIBaseURL = oldBase
		configs.YouTubeAPIKey = oldKey
	})
}

func TestFetchVideoMetadata(t *testing.T) {
	withFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "dQw4w9WgXcQ" {
			t.Errorf("query id = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"snippet": {
					"title": "Judul Video",
					"description": "Deskripsi",
					"channelTitle": "Channel",
					"publishedAt": "2024-03-01T10:00:00Z",
					"thumbnails": {
						"high":   {"url": "https://img/high.jpg"},
						"medium": {"url": "https://img/medium.jpg"}
					}
				},
				"contentDetails": {"duration": "PT5M33S"},
				"statistics": {"viewCount": "100", "likeCount": "10"}
			}]
		}`))
	})

	meta, err := FetchVideoMetadata(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("FetchVideoMetadata error: %v", err)
	}

	if meta.Title != "Judul Video" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Duration != "PT5M33S" {
		t.Errorf("Duration = %q", meta.Duration)
	}
	// maxres tidak ada → fallback ke high
	if meta.Thumbnail != "https://img/high.jpg" {
		t.Errorf("Thumbnail = %q, ingin fallback high", meta.Thumbnail)
	}
	if meta.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", meta.VideoID)
	}
}

func TestFetchVideoMetadataNotFound(t *testing.T) {
	withFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": []}`))
	})

	_, err := FetchVideoMetadata(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("err = %v, ingin ErrVideoNotFound", err)
	}
}

func TestFetchVideoMetadataMissingKey(t *testing.T) {
	oldKey := configs.YouTubeAPIKey
	configs.YouTubeAPIKey = ""
	t.Cleanup(func() { configs.YouTubeAPIKey = oldKey })

	_, err := FetchVideoMetadata(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, ingin ErrMissingAPIKey", err)
	}
}
