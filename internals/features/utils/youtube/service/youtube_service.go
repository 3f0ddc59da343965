package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"materialku_backend/internals/configs"
	"materialku_backend/internals/features/utils/youtube/dto"
)

// APIBaseURL bisa dioverride di test (httptest server).
var APIBaseURL = "https://www.googleapis.com/youtube/v3/videos"

var httpClient = &http.Client{Timeout: 10 * time.Second}

var (
	ErrInvalidURL    = errors.New("bukan URL YouTube yang valid")
	ErrMissingAPIKey = errors.New("YOUTUBE_API_KEY belum diset")
	ErrVideoNotFound = errors.New("video tidak ditemukan")
)

// Pola id video 11 karakter: youtube.com/watch?v=, /embed/, /v/, youtu.be/
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// ExtractVideoID mengambil id video dari URL; false kalau bukan URL YouTube.
func ExtractVideoID(raw string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

/* ===== shape response Data API v3 (subset yang dipakai) ===== */

type apiThumbnail struct {
	URL string `json:"url"`
}

type apiSnippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Thumbnails   struct {
		Medium *apiThumbnail `json:"medium"`
		High   *apiThumbnail `json:"high"`
		Maxres *apiThumbnail `json:"maxres"`
	} `json:"thumbnails"`
}

type apiItem struct {
	Snippet        apiSnippet `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
		LikeCount string `json:"likeCount"`
	} `json:"statistics"`
}

type apiResponse struct {
	Items []apiItem `json:"items"`
}

// FetchVideoMetadata memanggil YouTube Data API v3 dan menormalkan hasilnya.
// Tidak ada cache dan tidak ada retry: satu request, satu jawaban.
func FetchVideoMetadata(ctx context.Context, videoID string) (*dto.YoutubeVideoResponse, error) {
	apiKey := configs.YouTubeAPIKey
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint := fmt.Sprintf("%s?id=%s&key=%s&part=snippet,contentDetails,statistics",
		APIBaseURL, url.QueryEscape(videoID), url.QueryEscape(apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gagal menghubungi YouTube API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("YouTube API mengembalikan status %d", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("gagal decode response YouTube API: %w", err)
	}

	if len(parsed.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := parsed.Items[0]
	return &dto.YoutubeVideoResponse{
		VideoID:      videoID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Thumbnail:    bestThumbnail(item.Snippet),
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  item.Snippet.PublishedAt,
		Duration:     item.ContentDetails.Duration,
		ViewCount:    item.Statistics.ViewCount,
		LikeCount:    item.Statistics.LikeCount,
	}, nil
}

// bestThumbnail: maxres → high → medium (fallback berurutan).
func bestThumbnail(s apiSnippet) string {
	if s.Thumbnails.Maxres != nil && s.Thumbnails.Maxres.URL != "" {
		return s.Thumbnails.Maxres.URL
	}
	if s.Thumbnails.High != nil && s.Thumbnails.High.URL != "" {
		return s.Thumbnails.High.URL
	}
	if s.Thumbnails.Medium != nil && s.Thumbnails.Medium.URL != "" {
		return s.Thumbnails.Medium.URL
	}
	return ""
}
