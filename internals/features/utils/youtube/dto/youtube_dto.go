package dto

// Request dari frontend: URL video yang mau di-lookup
type YoutubeLookupRequest struct {
	URL string `json:"url"`
}

// Response metadata video ternormalisasi (shape lama dipertahankan,
// frontend sudah terlanjur memakai key camelCase ini).
type YoutubeVideoResponse struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Duration     string `json:"duration"`
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
}
