/*
Package youtube is a thin client for the YouTube Data API v3, used to
augment workout plans with video suggestions. Search and detail lookups
are cached in an expirable LRU since identical queries recur heavily
across users with similar profiles.
*/
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
)

const (
	apiBaseURL     = "https://www.googleapis.com/youtube/v3"
	requestTimeout = 15 * time.Second

	cacheSize = 128
	cacheTTL  = 15 * time.Minute

	defaultMaxResults = 5
	defaultDuration   = "medium"
)

// Video is one search result.
type Video struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
}

// VideoDetails is the full record for a single video.
type VideoDetails struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	ViewCount    string `json:"view_count"`
	LikeCount    string `json:"like_count"`
	ChannelTitle string `json:"channel_title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// --- API response shapes (only the fields we read) ---

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet snippet `json:"snippet"`
	} `json:"items"`
}

type snippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Thumbnails   map[string]struct {
		URL string `json:"url"`
	} `json:"thumbnails"`
}

type videosResponse struct {
	Items []struct {
		Snippet        snippet `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
			LikeCount string `json:"likeCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// Client calls the video search backend.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	searches *expirable.LRU[string, []Video]
	details  *expirable.LRU[string, VideoDetails]
}

// NewClient builds a client. baseURL may be empty for the public API.
func NewClient(apiKey, baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = apiBaseURL
	}
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		http:     &http.Client{Timeout: requestTimeout},
		log:      log,
		searches: expirable.NewLRU[string, []Video](cacheSize, nil, cacheTTL),
		details:  expirable.NewLRU[string, VideoDetails](cacheSize, nil, cacheTTL),
	}
}

// Search looks up workout videos for a query, optionally narrowed by
// relevance keywords (appended to the query) and a duration filter.
func (c *Client) Search(ctx context.Context, query string, maxResults int, relevanceKeywords []string, videoDuration string) ([]Video, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if videoDuration == "" {
		videoDuration = defaultDuration
	}
	if len(relevanceKeywords) > 0 {
		query = query + " " + strings.Join(relevanceKeywords, " ")
	}

	cacheKey := fmt.Sprintf("%s|%d|%s", query, maxResults, videoDuration)
	if videos, ok := c.searches.Get(cacheKey); ok {
		return videos, nil
	}

	params := url.Values{
		"q":                 {query},
		"part":              {"snippet"},
		"maxResults":        {strconv.Itoa(maxResults)},
		"type":              {"video"},
		"videoDuration":     {videoDuration},
		"regionCode":        {"US"},
		"relevanceLanguage": {"en"},
		"key":               {c.apiKey},
	}

	var sr searchResponse
	if err := c.get(ctx, "/search", params, &sr); err != nil {
		return nil, fmt.Errorf("video search: %w", err)
	}

	videos := make([]Video, 0, len(sr.Items))
	for _, item := range sr.Items {
		videos = append(videos, Video{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: item.Snippet.Thumbnails["medium"].URL,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}

	c.searches.Add(cacheKey, videos)
	return videos, nil
}

// VideoDetails fetches the full record for one video id.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (VideoDetails, error) {
	if d, ok := c.details.Get(videoID); ok {
		return d, nil
	}

	params := url.Values{
		"part": {"snippet,contentDetails,statistics"},
		"id":   {videoID},
		"key":  {c.apiKey},
	}

	var vr videosResponse
	if err := c.get(ctx, "/videos", params, &vr); err != nil {
		return VideoDetails{}, fmt.Errorf("video details: %w", err)
	}
	if len(vr.Items) == 0 {
		return VideoDetails{}, fmt.Errorf("no video found with ID %s", videoID)
	}

	item := vr.Items[0]
	d := VideoDetails{
		VideoID:      videoID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Duration:     item.ContentDetails.Duration,
		ViewCount:    item.Statistics.ViewCount,
		LikeCount:    item.Statistics.LikeCount,
		ChannelTitle: item.Snippet.ChannelTitle,
		ThumbnailURL: item.Snippet.Thumbnails["high"].URL,
	}

	c.details.Add(videoID, d)
	return d, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn().Int("status", resp.StatusCode).Bytes("body", body).Msg("Video search backend returned non-200")
		return fmt.Errorf("backend returned %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
