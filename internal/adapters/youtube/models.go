package youtube

import (
	"strconv"
	"strings"
	"time"
)

// Candidate is the normalized video metadata the scorer consumes
type Candidate struct {
	ID          string
	Title       string
	Channel     string
	ChannelID   string
	Description string
	Tags        []string
	ViewCount   uint64
	Duration    time.Duration
}

// searchResponse is a partial Data API v3 search list document
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet snippet `json:"snippet"`
}

// videosResponse is a partial Data API v3 videos list document
type videosResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID      string  `json:"id"`
	Snippet snippet `json:"snippet"`
	Stats   struct {
		ViewCount string `json:"viewCount"`
	} `json:"statistics"`
	Content struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

type snippet struct {
	Title        string   `json:"title"`
	ChannelID    string   `json:"channelId"`
	ChannelTitle string   `json:"channelTitle"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
}

func (s searchItem) candidate() Candidate {
	return Candidate{
		ID:          s.ID.VideoID,
		Title:       s.Snippet.Title,
		Channel:     s.Snippet.ChannelTitle,
		ChannelID:   s.Snippet.ChannelID,
		Description: s.Snippet.Description,
		Tags:        s.Snippet.Tags,
	}
}

func (v videoItem) candidate() Candidate {
	views, _ := strconv.ParseUint(v.Stats.ViewCount, 10, 64)
	return Candidate{
		ID:          v.ID,
		Title:       v.Snippet.Title,
		Channel:     v.Snippet.ChannelTitle,
		ChannelID:   v.Snippet.ChannelID,
		Description: v.Snippet.Description,
		Tags:        v.Snippet.Tags,
		ViewCount:   views,
		Duration:    ParseISODuration(v.Content.Duration),
	}
}

// ParseISODuration parses the ISO-8601 durations the Data API emits
// (PT1H2M3S and friends); malformed input yields zero
func ParseISODuration(s string) time.Duration {
	s = strings.TrimPrefix(s, "P")
	if s == "" {
		return 0
	}
	var d time.Duration
	var num strings.Builder
	inTime := false
	for _, r := range s {
		switch {
		case r == 'T':
			inTime = true
		case r >= '0' && r <= '9':
			num.WriteRune(r)
		default:
			n, err := strconv.Atoi(num.String())
			num.Reset()
			if err != nil {
				return 0
			}
			switch r {
			case 'D':
				d += time.Duration(n) * 24 * time.Hour
			case 'H':
				d += time.Duration(n) * time.Hour
			case 'M':
				if inTime {
					d += time.Duration(n) * time.Minute
				} else {
					// calendar months never show up for video lengths
					return 0
				}
			case 'S':
				d += time.Duration(n) * time.Second
			default:
				return 0
			}
		}
	}
	return d
}
