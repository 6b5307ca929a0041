package youtube

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	perr "setlist/internal/platform/errors"
)

const (
	maxBatchIDs = 50 // Data API videos.list hard limit per call

	// musicCategoryID narrows seed searches to music content
	musicCategoryID = "10"
)

// FindSeedCandidate resolves free text to the best matching video.
// Returns NotFound when the search has no hits
func (c *Client) FindSeedCandidate(ctx context.Context, text string) (Candidate, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("videoCategoryId", musicCategoryID)
	q.Set("maxResults", "1")
	q.Set("q", text)

	var out searchResponse
	if err := c.get(ctx, "/search", q, &out); err != nil {
		return Candidate{}, err
	}
	for _, it := range out.Items {
		if it.ID.VideoID != "" {
			return it.candidate(), nil
		}
	}
	return Candidate{}, perr.Newf(perr.ErrorCodeNotFound, "no video matched %q", text)
}

// RelatedCandidates lists videos related to id, at most limit.
// An empty result is not an error
func (c *Client) RelatedCandidates(ctx context.Context, id string, limit int) ([]Candidate, error) {
	if limit <= 0 {
		limit = 25
	}
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("relatedToVideoId", id)
	q.Set("maxResults", strconv.Itoa(limit))

	var out searchResponse
	if err := c.get(ctx, "/search", q, &out); err != nil {
		return nil, err
	}
	cands := make([]Candidate, 0, len(out.Items))
	for _, it := range out.Items {
		if it.ID.VideoID == "" {
			continue
		}
		cands = append(cands, it.candidate())
	}
	return cands, nil
}

// BatchDetails fetches stats and duration for up to 50 ids per call.
// Unknown ids are simply absent from the map
func (c *Client) BatchDetails(ctx context.Context, ids []string) (map[string]Candidate, error) {
	got := make(map[string]Candidate, len(ids))
	for start := 0; start < len(ids); start += maxBatchIDs {
		end := min(start+maxBatchIDs, len(ids))

		q := url.Values{}
		q.Set("part", "snippet,statistics,contentDetails")
		q.Set("id", strings.Join(ids[start:end], ","))

		var out videosResponse
		if err := c.get(ctx, "/videos", q, &out); err != nil {
			return nil, err
		}
		for _, it := range out.Items {
			got[it.ID] = it.candidate()
		}
	}
	return got, nil
}

// PopularChart returns the current most popular videos for a category.
// categoryID "10" is music; empty means all categories
func (c *Client) PopularChart(ctx context.Context, categoryID string, limit int) ([]Candidate, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("part", "snippet,statistics,contentDetails")
	q.Set("chart", "mostPopular")
	q.Set("maxResults", strconv.Itoa(limit))
	if categoryID != "" {
		q.Set("videoCategoryId", categoryID)
	}

	var out videosResponse
	if err := c.get(ctx, "/videos", q, &out); err != nil {
		return nil, err
	}
	cands := make([]Candidate, 0, len(out.Items))
	for _, it := range out.Items {
		cands = append(cands, it.candidate())
	}
	return cands, nil
}
