package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListContent returns every catalog entry, newest first.
func (c *Client) ListContent(ctx context.Context) ([]Content, error) {
	var out []Content
	err := c.get(ctx, "/api/content", &out)
	return out, err
}

// ListPublishedContent returns the published subset of the catalog.
func (c *Client) ListPublishedContent(ctx context.Context) ([]Content, error) {
	var out []Content
	err := c.get(ctx, "/api/content/published", &out)
	return out, err
}

// GetContent returns a single catalog entry.
func (c *Client) GetContent(ctx context.Context, id uint) (*Content, error) {
	var out Content
	if err := c.get(ctx, fmt.Sprintf("/api/content/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateContent creates a catalog entry. For TV shows the nested seasons and
// episodes are created in the same call.
func (c *Client) CreateContent(ctx context.Context, in ContentInput) (*Content, error) {
	var out Content
	err := c.mutate(ctx, http.MethodPost, "/api/content", in, &out, "/api/content")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContent applies a partial update to a catalog entry.
func (c *Client) UpdateContent(ctx context.Context, id uint, patch ContentPatch) (*Content, error) {
	var out Content
	err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("/api/content/%d", id), patch, &out, "/api/content")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContent removes a catalog entry and, for TV shows, its seasons and
// episodes.
func (c *Client) DeleteContent(ctx context.Context, id uint) error {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/content/%d", id), nil, nil, "/api/content")
}

// ListSeasons returns the seasons of a TV show with their episodes.
func (c *Client) ListSeasons(ctx context.Context, contentID uint) ([]Season, error) {
	var out []Season
	err := c.get(ctx, fmt.Sprintf("/api/content/%d/seasons", contentID), &out)
	return out, err
}

// CreateSeason adds a season to an existing TV show.
func (c *Client) CreateSeason(ctx context.Context, in SeasonInput) (*Season, error) {
	var out Season
	err := c.mutate(ctx, http.MethodPost, "/api/seasons", in, &out, "/api/content", "/api/seasons")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSeason applies a partial update to a season.
func (c *Client) UpdateSeason(ctx context.Context, id uint, patch SeasonPatch) (*Season, error) {
	var out Season
	err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("/api/seasons/%d", id), patch, &out, "/api/content", "/api/seasons")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSeason removes a season and its episodes.
func (c *Client) DeleteSeason(ctx context.Context, id uint) error {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/seasons/%d", id), nil, nil, "/api/content", "/api/seasons")
}

// ListEpisodes returns the episodes of a season.
func (c *Client) ListEpisodes(ctx context.Context, seasonID uint) ([]Episode, error) {
	var out []Episode
	err := c.get(ctx, fmt.Sprintf("/api/seasons/%d/episodes", seasonID), &out)
	return out, err
}

// CreateEpisode adds an episode to an existing season.
func (c *Client) CreateEpisode(ctx context.Context, in EpisodeInput) (*Episode, error) {
	var out Episode
	err := c.mutate(ctx, http.MethodPost, "/api/episodes", in, &out, "/api/content", "/api/seasons")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEpisode applies a partial update to an episode.
func (c *Client) UpdateEpisode(ctx context.Context, id uint, patch EpisodePatch) (*Episode, error) {
	var out Episode
	err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("/api/episodes/%d", id), patch, &out, "/api/content", "/api/seasons")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEpisode removes an episode.
func (c *Client) DeleteEpisode(ctx context.Context, id uint) error {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/episodes/%d", id), nil, nil, "/api/content", "/api/seasons")
}

// ListUpcoming returns coming-soon entries in section order.
func (c *Client) ListUpcoming(ctx context.Context) ([]UpcomingContent, error) {
	var out []UpcomingContent
	err := c.get(ctx, "/api/upcoming-content", &out)
	return out, err
}

// GetUpcoming returns a single coming-soon entry.
func (c *Client) GetUpcoming(ctx context.Context, id uint) (*UpcomingContent, error) {
	var out UpcomingContent
	if err := c.get(ctx, fmt.Sprintf("/api/upcoming-content/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUpcoming creates a coming-soon entry.
func (c *Client) CreateUpcoming(ctx context.Context, in UpcomingInput) (*UpcomingContent, error) {
	var out UpcomingContent
	err := c.mutate(ctx, http.MethodPost, "/api/upcoming-content", in, &out, "/api/upcoming-content")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUpcoming applies a partial update to a coming-soon entry.
func (c *Client) UpdateUpcoming(ctx context.Context, id uint, patch UpcomingPatch) (*UpcomingContent, error) {
	var out UpcomingContent
	err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("/api/upcoming-content/%d", id), patch, &out, "/api/upcoming-content")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUpcoming removes a coming-soon entry.
func (c *Client) DeleteUpcoming(ctx context.Context, id uint) error {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/upcoming-content/%d", id), nil, nil, "/api/upcoming-content")
}
