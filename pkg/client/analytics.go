package client

import (
	"context"
	"net/http"
)

// RecordEvent records an analytics event. View events bump the view counter
// server-side, so cached content responses are invalidated too.
func (c *Client) RecordEvent(ctx context.Context, in EventInput) (*AnalyticsEvent, error) {
	var out AnalyticsEvent
	err := c.mutate(ctx, http.MethodPost, "/api/analytics", in, &out, "/api/analytics", "/api/content")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSummary returns the aggregate analytics dashboard payload.
func (c *Client) GetSummary(ctx context.Context) (*AnalyticsSummary, error) {
	var out AnalyticsSummary
	if err := c.get(ctx, "/api/analytics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
