// Package usgs fetches and decodes the USGS earthquake GeoJSON summary feed.
package usgs

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
)

// FeedError is the single externally meaningful failure kind: a non-2xx
// status, a transport failure, or an undecodable payload, carrying a
// human-readable message for the dashboard's error surface.
type FeedError struct {
	StatusCode int // 0 for transport and decode failures
	Message    string
}

func (e *FeedError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("feed request failed: status %d: %s", e.StatusCode, e.Message)
	}
	return "feed request failed: " + e.Message
}

// Client fetches the USGS summary feed.
type Client struct {
	http    *resty.Client
	feedURL string
	logger  *slog.Logger
}

// NewClient creates a feed client with a request timeout and a small retry
// budget for transient transport failures.
func NewClient(feedURL string, timeout time.Duration, retries int, logger *slog.Logger) *Client {
	rc := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(2 * time.Second)

	return &Client{
		http:    rc,
		feedURL: feedURL,
		logger:  logger,
	}
}

// FetchEvents performs one GET against the feed and returns the decoded
// events sorted descending by time (most recent first) — an ordering the
// API layer depends on. Refresh is caller-initiated; there is no retry
// loop here beyond the transport retry budget.
func (c *Client) FetchEvents(ctx context.Context) ([]domain.Event, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.feedURL)
	if err != nil {
		return nil, &FeedError{Message: err.Error()}
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &FeedError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
		}
	}

	events, err := DecodeFeed(resp.Body())
	if err != nil {
		return nil, &FeedError{Message: err.Error()}
	}

	c.logger.Debug("feed fetched", "events", len(events), "url", c.feedURL)
	return events, nil
}
