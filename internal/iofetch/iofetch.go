// Package iofetch retrieves remote CSV tables and HTML pages. Requests
// carry a User-Agent, obey a timeout and are spaced by a token-bucket
// limiter, so upstream hosts see a steady, polite client.
package iofetch

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/gnames/gn"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/time/rate"
)

// ErrNotFound is wrapped by FetchStatusError for 404 responses.
var ErrNotFound = errors.New("resource not found")

// Client fetches upstream resources.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
	encoding  string
}

// New creates a Client from source settings.
func New(cfg *config.Config) *Client {
	src := cfg.Source
	limit := rate.Inf
	if src.RequestsPerSecond > 0 {
		limit = rate.Limit(src.RequestsPerSecond)
	}
	return &Client{
		http: &http.Client{
			Timeout: time.Duration(src.Timeout) * time.Second,
		},
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: src.UserAgent,
		encoding:  src.Encoding,
	}
}

// GetHTML returns the body of a page.
func (c *Client) GetHTML(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url)
}

// GetCSV returns the header and rows of a remote CSV file. Bodies are
// decoded from ISO-8859-1 when the client is configured for it. Rows may
// have any number of fields.
func (c *Client) GetCSV(
	ctx context.Context,
	url string,
) ([]string, [][]string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, nil, err
	}

	var r io.Reader = bytes.NewReader(body)
	if c.encoding == "iso-8859-1" {
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, FetchDecodeError(url, err)
	}
	if len(records) == 0 {
		return nil, nil, FetchDecodeError(url, errors.New("empty CSV file"))
	}
	slog.Debug("Fetched CSV", "url", url, "rows", len(records)-1)
	return records[0], records[1:], nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, FetchError(url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, FetchError(url, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, FetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, FetchStatusError(url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, FetchError(url, err)
	}
	slog.Debug("Fetched resource",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(start).String(),
	)
	return body, nil
}

// IsNotFound reports if err is a fetch status error of a 404 response.
func IsNotFound(err error) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	return errors.Is(gnErr.Err, ErrNotFound)
}
