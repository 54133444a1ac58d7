// Package geocode provides a small client for Nominatim-compatible geocoding
// services. It supports forward lookup (free-text address to ranked candidate
// places) and reverse lookup (coordinates to a display label).
//
// Lookups are best-effort: network failures, non-2xx responses and malformed
// bodies all yield an empty result rather than an error, so callers can fall
// back to a re-prompt ("address not found") without special cases.
// Requests are throttled client-side with a token bucket because the public
// Nominatim instance enforces an absolute usage policy (about one request per
// second per application).
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// maxForwardResults caps how many candidate places a forward lookup returns.
const maxForwardResults = 5

// Place is one geocoding candidate: a human-readable label plus coordinates.
type Place struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// Client talks to a Nominatim-compatible endpoint.
//
// The zero value is not usable; construct with New. Client is safe for
// concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// New constructs a Client.
//
//   - baseURL:   endpoint root, e.g. "https://nominatim.openstreetmap.org".
//   - userAgent: identifying User-Agent (required by the Nominatim policy).
//   - timeout:   per-request budget.
//   - rps:       client-side request rate (tokens per second).
func New(baseURL, userAgent string, timeout time.Duration, rps float64) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Forward resolves a free-text address into up to maxForwardResults ranked
// candidate places. An empty query, a failed request or an empty response all
// return a nil slice.
func (c *Client) Forward(ctx context.Context, query string) []Place {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil
	}

	q := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {strconv.Itoa(maxForwardResults)},
	}
	var rows []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
	if !c.getJSON(ctx, c.baseURL+"/search?"+q.Encode(), &rows) {
		return nil
	}

	out := make([]Place, 0, len(rows))
	for _, r := range rows {
		// Nominatim serializes coordinates as strings.
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lon, errLon := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLon != nil || r.DisplayName == "" {
			continue
		}
		out = append(out, Place{Label: r.DisplayName, Lat: lat, Lon: lon})
		if len(out) == maxForwardResults {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Reverse resolves coordinates into a display label. The second return value
// is false when no label could be obtained.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, bool) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", false
	}

	q := url.Values{
		"lat":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(lon, 'f', -1, 64)},
		"format": {"json"},
	}
	var row struct {
		DisplayName string `json:"display_name"`
	}
	if !c.getJSON(ctx, c.baseURL+"/reverse?"+q.Encode(), &row) || row.DisplayName == "" {
		return "", false
	}
	return row.DisplayName, true
}

// getJSON performs a GET with the configured User-Agent and decodes the JSON
// body into dst. It reports success; every failure path logs and returns false.
func (c *Client) getJSON(ctx context.Context, rawURL string, dst any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("geocode request failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Msg("geocode non-2xx response")
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		log.Warn().Err(err).Msg("geocode decode failed")
		return false
	}
	return true
}
