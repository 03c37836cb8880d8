package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rodgo4k/cade-meu-filme/internal/metrics"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "pt-BR"
	posterBaseURL   = "https://image.tmdb.org/t/p/w500"
)

// Client implements Searcher against the TMDB v3 search API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default TMDB endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a TMDB search client. apiKey must be non-empty; callers
// that have no key should not construct a client at all.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchAPIResponse mirrors the TMDB search response. Result items are kept
// raw so provider fields pass through to the UI unmodified.
type searchAPIResponse struct {
	Results []json.RawMessage `json:"results"`
}

// tmdbResult holds the few fields this service models per result item.
// Movies use title/release_date, series use name/first_air_date.
type tmdbResult struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
	PosterPath   string `json:"poster_path"`
}

// Search implements Searcher. Exactly one outbound request is made per call;
// there are no retries. The caller is responsible for trimming the query.
func (c *Client) Search(
	ctx context.Context,
	query string,
	kind types.MediaKind,
	locale string,
) ([]types.Candidate, error) {
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}
	if locale == "" {
		locale = defaultLanguage
	}

	start := time.Now()
	defer func() {
		metrics.LookupDuration.Observe(time.Since(start).Seconds())
	}()

	u := c.buildSearchURL(query, kind, locale)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		metrics.LookupRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.LookupRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	// A provider-side failure is "no candidates", not a hard error. The
	// orchestrator degrades to an empty result set.
	if resp.StatusCode != http.StatusOK {
		metrics.LookupRequestsTotal.WithLabelValues("empty").Inc()
		return nil, nil
	}

	var apiResp searchAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		metrics.LookupRequestsTotal.WithLabelValues("empty").Inc()
		return nil, nil
	}

	candidates := make([]types.Candidate, 0, len(apiResp.Results))
	for _, raw := range apiResp.Results {
		var r tmdbResult
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		candidates = append(candidates, toCandidate(r, raw))
	}

	if len(candidates) == 0 {
		metrics.LookupRequestsTotal.WithLabelValues("empty").Inc()
	} else {
		metrics.LookupRequestsTotal.WithLabelValues("ok").Inc()
	}

	return candidates, nil
}

func (c *Client) buildSearchURL(query string, kind types.MediaKind, locale string) string {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	params.Set("language", locale)

	return c.baseURL + "/search/" + kind.TMDBPath() + "?" + params.Encode()
}

func toCandidate(r tmdbResult, raw json.RawMessage) types.Candidate {
	title := r.Title
	if title == "" {
		title = r.Name
	}

	date := r.ReleaseDate
	if date == "" {
		date = r.FirstAirDate
	}
	year := 0
	if len(date) >= 4 {
		year, _ = strconv.Atoi(date[:4])
	}

	poster := ""
	if r.PosterPath != "" {
		poster = posterBaseURL + r.PosterPath
	}

	return types.Candidate{
		ID:          strconv.Itoa(r.ID),
		Title:       title,
		ReleaseYear: year,
		PosterURL:   poster,
		Raw:         raw,
	}
}
