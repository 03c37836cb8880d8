package streaming

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rodgo4k/cade-meu-filme/internal/metrics"
	"github.com/rodgo4k/cade-meu-filme/internal/provider"
	"github.com/rodgo4k/cade-meu-filme/internal/services"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

const (
	defaultBaseURL = "https://streaming-availability.p.rapidapi.com"
	defaultHost    = "streaming-availability.p.rapidapi.com"
)

var defaultCountries = []string{"br", "us"}

// Client implements ShowFinder against the streaming-availability API.
type Client struct {
	apiKey    string
	baseURL   string
	host      string
	countries []string
	fallbacks []string
	client    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHost overrides the x-rapidapi-host header value.
func WithHost(h string) Option {
	return func(c *Client) {
		c.host = h
	}
}

// WithCountries sets the country codes whose offers are surfaced, in the
// order they appear in flattened offer lists.
func WithCountries(countries []string) Option {
	return func(c *Client) {
		c.countries = countries
	}
}

// WithFallbackEndpoints sets the alternate title-search paths tried by
// FindByTitle, in order.
func WithFallbackEndpoints(paths []string) Option {
	return func(c *Client) {
		c.fallbacks = paths
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a streaming-availability client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		baseURL:   defaultBaseURL,
		host:      defaultHost,
		countries: defaultCountries,
		fallbacks: []string{"/getByTitle", "/find"},
		client:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiShow mirrors the provider's show payload. Only the fields this service
// models are decoded; the raw body is kept alongside.
type apiShow struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Overview     string `json:"overview"`
	ReleaseYear  int    `json:"releaseYear"`
	FirstAirYear int    `json:"firstAirYear"`
	ImageSet     struct {
		VerticalPoster map[string]string `json:"verticalPoster"`
	} `json:"imageSet"`
	StreamingOptions map[string][]apiOffer `json:"streamingOptions"`
}

type apiOffer struct {
	Service struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"service"`
	Type      string `json:"type"`
	Link      string `json:"link"`
	VideoLink string `json:"videoLink"`
	Quality   string `json:"quality"`
}

// Show implements ShowFinder.
func (c *Client) Show(ctx context.Context, id string, kind types.MediaKind) (*Show, error) {
	start := time.Now()
	defer func() {
		metrics.AvailabilityDuration.Observe(time.Since(start).Seconds())
	}()

	u := fmt.Sprintf("%s/shows/%s/%s", c.baseURL, kind, id)
	body, status, err := c.get(ctx, u)
	if err != nil {
		metrics.AvailabilityRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		metrics.AvailabilityRequestsTotal.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("show %s/%s: %w", kind, id, provider.ErrNotFound)
	case status != http.StatusOK:
		metrics.AvailabilityRequestsTotal.WithLabelValues("error").Inc()
		return nil, &provider.Error{Status: status, Body: string(body)}
	}

	show, err := c.decodeShow(body)
	if err != nil {
		metrics.AvailabilityRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("parsing show response: %w", err)
	}

	metrics.AvailabilityRequestsTotal.WithLabelValues("ok").Inc()
	return show, nil
}

// get performs one authenticated request and returns the body and status.
// Transport failures (including timeouts) come back as *provider.Error with
// status 0, which callers treat like an upstream 5xx.
func (c *Client) get(ctx context.Context, u string) ([]byte, int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("x-rapidapi-key", c.apiKey)
	httpReq.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, 0, &provider.Error{Status: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &provider.Error{Status: 0, Body: err.Error()}
	}

	return body, resp.StatusCode, nil
}

func (c *Client) decodeShow(body []byte) (*Show, error) {
	var api apiShow
	if err := json.Unmarshal(body, &api); err != nil {
		return nil, err
	}

	year := api.ReleaseYear
	if year == 0 {
		year = api.FirstAirYear
	}

	return &Show{
		ID:          api.ID,
		Title:       api.Title,
		Overview:    api.Overview,
		ReleaseYear: year,
		PosterURL:   posterFromImageSet(api.ImageSet.VerticalPoster),
		Offers:      c.flattenOffers(api.StreamingOptions),
		Raw:         json.RawMessage(body),
	}, nil
}

// flattenOffers walks the configured countries in order and converts each
// country's offers, dropping later duplicates of the same (serviceId,
// country) pair. Providers list the same service more than once with
// different access types; the first occurrence wins so results are stable.
func (c *Client) flattenOffers(options map[string][]apiOffer) []types.Offer {
	var offers []types.Offer
	seen := make(map[string]struct{})

	for _, country := range c.countries {
		cc := strings.ToUpper(country)
		for _, o := range options[strings.ToLower(country)] {
			if o.Service.ID == "" {
				continue
			}
			key := o.Service.ID + "|" + cc
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			link := o.Link
			if link == "" {
				link = o.VideoLink
			}

			style := services.Lookup(o.Service.Name)
			offers = append(offers, types.Offer{
				ServiceID:   o.Service.ID,
				ServiceName: o.Service.Name,
				AccessType:  types.AccessType(o.Type),
				Country:     cc,
				Link:        link,
				Quality:     o.Quality,
				Icon:        style.Icon,
				Theme:       style.Theme,
			})
		}
	}

	return offers
}

// posterFromImageSet picks the smallest useful poster size.
func posterFromImageSet(posters map[string]string) string {
	for _, size := range []string{"w240", "w360", "w480", "w720"} {
		if u := posters[size]; u != "" {
			return u
		}
	}
	for _, u := range posters {
		if u != "" {
			return u
		}
	}
	return ""
}
