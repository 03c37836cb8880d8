package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

// SearchResponse is one page of the query-path search response.
type SearchResponse struct {
	Results    []types.Bundle `json:"results"`
	Pagination types.PageMeta `json:"pagination"`
	Message    string         `json:"message,omitempty"`
}

// DirectResponse is the direct-ID search response.
type DirectResponse struct {
	Candidate types.Candidate `json:"candidate"`
	Offers    []types.Offer   `json:"offers"`
	Show      json.RawMessage `json:"show,omitempty"`
}

// SearchParams defines query parameters for a title search.
type SearchParams struct {
	Query   string
	Kind    types.MediaKind
	Page    int
	PerPage int
}

// Search returns one page of availability bundles for a free-text query.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", params.Query)
	if params.Kind != "" {
		q.Set("type", string(params.Kind))
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(params.PerPage))
	}

	var resp SearchResponse
	if err := c.get(ctx, "/api/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchByID returns the availability bundle for a single provider ID.
func (c *Client) SearchByID(ctx context.Context, id string, kind types.MediaKind) (*DirectResponse, error) {
	q := url.Values{}
	q.Set("id", id)
	if kind != "" {
		q.Set("type", string(kind))
	}

	var resp DirectResponse
	if err := c.get(ctx, "/api/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
