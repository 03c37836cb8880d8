package streaming

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rodgo4k/cade-meu-filme/internal/provider"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

// FindByTitle implements TitleFinder by trying the configured alternate
// search endpoints in order. These endpoints are speculative; the provider
// does not document them, so any failure (status, transport, decode) moves
// on to the next attempt. When every attempt fails the caller gets
// provider.ErrLookupNotConfigured and should surface the configuration hint.
func (c *Client) FindByTitle(ctx context.Context, title string, kind types.MediaKind) (*Show, error) {
	country := "us"
	if len(c.countries) > 0 {
		country = c.countries[0]
	}

	params := url.Values{}
	params.Set("title", title)
	params.Set("country", country)
	params.Set("type", kind.String())
	query := "?" + params.Encode()

	for _, path := range c.fallbacks {
		body, status, err := c.get(ctx, c.baseURL+path+query)
		if err != nil || status != http.StatusOK {
			continue
		}

		show, err := c.decodeShow(body)
		if err != nil {
			continue
		}
		return show, nil
	}

	return nil, provider.ErrLookupNotConfigured
}
