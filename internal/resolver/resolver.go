// Package resolver implements the availability resolution pipeline: it turns
// a free-text query into a paginated list of title+availability bundles, or a
// direct ID into a single bundle with the raw provider payload.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rodgo4k/cade-meu-filme/internal/provider"
	"github.com/rodgo4k/cade-meu-filme/internal/streaming"
	"github.com/rodgo4k/cade-meu-filme/internal/tmdb"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

// Params wires the resolver's collaborators. Lookup may be nil when no TMDB
// key is configured: free-text search then degrades to the optional Titles
// fallback, or to a configuration hint. Shows may be nil when the
// availability key is absent, in which case every request fails fast before
// any network call.
type Params struct {
	Lookup tmdb.Searcher
	Shows  streaming.ShowFinder
	Titles streaming.TitleFinder
	Locale string
	Logger *slog.Logger
}

// Resolver is the single entry point consumed by the HTTP boundary.
type Resolver struct {
	lookup tmdb.Searcher
	shows  streaming.ShowFinder
	titles streaming.TitleFinder
	locale string
	logger *slog.Logger
}

// New creates a Resolver.
func New(p Params) *Resolver {
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	return &Resolver{
		lookup: p.Lookup,
		shows:  p.Shows,
		titles: p.Titles,
		locale: p.Locale,
		logger: p.Logger,
	}
}

// SearchRequest is a free-text query-path request.
type SearchRequest struct {
	Query   string
	Kind    types.MediaKind
	Page    int
	PerPage int
}

// SearchResult is the query-path response. Message explains an empty result
// set to the user.
type SearchResult struct {
	Page    types.Page
	Message string
}

// DirectResult is the ID-path response: the bundle plus the availability
// provider's raw payload.
type DirectResult struct {
	types.Bundle
	Show json.RawMessage `json:"show,omitempty"`
}

// Search resolves a free-text query into one page of bundles.
//
// State machine: missing availability credential fails fast with zero
// outbound calls; missing lookup credential tries the alternate title search
// when enabled, else fails with the configuration hint; an empty lookup
// result short-circuits to an empty page; otherwise the candidate list is
// paginated and the page is fanned out to the availability provider.
func (r *Resolver) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if r.shows == nil {
		return nil, provider.ErrAvailabilityNotConfigured
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	if r.lookup == nil {
		return r.searchWithoutLookup(ctx, query, req)
	}

	candidates, err := r.lookup.Search(ctx, query, req.Kind, r.locale)
	if err != nil {
		return nil, fmt.Errorf("searching titles: %w", err)
	}

	pageCandidates, meta := Paginate(candidates, req.Page, req.PerPage)

	if meta.TotalResults == 0 {
		return &SearchResult{
			Page:    types.Page{Results: []types.Bundle{}, Pagination: meta},
			Message: "Nenhum resultado encontrado.",
		}, nil
	}

	bundles := r.aggregate(ctx, pageCandidates, req.Kind)

	return &SearchResult{
		Page: types.Page{Results: bundles, Pagination: meta},
	}, nil
}

// searchWithoutLookup handles the no-TMDB-key path: a single speculative
// title match via the availability provider when enabled, else the
// configuration error that tells the operator which key to set.
func (r *Resolver) searchWithoutLookup(
	ctx context.Context,
	query string,
	req SearchRequest,
) (*SearchResult, error) {
	if r.titles == nil {
		return nil, provider.ErrLookupNotConfigured
	}

	show, err := r.titles.FindByTitle(ctx, query, req.Kind)
	if err != nil {
		return nil, err
	}

	_, meta := Paginate(make([]types.Candidate, 1), 1, req.PerPage)
	return &SearchResult{
		Page: types.Page{
			Results:    []types.Bundle{bundleFromShow(show)},
			Pagination: meta,
		},
	}, nil
}

// Direct resolves a provider ID with a single availability call. Error kinds
// propagate unchanged so the HTTP layer can map 404/403/429 faithfully.
func (r *Resolver) Direct(ctx context.Context, id string, kind types.MediaKind) (*DirectResult, error) {
	if r.shows == nil {
		return nil, provider.ErrAvailabilityNotConfigured
	}

	show, err := r.shows.Show(ctx, id, kind)
	if err != nil {
		return nil, err
	}

	return &DirectResult{
		Bundle: bundleFromShow(show),
		Show:   show.Raw,
	}, nil
}

func bundleFromShow(show *streaming.Show) types.Bundle {
	offers := show.Offers
	if offers == nil {
		offers = []types.Offer{}
	}
	return types.Bundle{
		Candidate: types.Candidate{
			ID:          show.ID,
			Title:       show.Title,
			ReleaseYear: show.ReleaseYear,
			PosterURL:   show.PosterURL,
		},
		Offers: offers,
	}
}
