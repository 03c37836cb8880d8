package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rodgo4k/cade-meu-filme/internal/provider"
	"github.com/rodgo4k/cade-meu-filme/internal/resolver"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

// Pipeline is the slice of the resolver the search endpoint needs.
type Pipeline interface {
	Search(ctx context.Context, req resolver.SearchRequest) (*resolver.SearchResult, error)
	Direct(ctx context.Context, id string, kind types.MediaKind) (*resolver.DirectResult, error)
}

// SearchHandler handles title availability searches.
type SearchHandler struct {
	pipeline   Pipeline
	maxPerPage int
}

// NewSearchHandler creates a new SearchHandler. maxPerPage caps the perPage
// query parameter; zero or negative means 100.
func NewSearchHandler(p Pipeline, maxPerPage int) *SearchHandler {
	if maxPerPage <= 0 {
		maxPerPage = 100
	}
	return &SearchHandler{pipeline: p, maxPerPage: maxPerPage}
}

// SearchInput is the query string for the search endpoint. Numeric parameters
// are declared as strings so malformed values fall back to defaults instead
// of rejecting the request.
type SearchInput struct {
	Query   string `query:"q"       doc:"Title to search for" example:"matrix"`
	ID      string `query:"id"      doc:"Provider show ID for a direct lookup" example:"603"`
	Kind    string `query:"type"    doc:"Media type: movie or series (default movie)" example:"movie"`
	Page    string `query:"page"    doc:"Page number (default 1)" example:"1"`
	PerPage string `query:"perPage" doc:"Results per page (default 20, max 100)" example:"20"`
}

// SearchOutput carries a pre-marshaled JSON body. The query path and the
// direct-ID path return different shapes through the same operation.
type SearchOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// searchResponse is the query-path body: one page of bundles plus an optional
// user-facing message for empty result sets.
type searchResponse struct {
	Results    []types.Bundle `json:"results"`
	Pagination types.PageMeta `json:"pagination"`
	Message    string         `json:"message,omitempty"`
}

// Search resolves either a free-text query or a direct provider ID into
// streaming availability.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	id := strings.TrimSpace(input.ID)
	query := strings.TrimSpace(input.Query)

	if id == "" && query == "" {
		return nil, &apiError{
			httpStatus: http.StatusBadRequest,
			Message:    "Informe um título para buscar.",
		}
	}

	kind := types.ParseMediaKind(input.Kind)

	if id != "" {
		return h.direct(ctx, id, kind)
	}

	req := resolver.SearchRequest{
		Query:   query,
		Kind:    kind,
		Page:    parseIntParam(input.Page),
		PerPage: parseIntParam(input.PerPage),
	}
	if req.PerPage > h.maxPerPage {
		req.PerPage = h.maxPerPage
	}

	res, err := h.pipeline.Search(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}

	return jsonOutput(searchResponse{
		Results:    res.Page.Results,
		Pagination: res.Page.Pagination,
		Message:    res.Message,
	})
}

func (h *SearchHandler) direct(ctx context.Context, id string, kind types.MediaKind) (*SearchOutput, error) {
	res, err := h.pipeline.Direct(ctx, id, kind)
	if err != nil {
		return nil, mapError(err)
	}
	return jsonOutput(res)
}

// parseIntParam parses a numeric query parameter leniently: absent, malformed
// or non-positive values return 0 and downstream defaults apply.
func parseIntParam(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// mapError translates pipeline errors into the API's error envelope.
func mapError(err error) error {
	switch {
	case errors.Is(err, provider.ErrLookupNotConfigured):
		return &apiError{
			httpStatus: http.StatusNotFound,
			Message:    "Busca por título indisponível.",
			Hint:       "Configure a variável de ambiente TMDB_API_KEY para habilitar a busca por título.",
		}
	case errors.Is(err, provider.ErrAvailabilityNotConfigured):
		return &apiError{
			httpStatus: http.StatusInternalServerError,
			Message:    "Serviço de disponibilidade não configurado.",
			Hint:       "Configure a variável de ambiente RAPIDAPI_KEY.",
		}
	case errors.Is(err, provider.ErrNotFound):
		return &apiError{
			httpStatus: http.StatusNotFound,
			Message:    provider.Localize(err),
		}
	}

	var perr *provider.Error
	if errors.As(err, &perr) {
		return &apiError{
			httpStatus: perr.HTTPStatus(),
			Message:    provider.Localize(err),
			Status:     perr.Status,
			Details:    perr.Body,
		}
	}

	return &apiError{
		httpStatus: http.StatusInternalServerError,
		Message:    provider.Localize(err),
		Details:    err.Error(),
	}
}

func jsonOutput(v any) (*SearchOutput, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, &apiError{
			httpStatus: http.StatusInternalServerError,
			Message:    "Erro interno do servidor",
			Details:    err.Error(),
		}
	}
	return &SearchOutput{ContentType: "application/json", Body: body}, nil
}

// RegisterSearchRoutes registers the search endpoint with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-availability",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Search streaming availability",
		Description: "Searches titles by name or fetches one by provider ID and returns which streaming services carry them.",
		Tags:        []string{"search"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusForbidden,
			http.StatusNotFound,
			http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusInternalServerError,
		},
	}, h.Search)
}
