package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

func TestParseMediaKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want types.MediaKind
	}{
		{in: "movie", want: types.Movie},
		{in: "series", want: types.Series},
		{in: "tv", want: types.Series},
		{in: "show", want: types.Series},
		{in: "SERIES", want: types.Series},
		{in: " series ", want: types.Series},
		{in: "", want: types.Movie},
		{in: "podcast", want: types.Movie},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, types.ParseMediaKind(tt.in))
		})
	}
}

func TestMediaKind_TMDBPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "movie", types.Movie.TMDBPath())
	assert.Equal(t, "tv", types.Series.TMDBPath())
}

func TestPage_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	page := types.Page{
		Results: []types.Bundle{
			{
				Candidate: types.Candidate{
					ID:          "603",
					Title:       "Matrix",
					ReleaseYear: 1999,
					PosterURL:   "https://image.tmdb.org/t/p/w500/poster.jpg",
					Raw:         json.RawMessage(`{"vote_average":8.2}`),
				},
				Offers: []types.Offer{
					{
						ServiceID:   "netflix",
						ServiceName: "Netflix",
						AccessType:  "subscription",
						Country:     "BR",
						Link:        "https://netflix.com/title/603",
						Quality:     "uhd",
						Icon:        "https://cdn.simpleicons.org/netflix",
						Theme:       "red",
					},
				},
			},
			{
				Candidate:         types.Candidate{ID: "604", Title: "Matrix Reloaded"},
				Offers:            []types.Offer{},
				AvailabilityError: true,
			},
		},
		Pagination: types.PageMeta{
			Page: 2, PerPage: 20, TotalResults: 45, TotalPages: 3,
			HasNextPage: true, HasPrevPage: true,
		},
	}

	data, err := json.Marshal(page)
	require.NoError(t, err)

	var got types.Page
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, page, got)

	// Failed bundles keep an empty, non-null offer list on the wire.
	assert.Contains(t, string(data), `"offers":[]`)
}

func TestPage_WireFieldNames(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(types.Page{
		Results:    []types.Bundle{},
		Pagination: types.PageMeta{Page: 1, PerPage: 20},
	})
	require.NoError(t, err)

	for _, field := range []string{
		`"results"`, `"pagination"`, `"page"`, `"perPage"`,
		`"totalResults"`, `"totalPages"`, `"hasNextPage"`, `"hasPrevPage"`,
	} {
		assert.Contains(t, string(data), field)
	}
}
