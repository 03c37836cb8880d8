package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodgo4k/cade-meu-filme/internal/tmdb"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

func TestClient_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		kind           types.MediaKind
		handler        http.HandlerFunc
		wantCandidates int
		wantFirstTitle string
		wantFirstYear  int
	}{
		{
			name: "movie results decode with passthrough",
			kind: types.Movie,
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search/movie", r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
				assert.Equal(t, "matrix", r.URL.Query().Get("query"))
				assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"results": [
						{"id": 603, "title": "Matrix", "release_date": "1999-03-31", "poster_path": "/p1.jpg", "vote_average": 8.2},
						{"id": 604, "title": "Matrix Reloaded", "release_date": "2003-05-15"}
					],
					"total_results": 2
				}`))
			},
			wantCandidates: 2,
			wantFirstTitle: "Matrix",
			wantFirstYear:  1999,
		},
		{
			name: "series results use name and first air date",
			kind: types.Series,
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search/tv", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"results": [
						{"id": 1396, "name": "Breaking Bad", "first_air_date": "2008-01-20"}
					]
				}`))
			},
			wantCandidates: 1,
			wantFirstTitle: "Breaking Bad",
			wantFirstYear:  2008,
		},
		{
			name: "empty results",
			kind: types.Movie,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"results": []}`))
			},
			wantCandidates: 0,
		},
		{
			name: "provider 401 yields no candidates and no error",
			kind: types.Movie,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"status_message": "Invalid API key"}`))
			},
			wantCandidates: 0,
		},
		{
			name: "provider 500 yields no candidates and no error",
			kind: types.Movie,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantCandidates: 0,
		},
		{
			name: "malformed body yields no candidates and no error",
			kind: types.Movie,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(`<html>not json</html>`))
			},
			wantCandidates: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := tmdb.NewClient("test-key", tmdb.WithBaseURL(srv.URL))

			candidates, err := client.Search(context.Background(), "matrix", tt.kind, "pt-BR")
			require.NoError(t, err)
			require.Len(t, candidates, tt.wantCandidates)

			if tt.wantCandidates > 0 {
				first := candidates[0]
				assert.Equal(t, tt.wantFirstTitle, first.Title)
				assert.Equal(t, tt.wantFirstYear, first.ReleaseYear)
				assert.NotEmpty(t, first.ID)
				assert.NotEmpty(t, first.Raw, "provider fields must pass through")
			}
		})
	}
}

func TestClient_Search_PosterURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"id": 1, "title": "A", "poster_path": "/abc.jpg"}]}`))
	}))
	defer srv.Close()

	client := tmdb.NewClient("k", tmdb.WithBaseURL(srv.URL))
	candidates, err := client.Search(context.Background(), "a", types.Movie, "")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", candidates[0].PosterURL)
}

func TestClient_Search_EmptyQuery(t *testing.T) {
	t.Parallel()

	client := tmdb.NewClient("k", tmdb.WithBaseURL("http://127.0.0.1:0"))
	_, err := client.Search(context.Background(), "", types.Movie, "")
	require.Error(t, err)
}

func TestClient_Search_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := tmdb.NewClient("k", tmdb.WithBaseURL(srv.URL))
	_, err := client.Search(context.Background(), "matrix", types.Movie, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing search request")
}
