package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodgo4k/cade-meu-filme/internal/api/client"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

const searchPage = `{
	"results": [
		{
			"candidate": {"id": "603", "title": "Matrix", "releaseYear": 1999},
			"offers": [
				{"serviceId": "netflix", "serviceName": "Netflix", "accessType": "subscription", "country": "BR"}
			]
		}
	],
	"pagination": {
		"page": 1, "perPage": 20, "totalResults": 1, "totalPages": 1,
		"hasNextPage": false, "hasPrevPage": false
	}
}`

func TestClient_Search(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "matrix", r.URL.Query().Get("q"))
		assert.Equal(t, "movie", r.URL.Query().Get("type"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	resp, err := c.Search(context.Background(), client.SearchParams{
		Query: "matrix", Kind: types.Movie, Page: 2,
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Matrix", resp.Results[0].Candidate.Title)
	assert.Equal(t, 1, resp.Pagination.TotalResults)
}

func TestClient_SearchByID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "603", r.URL.Query().Get("id"))
		assert.Equal(t, "series", r.URL.Query().Get("type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidate": {"id": "603", "title": "Matrix"},
			"offers": [],
			"show": {"id": "603"}
		}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	resp, err := c.SearchByID(context.Background(), "603", types.Series)
	require.NoError(t, err)

	assert.Equal(t, "Matrix", resp.Candidate.Title)
	assert.Empty(t, resp.Offers)
	assert.JSONEq(t, `{"id":"603"}`, string(resp.Show))
}

func TestClient_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Busca por título indisponível.","hint":"Configure a variável de ambiente TMDB_API_KEY para habilitar a busca por título."}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.Search(context.Background(), client.SearchParams{Query: "matrix"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "Busca por título indisponível.")
	assert.Contains(t, err.Error(), "TMDB_API_KEY")
}

func TestClient_ServerNotRunning(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := client.New(srv.URL)
	_, err := c.Search(context.Background(), client.SearchParams{Query: "matrix"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}
