package streaming_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodgo4k/cade-meu-filme/internal/provider"
	"github.com/rodgo4k/cade-meu-filme/internal/streaming"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

func TestClient_FindByTitle_FirstEndpointWins(t *testing.T) {
	t.Parallel()

	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, "matrix", r.URL.Query().Get("title"))
		assert.Equal(t, "br", r.URL.Query().Get("country"))
		assert.Equal(t, "movie", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(`{"id": "603", "title": "Matrix"}`))
	}))
	defer srv.Close()

	client := streaming.NewClient("k", streaming.WithBaseURL(srv.URL))

	show, err := client.FindByTitle(context.Background(), "matrix", types.Movie)
	require.NoError(t, err)
	assert.Equal(t, "Matrix", show.Title)
	assert.Equal(t, []string{"/getByTitle"}, paths, "second endpoint must not be tried")
}

func TestClient_FindByTitle_FallsThroughOnFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/getByTitle" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id": "603", "title": "Matrix"}`))
	}))
	defer srv.Close()

	client := streaming.NewClient("k", streaming.WithBaseURL(srv.URL))

	show, err := client.FindByTitle(context.Background(), "matrix", types.Movie)
	require.NoError(t, err)
	assert.Equal(t, "603", show.ID)
}

func TestClient_FindByTitle_AllEndpointsFail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := streaming.NewClient("k", streaming.WithBaseURL(srv.URL))

	_, err := client.FindByTitle(context.Background(), "matrix", types.Movie)
	require.ErrorIs(t, err, provider.ErrLookupNotConfigured)
}
