package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	*httptest.Server
	contentHits  atomic.Int64
	upcomingHits atomic.Int64
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/content", func(w http.ResponseWriter, r *http.Request) {
		fs.contentHits.Add(1)
		writeJSON(w, []Content{{ID: 1, Title: "Dune", Type: "movie"}})
	})
	mux.HandleFunc("GET /api/content/1", func(w http.ResponseWriter, r *http.Request) {
		fs.contentHits.Add(1)
		writeJSON(w, Content{ID: 1, Title: "Dune", Type: "movie"})
	})
	mux.HandleFunc("GET /api/content/99", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]string{"error": "Content not found"})
	})
	mux.HandleFunc("POST /api/content", func(w http.ResponseWriter, r *http.Request) {
		var in ContentInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, map[string]string{"error": "Invalid data"})
			return
		}
		writeJSON(w, Content{ID: 2, Title: in.Title, Type: in.Type})
	})
	mux.HandleFunc("GET /api/upcoming-content", func(w http.ResponseWriter, r *http.Request) {
		fs.upcomingHits.Add(1)
		writeJSON(w, []UpcomingContent{})
	})

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestGet_CachesPerPath(t *testing.T) {
	fs := newFakeServer(t)
	c := New(fs.URL)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		items, err := c.ListContent(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Dune", items[0].Title)
	}
	assert.Equal(t, int64(1), fs.contentHits.Load())

	// A different path is a different cache entry
	_, err := c.GetContent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fs.contentHits.Load())
}

func TestMutation_InvalidatesAffectedPaths(t *testing.T) {
	fs := newFakeServer(t)
	c := New(fs.URL)
	ctx := context.Background()

	_, err := c.ListContent(ctx)
	require.NoError(t, err)
	_, err = c.ListUpcoming(ctx)
	require.NoError(t, err)

	created, err := c.CreateContent(ctx, ContentInput{Title: "Arrival", Type: "movie", Genres: []string{"Sci-Fi"}})
	require.NoError(t, err)
	assert.Equal(t, "Arrival", created.Title)

	// Content listings refetch, upcoming stays cached
	_, err = c.ListContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fs.contentHits.Load())

	_, err = c.ListUpcoming(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fs.upcomingHits.Load())
}

func TestGet_NotFoundSentinel(t *testing.T) {
	fs := newFakeServer(t)
	c := New(fs.URL)

	_, err := c.GetContent(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutation_APIError(t *testing.T) {
	fs := newFakeServer(t)
	c := New(fs.URL)

	_, err := c.CreateContent(context.Background(), ContentInput{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid data", apiErr.Message)
}

func TestClearCache(t *testing.T) {
	fs := newFakeServer(t)
	c := New(fs.URL)
	ctx := context.Background()

	_, err := c.ListContent(ctx)
	require.NoError(t, err)
	c.ClearCache()
	_, err = c.ListContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fs.contentHits.Load())
}
