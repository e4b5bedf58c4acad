package services

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewbatter_back_end/internal/models"
)

func menu() []models.MenuHit {
	return []models.MenuHit{
		{ID: "1", Name: "Cold Coffee", Description: "Iced and sweet"},
		{ID: "2", Name: "Masala Chai", Description: "Spiced tea"},
		{ID: "3", Name: "Brownie", Description: "Goes well with coffee"},
	}
}

func TestFilterMenu(t *testing.T) {
	hits := FilterMenu(menu(), "COFFEE")
	require.Len(t, hits, 2)
	assert.Equal(t, "1", hits[0].ID)
	assert.Equal(t, "3", hits[1].ID)

	assert.Empty(t, FilterMenu(menu(), "  "))
	assert.Empty(t, FilterMenu(menu(), "pizza"))
}

func TestObjectName(t *testing.T) {
	name, err := ObjectName("categories", "image/PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "categories/"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	_, err = ObjectName("categories", "application/pdf")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestStorageDisabled(t *testing.T) {
	s := NewStorage(nil, "menu", "")
	assert.False(t, s.Enabled())
	_, err := s.UploadImage(context.Background(), "x", &multipart.FileHeader{Size: 10})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func newElastic(t *testing.T, h http.HandlerFunc) *Search {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewSearch(es)
}

func TestSearchMenu(t *testing.T) {
	s := newElastic(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/"+MenuIndex+"/_search", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		var q map[string]any
		require.NoError(t, json.Unmarshal(body, &q))
		assert.Contains(t, string(body), `"query":"coffee"`)
		_, _ = io.WriteString(w, `{"hits":{"hits":[{"_source":{"id":"1","name":"Cold Coffee","price":120,"category_id":"c1"}}]}}`)
	})

	hits, err := s.SearchMenu(context.Background(), "coffee", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Cold Coffee", hits[0].Name)
	assert.Equal(t, "c1", hits[0].CategoryID)
}

func TestIndexAndDelete(t *testing.T) {
	var paths []string
	s := newElastic(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"result":"not_found"}`)
			return
		}
		_, _ = io.WriteString(w, `{"result":"created"}`)
	})

	require.NoError(t, s.IndexItemType(context.Background(), models.MenuHit{ID: "1", Name: "Cold Coffee"}))
	require.NoError(t, s.DeleteItemType(context.Background(), "1"))
	assert.Equal(t, []string{"PUT /" + MenuIndex + "/_doc/1", "DELETE /" + MenuIndex + "/_doc/1"}, paths)
}

func TestSearchDisabled(t *testing.T) {
	s := NewSearch(nil)
	_, err := s.SearchMenu(context.Background(), "x", 0)
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}
