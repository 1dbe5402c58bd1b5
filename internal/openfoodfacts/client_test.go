package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-track/fridge-service/pkg/logger"
)

func testClient(productURL, searchURL string) *Client {
	return NewClient(productURL, searchURL, logger.NewLogger("error"))
}

func TestFetchByBarcode_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/4901234567894.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"code": "4901234567894",
				"product_name_ja": "牛乳",
				"product_name": "Milk",
				"image_url": "https://images.example.com/milk.jpg",
				"categories": "Dairy"
			}
		}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL, srv.URL)

	candidate, err := client.FetchByBarcode(context.Background(), "4901234567894")
	require.NoError(t, err)
	assert.Equal(t, "牛乳", candidate.Name)
	assert.Equal(t, "4901234567894", candidate.Code)
	assert.Equal(t, "https://images.example.com/milk.jpg", candidate.Image)
	assert.Equal(t, "Dairy", candidate.Categories)
}

func TestFetchByBarcode_NameFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"code": "111",
				"product_name": "Generic Milk",
				"image_front_url": "https://images.example.com/front.jpg"
			}
		}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL, srv.URL)

	candidate, err := client.FetchByBarcode(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, "Generic Milk", candidate.Name)
	assert.Equal(t, "https://images.example.com/front.jpg", candidate.Image)
}

func TestFetchByBarcode_UnknownName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 1, "product": {"code": "111"}}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL, srv.URL)

	candidate, err := client.FetchByBarcode(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, "名称不明", candidate.Name)
}

func TestFetchByBarcode_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL, srv.URL)

	candidate, err := client.FetchByBarcode(context.Background(), "0000000000000")
	assert.Nil(t, candidate)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearchByKeyword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "みかん", q.Get("search_terms"))
		assert.Equal(t, "1", q.Get("search_simple"))
		assert.Equal(t, "process", q.Get("action"))
		assert.Equal(t, "1", q.Get("json"))
		assert.Equal(t, "24", q.Get("page_size"))

		w.Write([]byte(`{
			"products": [
				{"code": "111", "product_name_ja": "みかん"},
				{"product_name": "Mandarin"}
			]
		}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL, srv.URL)

	candidates, err := client.SearchByKeyword(context.Background(), "みかん")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "みかん", candidates[0].Name)
	assert.Equal(t, "111", candidates[0].Code)
	assert.Equal(t, "Mandarin", candidates[1].Name)
	assert.Empty(t, candidates[1].Code)
}

func TestGet_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"status": 1, "product": {"code": "111", "product_name": "Milk"}}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL, srv.URL)

	candidate, err := client.FetchByBarcode(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, "Milk", candidate.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGet_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := testClient(srv.URL, srv.URL)

	_, err := client.FetchByBarcode(context.Background(), "111")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
