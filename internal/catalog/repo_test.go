package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	typesCatalog "storefront-main/internal/types/catalog"
	myErr "storefront-main/internal/types/errors"
)

func fakeCatalogBackend(t *testing.T, items map[string]typesCatalog.Item) *HTTPCatalogRepository {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/items", func(w http.ResponseWriter, _ *http.Request) {
		out := make([]typesCatalog.Item, 0, len(items))
		for _, item := range items {
			out = append(out, item)
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(out))
	}).Methods("GET")

	r.HandleFunc("/items/{id}", func(w http.ResponseWriter, req *http.Request) {
		item, ok := items[mux.Vars(req)["id"]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(item))
	}).Methods("GET")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	logger := zaptest.NewLogger(t).Sugar()

	return NewHTTPCatalogRepository(srv.URL, srv.Client(), logger)
}

func TestGetByID(t *testing.T) {
	repo := fakeCatalogBackend(t, map[string]typesCatalog.Item{
		"sku-1": {
			ID:    "sku-1",
			Name:  "Shoe",
			Price: 59.99,
			Stock: 10,
			Variants: []typesCatalog.Variant{
				{ID: "var-9", Color: "red", Size: "42", Price: 59.99, Stock: 3},
			},
		},
	})

	item, err := repo.GetByID(context.Background(), "sku-1")
	assert.NoError(t, err)
	assert.Equal(t, "Shoe", item.Name)
	assert.Len(t, item.Variants, 1)
	assert.Equal(t, "var-9", item.Variants[0].ID)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := fakeCatalogBackend(t, map[string]typesCatalog.Item{})

	_, err := repo.GetByID(context.Background(), "no-such-item")
	assert.ErrorIs(t, err, myErr.ErrNotFound)
}

func TestList(t *testing.T) {
	repo := fakeCatalogBackend(t, map[string]typesCatalog.Item{
		"sku-1": {ID: "sku-1", Name: "Shoe", Price: 59.99},
		"sku-2": {ID: "sku-2", Name: "Hat", Price: 12.50},
	})

	items, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFindVariant(t *testing.T) {
	item := typesCatalog.Item{
		ID: "sku-1",
		Variants: []typesCatalog.Variant{
			{ID: "var-1", Size: "S"},
			{ID: "var-2", Size: "M"},
		},
	}

	v := item.FindVariant("var-2")
	assert.NotNil(t, v)
	assert.Equal(t, "M", v.Size)

	// сравнение только по точному id
	assert.Nil(t, item.FindVariant("VAR-2"))
	assert.Nil(t, item.FindVariant(""))
}
