package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode([]models.Product{
			{ID: "p1", Name: "Amber No.1", Price: 129.99, Sizes: []string{"50ml", "100ml"}},
			{ID: "p2", Name: "Oud Royal", Price: 89, Sex: "men"},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, testLogger())
	products, err := c.ListProducts(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Amber No.1", products[0].Name)
	assert.Equal(t, []string{"50ml", "100ml"}, products[0].Sizes)
}

func TestListProductsFilterQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "women", q.Get("sex"))
		assert.Equal(t, "Recreate", q.Get("brand"))
		assert.Equal(t, "50", q.Get("minPrice"))
		assert.Equal(t, "150.5", q.Get("maxPrice"))
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	c := NewClient(server.URL, testLogger())
	_, err := c.ListProducts(context.Background(), Filter{
		Sex:      "women",
		Brand:    "Recreate",
		MinPrice: 50,
		MaxPrice: 150.5,
	})
	require.NoError(t, err)
}

func TestListProductsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(server.URL, testLogger())
	_, err := c.ListProducts(context.Background(), Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestListProductsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	c := NewClient(server.URL, testLogger())
	_, err := c.ListProducts(context.Background(), Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding products")
}

func TestProductBySlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Product{
			{ID: "p1", Name: "Amber No.1 — Eau de Parfum"},
			{ID: "p2", Name: "Oud Royal"},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, testLogger())

	product, err := c.ProductBySlug(context.Background(), "amber-no-1-eau-de-parfum")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)

	_, err = c.ProductBySlug(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
