package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/catalog"
	"go-storefront/checkout"
	"go-storefront/controllers"
	"go-storefront/localstore"
	"go-storefront/models"
	"go-storefront/quickadd"
	"go-storefront/routes"
	"go-storefront/store"
	"go-storefront/views"
)

type testApp struct {
	router *mux.Router
	store  *store.Store
	flow   *quickadd.Flow
}

// newTestApp wires the full controller stack against a fake remote API.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			json.NewEncoder(w).Encode([]models.Product{
				{ID: "p1", Name: "Amber No.1", Description: "Warm amber blend", Price: 10, Image: "", Sizes: []string{"50ml", "100ml"}},
				{ID: "p2", Name: "Oud Royal", Price: 15, Sizes: []string{"100ml"}, Sex: "men"},
			})
		case "/checkout":
			json.NewEncoder(w).Encode(models.Order{ID: "order-1", Status: "pending"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(api.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	st := store.New(localstore.NewMemoryStorage(), log)
	flow := quickadd.NewFlow()
	catalogClient := catalog.NewClient(api.URL, log)
	checkoutService := checkout.NewService(api.URL, st, log)
	renderer, err := views.New(log)
	require.NoError(t, err)

	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		controllers.NewPageController(catalogClient, st, flow, renderer, log),
		controllers.NewCartController(st, flow, renderer),
		controllers.NewQuickAddController(flow, st, catalogClient),
		controllers.NewCheckoutController(checkoutService, st, flow, renderer, log),
	)
	return &testApp{router: router, store: st, flow: flow}
}

func (a *testApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestHomePageRendersProducts(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Amber No.1")
	assert.Contains(t, rec.Body.String(), "$10.00")
}

func TestProductsPageFilters(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/products?sex=men")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Shop")
}

func TestProductDetailBySlug(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/Product/amber-no-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Warm amber blend")

	rec = app.get(t, "/Product/no-such-product")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddToCartAndViewCart(t *testing.T) {
	app := newTestApp(t)

	rec := app.post(t, "/cart/add", url.Values{
		"product_id": {"p1"},
		"slug":       {"amber-no-1"},
		"name":       {"Amber No.1"},
		"price":      {"10"},
		"sizes":      {"50ml", "100ml"},
		"size":       {"50ml"},
		"qty":        {"2"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	cart := app.store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, int64(1000), cart[0].PriceCents)

	page := app.get(t, "/cart")
	assert.Contains(t, page.Body.String(), "Amber No.1")
	assert.Contains(t, page.Body.String(), "$24.00") // 2×$10 + $4 shipping
}

func TestRemoveCartItem(t *testing.T) {
	app := newTestApp(t)
	app.store.AddToCart(models.CartLine{ProductID: "p1", SelectedSize: "50ml", PriceCents: 1000}, 1)
	app.store.AddToCart(models.CartLine{ProductID: "p1", SelectedSize: "100ml", PriceCents: 1000}, 1)

	rec := app.post(t, "/cart/remove", url.Values{
		"product_id": {"p1"},
		"size":       {"50ml"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	cart := app.store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "100ml", cart[0].SelectedSize)
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	app := newTestApp(t)
	form := url.Values{
		"product_id": {"p1"},
		"slug":       {"amber-no-1"},
		"name":       {"Amber No.1"},
		"price":      {"10"},
	}

	app.post(t, "/favorites/toggle", form)
	assert.True(t, app.store.IsFavorite("p1"))

	app.post(t, "/favorites/toggle", form)
	assert.False(t, app.store.IsFavorite("p1"))
}

func TestQuickAddFlowThroughHandlers(t *testing.T) {
	app := newTestApp(t)

	app.post(t, "/quickadd/open", url.Values{"slug": {"amber-no-1"}})
	require.True(t, app.flow.IsOpen())

	// drawer is rendered on subsequent pages
	page := app.get(t, "/products")
	assert.Contains(t, page.Body.String(), "Quick add to cart")

	app.post(t, "/quickadd/size", url.Values{"size": {"100ml"}})
	app.post(t, "/quickadd/quantity", url.Values{"action": {"inc"}})
	app.post(t, "/quickadd/quantity", url.Values{"action": {"set"}, "qty": {"4"}})
	app.post(t, "/quickadd/confirm", nil)

	assert.False(t, app.flow.IsOpen())
	cart := app.store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "100ml", cart[0].SelectedSize)
	assert.Equal(t, 4, cart[0].Quantity)
}

func TestQuickAddOpenUnknownProduct(t *testing.T) {
	app := newTestApp(t)

	rec := app.post(t, "/quickadd/open", url.Values{"slug": {"missing"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
	assert.False(t, app.flow.IsOpen())
}

func TestCheckoutValidationRerendersForm(t *testing.T) {
	app := newTestApp(t)
	app.store.AddToCart(models.CartLine{ProductID: "p1", SelectedSize: "50ml", PriceCents: 1000}, 1)

	rec := app.post(t, "/checkout", url.Values{
		"fullName": {"Ada"},
		"email":    {"bad-email"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email format")
	assert.Contains(t, rec.Body.String(), "Phone is required")
	assert.Equal(t, 1, app.store.CartLines())
}

func TestCheckoutSuccessRedirectsAndClearsCart(t *testing.T) {
	app := newTestApp(t)
	app.store.AddToCart(models.CartLine{ProductID: "p1", SelectedSize: "50ml", PriceCents: 1000}, 2)

	rec := app.post(t, "/checkout", url.Values{
		"fullName": {"Ada Lovelace"},
		"email":    {"ada@example.com"},
		"phone":    {"555-0100"},
		"city":     {"London"},
		"address":  {"12 Analytical Lane"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/success")
	assert.Empty(t, app.store.Cart())
}

func TestCheckoutEmptyCart(t *testing.T) {
	app := newTestApp(t)

	rec := app.post(t, "/checkout", url.Values{
		"fullName": {"Ada Lovelace"},
		"email":    {"ada@example.com"},
		"phone":    {"555-0100"},
		"city":     {"London"},
		"address":  {"12 Analytical Lane"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your cart is empty.")
}

func TestThemeToggle(t *testing.T) {
	app := newTestApp(t)

	rec := app.post(t, "/theme", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, store.ThemeDark, app.store.Theme())

	app.post(t, "/theme", nil)
	assert.Equal(t, store.ThemeLight, app.store.Theme())
}

func TestDashboardPages(t *testing.T) {
	app := newTestApp(t)
	app.store.AddFavorite(models.FavoriteEntry{ProductID: "p1", Name: "Amber No.1"})

	rec := app.get(t, "/dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.get(t, "/dashboard/products")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oud Royal")
}
