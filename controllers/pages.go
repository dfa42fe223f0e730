package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"go-storefront/catalog"
	"go-storefront/quickadd"
	"go-storefront/store"
	"go-storefront/utils"
	"go-storefront/views"
)

// featuredCount caps the home page product grid.
const featuredCount = 4

// PageController renders the storefront's navigation pages.
type PageController struct {
	Catalog *catalog.Client
	Store   *store.Store
	Flow    *quickadd.Flow
	Views   *views.Renderer
	Log     *logrus.Logger
}

// NewPageController creates a new PageController.
func NewPageController(c *catalog.Client, st *store.Store, flow *quickadd.Flow, v *views.Renderer, log *logrus.Logger) *PageController {
	return &PageController{Catalog: c, Store: st, Flow: flow, Views: v, Log: log}
}

// Home renders the landing page with featured products.
func (pc *PageController) Home(w http.ResponseWriter, r *http.Request) {
	page := basePage(pc.Store, pc.Flow, "Home", r)

	products, err := pc.Catalog.ListProducts(r.Context(), catalog.Filter{})
	if err != nil {
		pc.Log.WithError(err).Warn("loading featured products failed")
		page.Error = "Could not load products."
	}
	if len(products) > featuredCount {
		products = products[:featuredCount]
	}

	page.Data = productCards(pc.Store, products)
	pc.Views.Render(w, "home", page)
}

// listingFilter builds a catalog filter from the listing page query.
func listingFilter(r *http.Request) catalog.Filter {
	q := r.URL.Query()
	var filter catalog.Filter
	switch q.Get("sex") {
	case "men", "women", "unisex":
		filter.Sex = q.Get("sex")
	}
	filter.Brand = q.Get("brand")
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil && v > 0 {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil && v > 0 {
		filter.MaxPrice = v
	}
	return filter
}

// Products renders the listing page, filtered by the query string.
func (pc *PageController) Products(w http.ResponseWriter, r *http.Request) {
	page := basePage(pc.Store, pc.Flow, "Shop", r)
	filter := listingFilter(r)

	products, err := pc.Catalog.ListProducts(r.Context(), filter)
	if err != nil {
		pc.Log.WithError(err).Warn("loading products failed")
		page.Error = "Could not load products."
	}

	page.Data = views.ProductsView{
		Cards:  productCards(pc.Store, products),
		Filter: filter.Sex,
		Brand:  filter.Brand,
	}
	pc.Views.Render(w, "products", page)
}

// ProductDetail renders a single product page by slug.
func (pc *PageController) ProductDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := pc.Catalog.ProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		pc.Log.WithError(err).Warn("loading product failed")
		http.Redirect(w, r, withError("/products", "Could not load product"), http.StatusSeeOther)
		return
	}

	sizes := product.Sizes
	if len(sizes) == 0 {
		sizes = []string{"50ml", "100ml"}
	}

	page := basePage(pc.Store, pc.Flow, product.Name, r)
	page.Data = views.ProductDetailView{
		Card: views.ProductCard{
			Product:    *product,
			Slug:       utils.Slugify(product.Name),
			PriceLabel: utils.FormatCents(utils.Cents(product.Price)),
			Favorite:   pc.Store.IsFavorite(product.ID),
		},
		Sizes: sizes,
	}
	pc.Views.Render(w, "product", page)
}

// Success renders the order confirmation page.
func (pc *PageController) Success(w http.ResponseWriter, r *http.Request) {
	page := basePage(pc.Store, pc.Flow, "Order placed", r)
	pc.Views.Render(w, "success", page)
}

// Login renders the sign-in stub.
func (pc *PageController) Login(w http.ResponseWriter, r *http.Request) {
	page := basePage(pc.Store, pc.Flow, "Sign in", r)
	pc.Views.Render(w, "login", page)
}

// LoginSubmit is a stub; there is no account system behind the form.
func (pc *PageController) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, withNotice("/auth/login", "Sign-in is not available yet"), http.StatusSeeOther)
}

// ToggleTheme flips the persisted theme and returns to the previous page.
func (pc *PageController) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := store.ThemeDark
	if pc.Store.Theme() == store.ThemeDark {
		next = store.ThemeLight
	}
	pc.Store.SetTheme(next)
	http.Redirect(w, r, backTarget(r, "/"), http.StatusSeeOther)
}

// Dashboard renders the admin landing page.
func (pc *PageController) Dashboard(w http.ResponseWriter, r *http.Request) {
	productCount := 0
	if products, err := pc.Catalog.ListProducts(r.Context(), catalog.Filter{}); err == nil {
		productCount = len(products)
	} else {
		pc.Log.WithError(err).Warn("loading dashboard product count failed")
	}

	page := basePage(pc.Store, pc.Flow, "Dashboard", r)
	page.Data = views.DashboardView{
		ProductCount: productCount,
		CartLines:    pc.Store.CartLines(),
		Favorites:    pc.Store.FavoriteCount(),
	}
	pc.Views.Render(w, "dashboard", page)
}

// DashboardProducts renders the admin product table.
func (pc *PageController) DashboardProducts(w http.ResponseWriter, r *http.Request) {
	page := basePage(pc.Store, pc.Flow, "Products", r)

	products, err := pc.Catalog.ListProducts(r.Context(), catalog.Filter{})
	if err != nil {
		pc.Log.WithError(err).Warn("loading products failed")
		page.Error = "Could not load products."
	}

	page.Data = productCards(pc.Store, products)
	pc.Views.Render(w, "dashboard_products", page)
}

// DashboardAddProduct renders the add-product stub form.
func (pc *PageController) DashboardAddProduct(w http.ResponseWriter, r *http.Request) {
	page := basePage(pc.Store, pc.Flow, "Add product", r)
	pc.Views.Render(w, "dashboard_add", page)
}

// DashboardAddProductSubmit is a stub; product management lives in the
// remote catalog system.
func (pc *PageController) DashboardAddProductSubmit(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, withNotice("/dashboard/products", "Product management is handled by the remote catalog"), http.StatusSeeOther)
}
