// Package views renders the storefront's HTML pages from embedded
// templates. Pages receive prepared view models only; no template reaches
// into the store or the API clients.
package views

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"go-storefront/models"
)

//go:embed templates/*.html
var files embed.FS

// Page is the envelope every template receives.
type Page struct {
	Title         string
	Theme         string
	CartCount     int
	FavoriteCount int
	Notice        string
	Error         string
	QuickAdd      *QuickAdd
	Data          any
}

// QuickAdd carries the open drawer state into the layout.
type QuickAdd struct {
	Product    models.Product
	Slug       string
	PriceLabel string
	Sizes      []string
	Size       string
	Quantity   int
}

// ProductCard is a product prepared for a grid or table.
type ProductCard struct {
	Product    models.Product
	Slug       string
	PriceLabel string
	Favorite   bool
}

// CartLineView is one rendered cart row.
type CartLineView struct {
	Line       models.CartLine
	PriceLabel string
	TotalLabel string
}

// CartView is the cart page model; totals come pre-formatted.
type CartView struct {
	Lines         []CartLineView
	SubtotalLabel string
	ShippingLabel string
	TotalLabel    string
}

// CheckoutView is the checkout page model: the summary plus the form's
// previous values and inline field errors.
type CheckoutView struct {
	Cart        CartView
	FullName    string
	Email       string
	Phone       string
	City        string
	Address     string
	Notes       string
	FieldErrors map[string]string
}

// ProductsView is the listing page model.
type ProductsView struct {
	Cards  []ProductCard
	Filter string
	Brand  string
}

// ProductDetailView is the detail page model.
type ProductDetailView struct {
	Card  ProductCard
	Sizes []string
}

// DashboardView is the admin landing page model.
type DashboardView struct {
	ProductCount int
	CartLines    int
	Favorites    int
}

// Renderer executes embedded page templates.
type Renderer struct {
	tmpl *template.Template
	log  *logrus.Logger
}

// New parses the embedded templates.
func New(log *logrus.Logger) (*Renderer, error) {
	tmpl, err := template.New("views").ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, log: log}, nil
}

// Render writes the named page; render failures are logged, not surfaced,
// since headers are already on the wire.
func (r *Renderer) Render(w http.ResponseWriter, name string, page Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.tmpl.ExecuteTemplate(w, name, page); err != nil {
		r.log.WithError(err).WithField("template", name).Error("rendering page failed")
	}
}
