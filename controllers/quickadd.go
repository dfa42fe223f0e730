package controllers

import (
	"errors"
	"net/http"

	"go-storefront/catalog"
	"go-storefront/quickadd"
	"go-storefront/store"
)

// QuickAddController drives the size and quantity selection drawer.
type QuickAddController struct {
	Flow    *quickadd.Flow
	Store   *store.Store
	Catalog *catalog.Client
}

// NewQuickAddController creates a new QuickAddController.
func NewQuickAddController(flow *quickadd.Flow, st *store.Store, c *catalog.Client) *QuickAddController {
	return &QuickAddController{Flow: flow, Store: st, Catalog: c}
}

// Open fetches the posted product and opens the drawer on it.
func (qc *QuickAddController) Open(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	back := backTarget(r, "/products")

	product, err := qc.Catalog.ProductBySlug(r.Context(), r.PostFormValue("slug"))
	if err != nil {
		message := "Could not load product"
		if errors.Is(err, catalog.ErrNotFound) {
			message = "Product not found"
		}
		http.Redirect(w, r, withError(back, message), http.StatusSeeOther)
		return
	}

	qc.Flow.Open(*product)
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// SetSize selects a size inside the open drawer.
func (qc *QuickAddController) SetSize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	qc.Flow.SetSize(r.PostFormValue("size"))
	http.Redirect(w, r, backTarget(r, "/products"), http.StatusSeeOther)
}

// SetQuantity steps or sets the quantity, clamped on every change.
func (qc *QuickAddController) SetQuantity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	switch r.PostFormValue("action") {
	case "inc":
		qc.Flow.Increment()
	case "dec":
		qc.Flow.Decrement()
	default:
		qc.Flow.SetQuantityInput(r.PostFormValue("qty"))
	}
	http.Redirect(w, r, backTarget(r, "/products"), http.StatusSeeOther)
}

// Confirm adds the current selection to the cart and closes the drawer.
func (qc *QuickAddController) Confirm(w http.ResponseWriter, r *http.Request) {
	back := backTarget(r, "/products")
	if qc.Flow.Confirm(qc.Store) {
		back = withNotice(back, "Added to cart")
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// Close discards the selection.
func (qc *QuickAddController) Close(w http.ResponseWriter, r *http.Request) {
	qc.Flow.Close()
	http.Redirect(w, r, backTarget(r, "/products"), http.StatusSeeOther)
}
