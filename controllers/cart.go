package controllers

import (
	"net/http"
	"strconv"

	"go-storefront/checkout"
	"go-storefront/models"
	"go-storefront/quickadd"
	"go-storefront/store"
	"go-storefront/utils"
	"go-storefront/views"
)

// CartController handles cart and favorites pages and mutations.
type CartController struct {
	Store *store.Store
	Flow  *quickadd.Flow
	Views *views.Renderer
}

// NewCartController creates a new CartController.
func NewCartController(st *store.Store, flow *quickadd.Flow, v *views.Renderer) *CartController {
	return &CartController{Store: st, Flow: flow, Views: v}
}

// cartView prepares cart lines and totals for rendering.
func cartView(lines []models.CartLine) views.CartView {
	totals := checkout.ComputeTotals(lines)
	view := views.CartView{
		Lines:         make([]views.CartLineView, 0, len(lines)),
		SubtotalLabel: utils.FormatCents(totals.SubtotalCents),
		ShippingLabel: utils.FormatCents(totals.ShippingCents),
		TotalLabel:    utils.FormatCents(totals.TotalCents),
	}
	for _, l := range lines {
		view.Lines = append(view.Lines, views.CartLineView{
			Line:       l,
			PriceLabel: utils.FormatCents(l.PriceCents),
			TotalLabel: utils.FormatCents(l.PriceCents * int64(l.Quantity)),
		})
	}
	return view
}

// ViewCart renders the cart page with totals.
func (cc *CartController) ViewCart(w http.ResponseWriter, r *http.Request) {
	page := basePage(cc.Store, cc.Flow, "Cart", r)
	page.Data = cartView(cc.Store.Cart())
	cc.Views.Render(w, "cart", page)
}

// AddToCart merges the posted product, size and quantity into the cart.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	p := productFromForm(r)
	if p.ID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	size := r.PostFormValue("size")
	if size == "" && len(p.Sizes) > 0 {
		size = p.Sizes[0]
	}
	qty, err := strconv.Atoi(r.PostFormValue("qty"))
	if err != nil {
		qty = 1
	}

	line := models.CartLine{
		ProductID:    p.ID,
		Slug:         r.PostFormValue("slug"),
		Name:         p.Name,
		PriceCents:   utils.Cents(p.Price),
		Image:        p.Image,
		Sizes:        p.Sizes,
		SelectedSize: size,
	}
	cc.Store.AddToCart(line, qty)

	http.Redirect(w, r, withNotice(backTarget(r, "/cart"), "Added to cart"), http.StatusSeeOther)
}

// RemoveCartItem deletes the line matching the posted (product, size) key.
func (cc *CartController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	cc.Store.RemoveCartItem(r.PostFormValue("product_id"), r.PostFormValue("size"))
	http.Redirect(w, r, withNotice("/cart", "Removed from cart"), http.StatusSeeOther)
}

// ViewFavorites renders the favorites page.
func (cc *CartController) ViewFavorites(w http.ResponseWriter, r *http.Request) {
	entries := cc.Store.Favorites()
	cards := make([]views.ProductCard, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, views.ProductCard{
			Product: models.Product{
				ID:    e.ProductID,
				Name:  e.Name,
				Price: float64(e.PriceCents) / 100,
				Image: e.Image,
				Sizes: e.Sizes,
			},
			Slug:       e.Slug,
			PriceLabel: utils.FormatCents(e.PriceCents),
			Favorite:   true,
		})
	}

	page := basePage(cc.Store, cc.Flow, "Favorites", r)
	page.Data = cards
	cc.Views.Render(w, "favorites", page)
}

// ToggleFavorite flips favorite membership for the posted product.
func (cc *CartController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	p := productFromForm(r)
	if p.ID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	entry := models.FavoriteEntry{
		ProductID:  p.ID,
		Slug:       r.PostFormValue("slug"),
		Name:       p.Name,
		PriceCents: utils.Cents(p.Price),
		Image:      p.Image,
		Sizes:      p.Sizes,
	}

	notice := "Removed from favorites"
	if cc.Store.ToggleFavorite(entry) {
		notice = "Added to favorites"
	}
	http.Redirect(w, r, withNotice(backTarget(r, "/favorites"), notice), http.StatusSeeOther)
}

// RemoveFavItem deletes a favorite by product id.
func (cc *CartController) RemoveFavItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	cc.Store.RemoveFavItem(r.PostFormValue("product_id"))
	http.Redirect(w, r, withNotice("/favorites", "Removed from favorites"), http.StatusSeeOther)
}
