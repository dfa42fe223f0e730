package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"go-storefront/models"
	"go-storefront/quickadd"
	"go-storefront/store"
	"go-storefront/utils"
	"go-storefront/views"
)

// basePage assembles the layout envelope shared by every page: theme,
// nav counts, notices from the query string and the quick-add drawer state.
func basePage(st *store.Store, flow *quickadd.Flow, title string, r *http.Request) views.Page {
	page := views.Page{
		Title:         title,
		Theme:         st.Theme(),
		CartCount:     st.CartCount(),
		FavoriteCount: st.FavoriteCount(),
		Notice:        r.URL.Query().Get("notice"),
		Error:         r.URL.Query().Get("error"),
	}
	if p, ok := flow.Product(); ok {
		page.QuickAdd = &views.QuickAdd{
			Product:    p,
			Slug:       utils.Slugify(p.Name),
			PriceLabel: utils.FormatCents(utils.Cents(p.Price)),
			Sizes:      flow.Sizes(),
			Size:       flow.Size(),
			Quantity:   flow.Quantity(),
		}
	}
	return page
}

// backTarget returns the referring page's path, or the fallback when the
// request carries no usable referer.
func backTarget(r *http.Request, fallback string) string {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return fallback
	}
	return u.Path
}

// withNotice appends a notice query parameter to a redirect target.
func withNotice(target, notice string) string {
	return target + "?notice=" + url.QueryEscape(notice)
}

// withError appends an error query parameter to a redirect target.
func withError(target, message string) string {
	return target + "?error=" + url.QueryEscape(message)
}

// productFromForm rebuilds the product reference carried by a mutation
// form's hidden fields. Call after ParseForm.
func productFromForm(r *http.Request) models.Product {
	price, _ := strconv.ParseFloat(r.PostFormValue("price"), 64)
	return models.Product{
		ID:    r.PostFormValue("product_id"),
		Name:  r.PostFormValue("name"),
		Price: price,
		Image: r.PostFormValue("image"),
		Sizes: r.PostForm["sizes"],
	}
}

// productCards prepares products for a grid, marking favorites.
func productCards(st *store.Store, products []models.Product) []views.ProductCard {
	cards := make([]views.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, views.ProductCard{
			Product:    p,
			Slug:       utils.Slugify(p.Name),
			PriceLabel: utils.FormatCents(utils.Cents(p.Price)),
			Favorite:   st.IsFavorite(p.ID),
		})
	}
	return cards
}
