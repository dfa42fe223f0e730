package controllers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"go-storefront/checkout"
	"go-storefront/quickadd"
	"go-storefront/store"
	"go-storefront/views"
)

// CheckoutController renders the checkout page and submits orders.
type CheckoutController struct {
	Service *checkout.Service
	Store   *store.Store
	Flow    *quickadd.Flow
	Views   *views.Renderer
	Log     *logrus.Logger
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(svc *checkout.Service, st *store.Store, flow *quickadd.Flow, v *views.Renderer, log *logrus.Logger) *CheckoutController {
	return &CheckoutController{Service: svc, Store: st, Flow: flow, Views: v, Log: log}
}

// Show renders the checkout form with the current order summary.
func (cc *CheckoutController) Show(w http.ResponseWriter, r *http.Request) {
	page := basePage(cc.Store, cc.Flow, "Checkout", r)
	page.Data = views.CheckoutView{Cart: cartView(cc.Store.Cart())}
	cc.Views.Render(w, "checkout", page)
}

// Submit validates the form and places the order. Success clears the cart
// and redirects to the confirmation page; every failure re-renders the form
// with the cart untouched so the user may retry.
func (cc *CheckoutController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	form := checkout.Form{
		FullName: r.PostFormValue("fullName"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		City:     r.PostFormValue("city"),
		Address:  r.PostFormValue("address"),
		Notes:    r.PostFormValue("notes"),
	}

	_, err := cc.Service.PlaceOrder(r.Context(), form)
	if err == nil {
		http.Redirect(w, r, withNotice("/success", "Order placed successfully!"), http.StatusSeeOther)
		return
	}

	view := views.CheckoutView{
		Cart:     cartView(cc.Store.Cart()),
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
		City:     form.City,
		Address:  form.Address,
		Notes:    form.Notes,
	}
	page := basePage(cc.Store, cc.Flow, "Checkout", r)

	var fieldErrs checkout.FieldErrors
	var apiErr *checkout.APIError
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		page.Error = "Your cart is empty."
	case errors.As(err, &fieldErrs):
		view.FieldErrors = fieldErrs
	case errors.As(err, &apiErr):
		page.Error = apiErr.Message
	default:
		cc.Log.WithError(err).Error("checkout submission failed")
		page.Error = "Something went wrong. Please try again."
	}

	page.Data = view
	cc.Views.Render(w, "checkout", page)
}
