// Package checkout converts the session cart into a remote order: it
// computes totals, validates the shipping form and submits the order,
// clearing the cart once the remote API accepts it.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"go-storefront/models"
	"go-storefront/store"
)

const (
	// ShippingFeeCents is the flat delivery fee applied to any non-empty cart.
	ShippingFeeCents int64 = 400

	// PaymentMethodCOD is the only payment method the storefront submits.
	PaymentMethodCOD = "COD"
)

// ErrEmptyCart blocks submission before anything reaches the remote API.
var ErrEmptyCart = errors.New("cart is empty")

// emailPattern requires a TLD on top of the basic email check, which alone
// accepts bare local domains.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

var validate = validator.New()

// Form carries the shipping and contact fields from the checkout page.
type Form struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	City     string `validate:"required"`
	Address  string `validate:"required"`
	Notes    string
}

// FieldErrors maps a form field to its inline validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	return "checkout form has invalid fields"
}

var fieldLabels = map[string]string{
	"FullName": "Full Name",
	"Email":    "Email",
	"Phone":    "Phone",
	"City":     "City",
	"Address":  "Address",
}

// Validate checks the form and reports per-field messages. A nil result
// means the form may be submitted.
func Validate(form Form) FieldErrors {
	errs := FieldErrors{}
	if err := validate.Struct(form); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			for _, fe := range invalid {
				switch fe.Tag() {
				case "required":
					errs[fe.Field()] = fieldLabels[fe.Field()] + " is required"
				case "email":
					errs[fe.Field()] = "Invalid email format"
				}
			}
		}
	}
	if _, seen := errs["Email"]; !seen && !emailPattern.MatchString(form.Email) {
		errs["Email"] = "Email must have a valid TLD"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Totals holds the order amounts in integer cents.
type Totals struct {
	SubtotalCents int64
	ShippingCents int64
	TotalCents    int64
}

// ComputeTotals sums the cart lines and applies the flat shipping fee to a
// non-empty cart.
func ComputeTotals(lines []models.CartLine) Totals {
	var t Totals
	for _, l := range lines {
		t.SubtotalCents += l.PriceCents * int64(l.Quantity)
	}
	if len(lines) > 0 {
		t.ShippingCents = ShippingFeeCents
	}
	t.TotalCents = t.SubtotalCents + t.ShippingCents
	return t
}

// APIError is a checkout rejection from the remote order system. Message is
// shown to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("checkout API returned status %d: %s", e.StatusCode, e.Message)
}

// Service submits orders against the remote checkout endpoint.
type Service struct {
	baseURL    string
	httpClient *http.Client
	store      *store.Store
	log        *logrus.Logger
}

// NewService creates a checkout service bound to the session store.
func NewService(baseURL string, st *store.Store, log *logrus.Logger) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		store: st,
		log:   log,
	}
}

// Totals returns the amounts for the current cart.
func (s *Service) Totals() Totals {
	return ComputeTotals(s.store.Cart())
}

// PlaceOrder validates the form and submits the cart as an order. On
// success the in-memory and persisted cart are cleared; on any failure the
// cart is left untouched so the user may retry. Returns ErrEmptyCart,
// FieldErrors, *APIError or a wrapped transport error.
func (s *Service) PlaceOrder(ctx context.Context, form Form) (*models.Order, error) {
	lines := s.store.Cart()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if errs := Validate(form); errs != nil {
		return nil, errs
	}

	items := make([]models.CheckoutItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.CheckoutItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	reqBody := models.CheckoutRequest{
		CustomerName:  form.FullName,
		CustomerEmail: form.Email,
		CustomerPhone: form.Phone,
		AddressLine1:  form.Address,
		AddressLine2:  "",
		City:          form.City,
		Notes:         form.Notes,
		PaymentMethod: PaymentMethodCOD,
		Items:         items,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/checkout", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("placing order: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading checkout response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiResp struct {
			Message string `json:"message"`
		}
		json.Unmarshal(body, &apiResp)
		msg := apiResp.Message
		if msg == "" {
			msg = "Failed to place order"
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var order models.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("decoding placed order: %w", err)
	}

	s.store.ClearCart()
	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"items":    len(order.Items),
		"total":    order.Total,
	}).Info("order placed")
	return &order, nil
}
