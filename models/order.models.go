package models

// CheckoutItem is one ordered product on the checkout wire format. The
// remote order API accepts no size per item.
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the body posted to the remote checkout endpoint.
type CheckoutRequest struct {
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
	CustomerPhone string         `json:"customerPhone"`
	AddressLine1  string         `json:"addressLine1"`
	AddressLine2  string         `json:"addressLine2"`
	City          string         `json:"city"`
	Notes         string         `json:"notes"`
	PaymentMethod string         `json:"paymentMethod"`
	Items         []CheckoutItem `json:"items"`
}

// OrderItem is one line of a placed order as echoed back by the API.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand,omitempty"`
	Size      string  `json:"size,omitempty"`
}

// Order represents a placed order returned by the remote checkout API.
type Order struct {
	ID            string      `json:"_id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	AddressLine1  string      `json:"addressLine1"`
	City          string      `json:"city"`
	Notes         string      `json:"notes"`
	PaymentMethod string      `json:"paymentMethod"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
}
