package models

// Product represents a catalog product as returned by the remote storefront API.
// Price is a major-unit amount (e.g. 129.99); convert with utils.Cents before
// storing it on a cart line.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Sizes       []string `json:"size"`
	Sex         string   `json:"sex,omitempty"`
	Brand       string   `json:"brand,omitempty"`
}
