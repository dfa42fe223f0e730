package models

// CartLine represents one purchasable line in the cart. Two lines are the
// same line if and only if both ProductID and SelectedSize match.
type CartLine struct {
	ProductID    string   `json:"product_id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	PriceCents   int64    `json:"price_cents"`
	Image        string   `json:"image"`
	Sizes        []string `json:"sizes,omitempty"`
	SelectedSize string   `json:"selected_size"`
	Quantity     int      `json:"quantity"`
}

// FavoriteEntry represents a liked product. Favorites are a set keyed by
// ProductID; an entry carries no size or quantity.
type FavoriteEntry struct {
	ProductID  string   `json:"product_id"`
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	PriceCents int64    `json:"price_cents"`
	Image      string   `json:"image"`
	Sizes      []string `json:"sizes,omitempty"`
}
