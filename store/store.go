// Package store is the single source of truth for the session's shopping
// cart and favorites list. Every mutation rewrites the matching local
// storage slot; the in-memory state stays authoritative when persistence
// fails, so a full disk or unreadable slot never breaks the session.
package store

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"go-storefront/localstore"
	"go-storefront/models"
)

// Theme values persisted under the theme slot.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store holds the cart and favorites for one storefront session.
type Store struct {
	mu        sync.Mutex
	storage   localstore.Storage
	log       *logrus.Logger
	cart      []models.CartLine
	favorites []models.FavoriteEntry
}

// New creates a Store rehydrated from the given storage. Absent, unparsable
// or non-array slots reset the matching collection to empty; rehydration
// never fails.
func New(storage localstore.Storage, log *logrus.Logger) *Store {
	return &Store{
		storage:   storage,
		log:       log,
		cart:      loadCart(storage),
		favorites: loadFavorites(storage),
	}
}

func loadCart(storage localstore.Storage) []models.CartLine {
	raw, err := storage.Get(localstore.KeyCart)
	if err != nil {
		return []models.CartLine{}
	}
	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return []models.CartLine{}
	}
	// drop any persisted line that violates the quantity floor
	valid := make([]models.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity >= 1 {
			valid = append(valid, l)
		}
	}
	return valid
}

func loadFavorites(storage localstore.Storage) []models.FavoriteEntry {
	raw, err := storage.Get(localstore.KeyFavorites)
	if err != nil {
		return []models.FavoriteEntry{}
	}
	var favorites []models.FavoriteEntry
	if err := json.Unmarshal(raw, &favorites); err != nil || favorites == nil {
		return []models.FavoriteEntry{}
	}
	return favorites
}

// AddToCart merges a line into the cart by (ProductID, SelectedSize),
// incrementing the existing line's quantity or appending a new line at the
// end. Quantities below 1 are treated as 1.
func (s *Store) AddToCart(line models.CartLine, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = mergeLine(s.cart, line, qty)
	s.flushCart()
}

// RemoveCartItem deletes the line matching the composite (productID, size)
// key. Removing an absent line is a no-op.
func (s *Store) RemoveCartItem(productID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = dropLine(s.cart, productID, size)
	s.flushCart()
}

// ClearCart empties the cart and its persisted slot.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = []models.CartLine{}
	s.flushCart()
}

// AddFavorite records a liked product; adding an existing favorite is a
// no-op, so the list stays a set keyed by ProductID.
func (s *Store) AddFavorite(entry models.FavoriteEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favorites = addEntry(s.favorites, entry)
	s.flushFavorites()
}

// RemoveFavItem deletes the favorite with the given ProductID, if any.
func (s *Store) RemoveFavItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favorites = dropEntry(s.favorites, productID)
	s.flushFavorites()
}

// ToggleFavorite adds the product when absent and removes it when present.
// It reports whether the product is a favorite afterwards.
func (s *Store) ToggleFavorite(entry models.FavoriteEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.favorites {
		if f.ProductID == entry.ProductID {
			s.favorites = dropEntry(s.favorites, entry.ProductID)
			s.flushFavorites()
			return false
		}
	}
	s.favorites = addEntry(s.favorites, entry)
	s.flushFavorites()
	return true
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// Favorites returns a copy of the favorites in insertion order.
func (s *Store) Favorites() []models.FavoriteEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.FavoriteEntry, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// CartCount returns the total quantity across all cart lines.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.cart {
		total += l.Quantity
	}
	return total
}

// CartLines returns the number of distinct (product, size) lines.
func (s *Store) CartLines() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart)
}

// FavoriteCount returns the number of favorites.
func (s *Store) FavoriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.favorites)
}

// IsFavorite reports whether the product is in the favorites list.
func (s *Store) IsFavorite(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.favorites {
		if f.ProductID == productID {
			return true
		}
	}
	return false
}

// Theme returns the persisted theme, defaulting to light.
func (s *Store) Theme() string {
	raw, err := s.storage.Get(localstore.KeyTheme)
	if err != nil {
		return ThemeLight
	}
	if theme := string(raw); theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme persists the theme; unknown values fall back to light.
func (s *Store) SetTheme(theme string) {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	if err := s.storage.Set(localstore.KeyTheme, []byte(theme)); err != nil {
		s.log.WithError(err).Debug("persisting theme failed")
	}
}

// flushCart and flushFavorites rewrite the full collection after a
// mutation. Write failures are swallowed: the session keeps running on the
// in-memory state.
func (s *Store) flushCart() {
	data, err := json.Marshal(s.cart)
	if err != nil {
		s.log.WithError(err).Debug("encoding cart failed")
		return
	}
	if err := s.storage.Set(localstore.KeyCart, data); err != nil {
		s.log.WithError(err).Debug("persisting cart failed")
	}
}

func (s *Store) flushFavorites() {
	data, err := json.Marshal(s.favorites)
	if err != nil {
		s.log.WithError(err).Debug("encoding favorites failed")
		return
	}
	if err := s.storage.Set(localstore.KeyFavorites, data); err != nil {
		s.log.WithError(err).Debug("persisting favorites failed")
	}
}
