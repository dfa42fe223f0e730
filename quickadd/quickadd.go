// Package quickadd implements the size and quantity selection flow shown
// before a product goes into the cart. The flow is transient session state:
// it never persists and holds at most one open selection.
package quickadd

import (
	"strconv"
	"strings"
	"sync"

	"go-storefront/models"
	"go-storefront/store"
	"go-storefront/utils"
)

// Quantity bounds enforced on every change, including direct numeric entry.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// fallbackSizes is offered when a product declares no sizes of its own.
var fallbackSizes = []string{"50ml", "100ml"}

// Flow is the drawer's selection state: closed, or open on one product with
// a chosen size and quantity.
type Flow struct {
	mu       sync.Mutex
	product  *models.Product
	sizes    []string
	size     string
	quantity int
}

// NewFlow returns a closed flow.
func NewFlow() *Flow {
	return &Flow{}
}

// Open starts a selection for the product: first declared size (or the
// fallback pair) and quantity 1.
func (f *Flow) Open(p models.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.product = &p
	f.sizes = p.Sizes
	if len(f.sizes) == 0 {
		f.sizes = fallbackSizes
	}
	f.size = f.sizes[0]
	f.quantity = MinQuantity
}

// Close discards the current selection.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Flow) reset() {
	f.product = nil
	f.sizes = nil
	f.size = ""
	f.quantity = 0
}

// IsOpen reports whether a selection is in progress.
func (f *Flow) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.product != nil
}

// Product returns the product under selection, if the flow is open.
func (f *Flow) Product() (models.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.product == nil {
		return models.Product{}, false
	}
	return *f.product, true
}

// Sizes returns the selectable size labels.
func (f *Flow) Sizes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.sizes))
	copy(out, f.sizes)
	return out
}

// Size returns the currently selected size.
func (f *Flow) Size() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size
}

// Quantity returns the currently selected quantity.
func (f *Flow) Quantity() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quantity
}

// SetSize selects a size; values outside the product's size list are
// ignored.
func (f *Flow) SetSize(size string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.sizes {
		if s == size {
			f.size = size
			return
		}
	}
}

// SetQuantity clamps the quantity to [MinQuantity, MaxQuantity].
func (f *Flow) SetQuantity(qty int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setQuantityLocked(qty)
}

// SetQuantityInput applies a direct numeric entry. Non-numeric input keeps
// the current value; numeric input is clamped like any other change.
func (f *Flow) SetQuantityInput(raw string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return
	}
	f.SetQuantity(n)
}

// Increment steps the quantity up within bounds.
func (f *Flow) Increment() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setQuantityLocked(f.quantity + 1)
}

// Decrement steps the quantity down within bounds.
func (f *Flow) Decrement() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setQuantityLocked(f.quantity - 1)
}

func (f *Flow) setQuantityLocked(qty int) {
	if f.product == nil {
		return
	}
	if qty < MinQuantity {
		qty = MinQuantity
	}
	if qty > MaxQuantity {
		qty = MaxQuantity
	}
	f.quantity = qty
}

// Confirm adds the current selection to the cart and closes the flow. It
// reports whether anything was added; confirming a closed flow is a no-op.
func (f *Flow) Confirm(st *store.Store) bool {
	f.mu.Lock()
	if f.product == nil {
		f.mu.Unlock()
		return false
	}
	p := *f.product
	line := models.CartLine{
		ProductID:    p.ID,
		Slug:         utils.Slugify(p.Name),
		Name:         p.Name,
		PriceCents:   utils.Cents(p.Price),
		Image:        p.Image,
		Sizes:        p.Sizes,
		SelectedSize: f.size,
	}
	qty := f.quantity
	f.reset()
	f.mu.Unlock()

	st.AddToCart(line, qty)
	return true
}
