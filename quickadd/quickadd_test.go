package quickadd

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/localstore"
	"go-storefront/models"
	"go-storefront/store"
)

func amber() models.Product {
	return models.Product{
		ID:    "p1",
		Name:  "Amber No.1",
		Price: 129.99,
		Image: "https://cdn.example.com/amber.webp",
		Sizes: []string{"50ml", "100ml", "150ml"},
	}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return store.New(localstore.NewMemoryStorage(), log)
}

func TestOpenDefaults(t *testing.T) {
	f := NewFlow()
	f.Open(amber())

	assert.True(t, f.IsOpen())
	assert.Equal(t, "50ml", f.Size())
	assert.Equal(t, 1, f.Quantity())
	assert.Equal(t, []string{"50ml", "100ml", "150ml"}, f.Sizes())
}

func TestOpenFallbackSizes(t *testing.T) {
	p := amber()
	p.Sizes = nil

	f := NewFlow()
	f.Open(p)

	assert.Equal(t, []string{"50ml", "100ml"}, f.Sizes())
	assert.Equal(t, "50ml", f.Size())
}

func TestSetSizeRejectsUnknownValues(t *testing.T) {
	f := NewFlow()
	f.Open(amber())

	f.SetSize("100ml")
	assert.Equal(t, "100ml", f.Size())

	f.SetSize("5L")
	assert.Equal(t, "100ml", f.Size())
}

func TestQuantityClamping(t *testing.T) {
	f := NewFlow()
	f.Open(amber())

	f.SetQuantity(0)
	assert.Equal(t, 1, f.Quantity())

	f.SetQuantity(500)
	assert.Equal(t, 99, f.Quantity())

	f.Decrement()
	assert.Equal(t, 98, f.Quantity())

	f.SetQuantity(1)
	f.Decrement()
	assert.Equal(t, 1, f.Quantity())

	f.SetQuantity(99)
	f.Increment()
	assert.Equal(t, 99, f.Quantity())
}

func TestQuantityDirectEntry(t *testing.T) {
	f := NewFlow()
	f.Open(amber())

	f.SetQuantityInput("7")
	assert.Equal(t, 7, f.Quantity())

	f.SetQuantityInput("abc")
	assert.Equal(t, 7, f.Quantity())

	f.SetQuantityInput("")
	assert.Equal(t, 7, f.Quantity())

	f.SetQuantityInput("-3")
	assert.Equal(t, 1, f.Quantity())

	f.SetQuantityInput(" 42 ")
	assert.Equal(t, 42, f.Quantity())
}

func TestConfirmAddsToCartAndCloses(t *testing.T) {
	st := newTestStore(t)
	f := NewFlow()
	f.Open(amber())
	f.SetSize("100ml")
	f.SetQuantity(3)

	require.True(t, f.Confirm(st))
	assert.False(t, f.IsOpen())

	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ProductID)
	assert.Equal(t, "amber-no-1", cart[0].Slug)
	assert.Equal(t, "100ml", cart[0].SelectedSize)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, int64(12999), cart[0].PriceCents)
}

func TestConfirmClosedFlowIsNoop(t *testing.T) {
	st := newTestStore(t)
	f := NewFlow()

	assert.False(t, f.Confirm(st))
	assert.Empty(t, st.Cart())
}

func TestCloseDiscardsSelection(t *testing.T) {
	f := NewFlow()
	f.Open(amber())
	f.SetQuantity(5)

	f.Close()

	assert.False(t, f.IsOpen())
	_, ok := f.Product()
	assert.False(t, ok)

	// reopening starts fresh
	f.Open(amber())
	assert.Equal(t, 1, f.Quantity())
}
