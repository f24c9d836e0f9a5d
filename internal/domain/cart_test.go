package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/mrops-br/shopwave-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestCartAddTwiceAggregates(t *testing.T) {
	p := randomProduct()
	p.InStock = true

	cart, err := domain.NewCart().Add(p)
	require.NoError(t, err)
	cart, err = cart.Add(p)
	require.NoError(t, err)

	require.Equal(t, 1, cart.Len())
	line, ok := cart.Line(p.ID)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartInStockScenario(t *testing.T) {
	a := product("A", "Alpha", "10", domain.CategoryHome, 4, true)
	b := product("B", "Bravo", "20", domain.CategoryHome, 4, false)

	cart, err := domain.NewCart().Add(a)
	require.NoError(t, err)
	cart, err = cart.Add(a)
	require.NoError(t, err)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.ItemCount())
	assert.Equal(t, "20.00", cart.Total().StringFixed(2))

	rejected, err := cart.Add(b)
	require.ErrorIs(t, err, domain.ErrProductOutOfStock)
	_, ok := rejected.Line("B")
	assert.False(t, ok)
	assert.Equal(t, 1, rejected.Len())
	assert.Equal(t, 2, rejected.ItemCount())
}

func TestCartLineQuantityLimit(t *testing.T) {
	a := product("A", "Alpha", "10", domain.CategoryHome, 4, true)

	full := mustAdd(t, domain.NewCart(), a).UpdateQuantity("A", domain.MaxLineQuantity)

	rejected, err := full.Add(a)
	require.ErrorIs(t, err, domain.ErrQuantityLimit)
	assert.Equal(t, domain.MaxLineQuantity, rejected.ItemCount())

	clamped := mustAdd(t, domain.NewCart(), a).UpdateQuantity("A", domain.MaxLineQuantity+500)
	assert.Equal(t, domain.MaxLineQuantity, clamped.ItemCount())

	lowered, err := full.UpdateQuantity("A", domain.MaxLineQuantity-1).Add(a)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxLineQuantity, lowered.ItemCount())
}

func TestCartUpdateQuantity(t *testing.T) {
	a := product("A", "Alpha", "10", domain.CategoryHome, 4, true)
	b := product("B", "Bravo", "5", domain.CategoryHome, 4, true)

	base := mustAdd(t, domain.NewCart(), a, b)

	tests := []struct {
		name      string
		productID string
		quantity  int
		wantLines map[string]int
		wantCount int
		wantTotal string
	}{
		{
			name:      "absolute set",
			productID: "A",
			quantity:  5,
			wantLines: map[string]int{"A": 5, "B": 1},
			wantCount: 6,
			wantTotal: "55",
		},
		{
			name:      "zero removes the line",
			productID: "A",
			quantity:  0,
			wantLines: map[string]int{"B": 1},
			wantCount: 1,
			wantTotal: "5",
		},
		{
			name:      "negative removes the line",
			productID: "B",
			quantity:  -2,
			wantLines: map[string]int{"A": 1},
			wantCount: 1,
			wantTotal: "10",
		},
		{
			name:      "unknown id is a no-op",
			productID: "Z",
			quantity:  3,
			wantLines: map[string]int{"A": 1, "B": 1},
			wantCount: 2,
			wantTotal: "15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := base.UpdateQuantity(tt.productID, tt.quantity)

			got := make(map[string]int)
			for _, l := range cart.Lines() {
				got[l.Product.ID] = l.Quantity
			}
			assert.Equal(t, tt.wantLines, got)
			assert.Equal(t, tt.wantCount, cart.ItemCount())
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(cart.Total()), "total %s", cart.Total())
		})
	}

	// base is a snapshot and never changes
	assert.Equal(t, 2, base.ItemCount())
}

func TestCartRemove(t *testing.T) {
	a := product("A", "Alpha", "10", domain.CategoryHome, 4, true)
	cart := mustAdd(t, domain.NewCart(), a, a)

	emptied := cart.Remove("A")
	assert.True(t, emptied.IsEmpty())
	assert.Zero(t, emptied.ItemCount())
	assert.True(t, emptied.Total().IsZero())

	again := emptied.Remove("A")
	assert.True(t, again.IsEmpty())

	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartTotal(t *testing.T) {
	a := product("A", "Alpha", "10.00", domain.CategoryHome, 4, true)
	b := product("B", "Bravo", "5.00", domain.CategoryHome, 4, true)

	cart := mustAdd(t, domain.NewCart(), a, a, b)

	assert.Equal(t, "25.00", cart.Total().StringFixed(2))
	assert.Equal(t, "USD 25.00", domain.Money{Amount: cart.Total(), Currency: currency.USD}.String())
}

func TestCartTotalIsNotRounded(t *testing.T) {
	p := product("A", "Alpha", "0.333", domain.CategoryHome, 4, true)
	cart := mustAdd(t, domain.NewCart(), p, p, p)

	assert.True(t, decimal.RequireFromString("0.999").Equal(cart.Total()))
	assert.Equal(t, "1.00", cart.Total().StringFixed(2))
}

func TestCartTotalMatchesLineSum(t *testing.T) {
	cart := domain.NewCart()
	want := decimal.Zero
	wantCount := 0

	for range 10 {
		p := randomProduct()
		p.InStock = true
		qty := gofakeit.IntRange(1, 9)

		var err error
		cart, err = cart.Add(p)
		require.NoError(t, err)
		cart = cart.UpdateQuantity(p.ID, qty)

		want = want.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
		wantCount += qty
	}

	assert.True(t, want.Equal(cart.Total()))
	assert.Equal(t, wantCount, cart.ItemCount())
}

func TestCartLinesKeepFirstAddOrder(t *testing.T) {
	a := product("A", "Alpha", "1", domain.CategoryHome, 4, true)
	b := product("B", "Bravo", "1", domain.CategoryHome, 4, true)
	c := product("C", "Charlie", "1", domain.CategoryHome, 4, true)

	cart := mustAdd(t, domain.NewCart(), b, a, b, c)

	var got []string
	for _, l := range cart.Lines() {
		got = append(got, l.Product.ID)
	}
	assert.Equal(t, []string{"B", "A", "C"}, got)
}

func TestCartLinesReturnsCopy(t *testing.T) {
	a := product("A", "Alpha", "1", domain.CategoryHome, 4, true)
	cart := mustAdd(t, domain.NewCart(), a)

	lines := cart.Lines()
	lines[0].Quantity = 99

	line, _ := cart.Line("A")
	assert.Equal(t, 1, line.Quantity)
}

func mustAdd(t *testing.T, cart domain.Cart, products ...domain.Product) domain.Cart {
	t.Helper()
	for _, p := range products {
		var err error
		cart, err = cart.Add(p)
		require.NoError(t, err)
	}
	return cart
}
