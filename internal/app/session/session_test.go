package session_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/mrops-br/shopwave-api/internal/app/session"
	"github.com/mrops-br/shopwave-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var speaker = domain.Product{
	ID:       "6",
	Name:     "Bluetooth Speaker",
	Price:    decimal.RequireFromString("89.99"),
	Category: domain.CategoryElectronics,
	InStock:  true,
}

func TestNewSessionIsEmpty(t *testing.T) {
	s := session.New()
	state := s.Snapshot()

	assert.NotEmpty(t, state.ID.String())
	assert.False(t, state.StartedAt.IsZero())
	assert.True(t, state.Cart.IsEmpty())
	assert.Zero(t, state.Wishlist.Len())
}

func TestUpdateCartKeepsStateOnError(t *testing.T) {
	s := session.New()

	_, err := s.UpdateCart(func(c domain.Cart) (domain.Cart, error) {
		return c.Add(speaker)
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	state, err := s.UpdateCart(func(c domain.Cart) (domain.Cart, error) {
		return domain.NewCart(), boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, state.Cart.ItemCount())
	assert.Equal(t, 1, s.Snapshot().Cart.ItemCount())
}

func TestResetStartsNewSession(t *testing.T) {
	s := session.New()
	before := s.Snapshot()

	_, err := s.UpdateCart(func(c domain.Cart) (domain.Cart, error) { return c.Add(speaker) })
	require.NoError(t, err)
	s.UpdateWishlist(func(w domain.Wishlist) domain.Wishlist { return w.Toggle(speaker.ID) })

	after := s.Reset()

	assert.NotEqual(t, before.ID, after.ID)
	assert.True(t, after.Cart.IsEmpty())
	assert.Zero(t, after.Wishlist.Len())
	assert.Equal(t, after.ID, s.Snapshot().ID)
}

func TestSnapshotIsUnaffectedByLaterUpdates(t *testing.T) {
	s := session.New()
	snapshot := s.Snapshot()

	_, err := s.UpdateCart(func(c domain.Cart) (domain.Cart, error) { return c.Add(speaker) })
	require.NoError(t, err)
	s.UpdateWishlist(func(w domain.Wishlist) domain.Wishlist { return w.Toggle(speaker.ID) })

	assert.True(t, snapshot.Cart.IsEmpty())
	assert.False(t, snapshot.Wishlist.Contains(speaker.ID))
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	s := session.New()

	const workers, adds = 8, 25
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range adds {
				_, _ = s.UpdateCart(func(c domain.Cart) (domain.Cart, error) { return c.Add(speaker) })
			}
		}()
	}
	wg.Wait()

	state := s.Snapshot()
	assert.Equal(t, 1, state.Cart.Len())
	assert.Equal(t, workers*adds, state.Cart.ItemCount())
}
