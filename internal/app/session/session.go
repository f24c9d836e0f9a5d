package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mrops-br/shopwave-api/internal/domain"
)

// State is a consistent view of the shopper's session
type State struct {
	ID        uuid.UUID
	StartedAt time.Time
	Cart      domain.Cart
	Wishlist  domain.Wishlist
}

// Session owns the cart and wishlist snapshots. Updates replace a snapshot
// wholesale while holding the lock, so readers never see a partial change.
type Session struct {
	mu    sync.Mutex
	state State
	now   func() time.Time
}

// New starts an empty session
func New() *Session {
	s := &Session{now: time.Now}
	s.state = s.fresh()
	return s
}

// Snapshot returns the current state
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// UpdateCart applies fn to the current cart and stores its result unless fn
// fails. The returned state is the one in effect after the call.
func (s *Session) UpdateCart(fn func(domain.Cart) (domain.Cart, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := fn(s.state.Cart)
	if err != nil {
		return s.state, err
	}
	s.state.Cart = cart
	return s.state, nil
}

// UpdateWishlist applies fn to the current wishlist and stores its result
func (s *Session) UpdateWishlist(fn func(domain.Wishlist) domain.Wishlist) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Wishlist = fn(s.state.Wishlist)
	return s.state
}

// Reset discards the cart and wishlist and starts a new session id
func (s *Session) Reset() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.fresh()
	return s.state
}

func (s *Session) fresh() State {
	return State{
		ID:        uuid.New(),
		StartedAt: s.now().UTC(),
		Cart:      domain.NewCart(),
		Wishlist:  domain.NewWishlist(),
	}
}
