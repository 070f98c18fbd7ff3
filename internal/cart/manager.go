// Package cart mediates all reads and writes of the authenticated user's
// cart. It keeps the only client-side copy of the line-item set and applies
// server responses to it; it never computes totals for individual lines
// itself.
package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/api"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/session"
)

// API is the slice of the REST client the manager needs.
type API interface {
	GetCart(ctx context.Context) ([]domain.CartItem, error)
	AddCartItem(ctx context.Context, productID int64, quantity int) (*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) (*domain.CartItem, error)
	RemoveCartItem(ctx context.Context, cartItemID int64) error
}

type Manager struct {
	api API

	mu    sync.Mutex
	state State
	items []domain.CartItem
	seq   map[int64]uint64 // last issued mutation sequence per line item
}

func NewManager(a API) *Manager {
	return &Manager{
		api:   a,
		state: StateUnauthenticated,
		seq:   make(map[int64]uint64),
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Items returns a copy of the current line-item set in server order.
func (m *Manager) Items() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.CartItem, len(m.items))
	copy(out, m.items)
	return out
}

// Load fetches the full line-item set. A missing or rejected token returns
// ErrAuthRequired; any other failure leaves the session in LoadFailed. No
// automatic retry.
func (m *Manager) Load(ctx context.Context) ([]domain.CartItem, error) {
	m.setState(StateLoading)

	items, err := m.api.GetCart(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) || errors.Is(err, api.ErrUnauthorized) {
			m.setState(StateUnauthenticated)
			return nil, ErrAuthRequired
		}
		slog.Error("cart load failed", "error", err)
		m.setState(StateLoadFailed)
		return nil, err
	}

	m.mu.Lock()
	m.state = StateLoaded
	m.items = items
	m.mu.Unlock()
	return m.Items(), nil
}

// Add asks the server to create or increment a line item. Local state is not
// touched; callers re-fetch or merge as needed.
func (m *Manager) Add(ctx context.Context, productID int64, quantity int) error {
	if !domain.QuantityInRange(quantity) {
		return ErrQuantityOutOfRange
	}
	if _, err := m.api.AddCartItem(ctx, productID, quantity); err != nil {
		return m.mapAuth(err)
	}
	return nil
}

// SetQuantity moves one line item to newQuantity. Out-of-range values are
// rejected before any network call. The server response, which carries the
// recomputed total_price, replaces the local copy of that single line item
// (merge-by-id). Responses that arrive after a later mutation of the same
// item was issued are discarded.
func (m *Manager) SetQuantity(ctx context.Context, cartItemID int64, newQuantity int) (*domain.CartItem, error) {
	if !domain.QuantityInRange(newQuantity) {
		return nil, ErrQuantityOutOfRange
	}

	m.mu.Lock()
	m.seq[cartItemID]++
	issued := m.seq[cartItemID]
	m.mu.Unlock()

	updated, err := m.api.UpdateCartItem(ctx, cartItemID, newQuantity)
	if err != nil {
		// Prior local state is unchanged; caller shows a retry prompt.
		return nil, m.mapAuth(err)
	}
	if ctx.Err() != nil {
		// The screen that asked for this is gone. Drop the result.
		return nil, ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seq[cartItemID] != issued {
		return nil, ErrStaleResponse
	}
	for i := range m.items {
		if m.items[i].ID == updated.ID {
			m.items[i] = *updated
			break
		}
	}
	return updated, nil
}

// Remove deletes one line item server-side, then drops it from the local
// collection. Removal of an id that is not held locally is a no-op.
func (m *Manager) Remove(ctx context.Context, cartItemID int64) error {
	if err := m.api.RemoveCartItem(ctx, cartItemID); err != nil {
		return m.mapAuth(err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == cartItemID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	delete(m.seq, cartItemID)
	return nil
}

// Total sums total_price over the given snapshot. Pure and
// order-independent; display formatting is the caller's concern.
func Total(items []domain.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.TotalPrice)
	}
	return sum
}

func (m *Manager) mapAuth(err error) error {
	if errors.Is(err, session.ErrNotLoggedIn) || errors.Is(err, api.ErrUnauthorized) {
		m.setState(StateUnauthenticated)
		return ErrAuthRequired
	}
	return err
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}
