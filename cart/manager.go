package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/Sufyan2256462/brisk-cart-commerce/store"
)

// ErrAuthRequired reports that a cart mutation was attempted without a
// signed-in user. No remote write is issued in that case.
var ErrAuthRequired = errors.New("cart: authentication required")

// Line is the manager's view of one cart row: the persisted (user, product,
// quantity) triple plus the product snapshot denormalized at read time.
type Line struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Stock     int     `json:"stock"`
}

// Manager keeps a local projection of each signed-in user's persisted cart
// and mediates every mutation through the store. The consistency strategy is
// write-then-resynchronize: each successful mutation re-reads the user's rows
// and replaces the projection, except ClearCart whose post-state is known
// with certainty.
//
// Mutations for the same user are serialized on a per-user lock, so two
// rapid adds of the same product accumulate into one line instead of racing
// each other to a lost update.
type Manager struct {
	store store.Store

	mu    sync.Mutex
	carts map[string]*userCart
}

type userCart struct {
	mu     sync.Mutex
	loaded bool
	lines  []Line
}

func NewManager(st store.Store) *Manager {
	return &Manager{
		store: st,
		carts: make(map[string]*userCart),
	}
}

func (m *Manager) cartFor(userID string) *userCart {
	m.mu.Lock()
	defer m.mu.Unlock()
	uc, ok := m.carts[userID]
	if !ok {
		uc = &userCart{}
		m.carts[userID] = uc
	}
	return uc
}

// peek returns the user's projection without creating one, so read-only
// accessors for an unknown user do not grow the map.
func (m *Manager) peek(userID string) *userCart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.carts[userID]
}

// Load replaces the user's local projection with the store's current rows.
// A fetch failure is logged and leaves the prior projection untouched.
func (m *Manager) Load(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrAuthRequired
	}
	uc := m.cartFor(userID)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.reload(ctx, m.store, userID)
}

// reload must be called with uc.mu held.
func (uc *userCart) reload(ctx context.Context, st store.Store, userID string) error {
	items, err := st.CartLines(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to load cart for user %s: %v", userID, err)
		return err
	}
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Title:     item.Product.Title,
			Price:     item.Product.Price,
			ImageURL:  item.Product.ImageURL,
			Stock:     item.Product.Stock,
		})
	}
	uc.lines = lines
	uc.loaded = true
	return nil
}

// ensureLoaded fetches the projection on first access after sign-in.
// Must be called with uc.mu held.
func (uc *userCart) ensureLoaded(ctx context.Context, st store.Store, userID string) error {
	if uc.loaded {
		return nil
	}
	return uc.reload(ctx, st, userID)
}

// Forget drops the user's local projection on sign-out. The remote rows
// persist for the next sign-in.
func (m *Manager) Forget(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
}

// Lines returns the user's current cart view, loading it from the store on
// first access.
func (m *Manager) Lines(ctx context.Context, userID string) ([]Line, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	uc := m.cartFor(userID)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.ensureLoaded(ctx, m.store, userID); err != nil {
		return nil, err
	}
	out := make([]Line, len(uc.lines))
	copy(out, uc.lines)
	return out, nil
}

// AddToCart inserts a new line for the product, or accumulates onto the
// existing line when the product is already in the cart.
func (m *Manager) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		return ErrAuthRequired
	}
	if quantity <= 0 {
		quantity = 1
	}
	uc := m.cartFor(userID)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.ensureLoaded(ctx, m.store, userID); err != nil {
		return err
	}

	for _, line := range uc.lines {
		if line.ProductID == productID {
			return uc.setQuantity(ctx, m.store, userID, productID, line.Quantity+quantity)
		}
	}

	if err := m.store.InsertCartLine(ctx, userID, productID, quantity); err != nil {
		return err
	}
	return uc.reload(ctx, m.store, userID)
}

// UpdateQuantity sets the line's quantity; zero or negative removes the
// line entirely.
func (m *Manager) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		return ErrAuthRequired
	}
	uc := m.cartFor(userID)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.setQuantity(ctx, m.store, userID, productID, quantity)
}

// setQuantity must be called with uc.mu held.
func (uc *userCart) setQuantity(ctx context.Context, st store.Store, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return uc.remove(ctx, st, userID, productID)
	}
	if err := st.UpdateCartQuantity(ctx, userID, productID, quantity); err != nil {
		return err
	}
	return uc.reload(ctx, st, userID)
}

// Remove deletes the product's line from the cart.
func (m *Manager) Remove(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return ErrAuthRequired
	}
	uc := m.cartFor(userID)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.remove(ctx, m.store, userID, productID)
}

// remove must be called with uc.mu held.
func (uc *userCart) remove(ctx context.Context, st store.Store, userID, productID string) error {
	if err := st.DeleteCartLine(ctx, userID, productID); err != nil {
		return err
	}
	return uc.reload(ctx, st, userID)
}

// ClearCart deletes every row for the user, then empties the projection
// directly. The post-state is known, so no reload round-trip is spent.
func (m *Manager) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrAuthRequired
	}
	uc := m.cartFor(userID)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := m.store.ClearCart(ctx, userID); err != nil {
		return err
	}
	uc.lines = nil
	uc.loaded = true
	return nil
}

// ResetLocal empties the projection without touching the store. Checkout
// uses it after the order transaction has already deleted the cart rows.
func (m *Manager) ResetLocal(userID string) {
	uc := m.peek(userID)
	if uc == nil {
		return
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.lines = nil
	uc.loaded = true
}

// CartTotal returns Σ(price × quantity) over the local projection.
func (m *Manager) CartTotal(userID string) float64 {
	uc := m.peek(userID)
	if uc == nil {
		return 0
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	var total float64
	for _, line := range uc.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// CartCount returns Σ(quantity) over the local projection.
func (m *Manager) CartCount(userID string) int {
	uc := m.peek(userID)
	if uc == nil {
		return 0
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	var count int
	for _, line := range uc.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal computes Σ(price × quantity) over an arbitrary set of lines.
func Subtotal(lines []Line) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
