package checkout

import (
	"context"
	"errors"

	"github.com/Sufyan2256462/brisk-cart-commerce/cart"
	"github.com/Sufyan2256462/brisk-cart-commerce/models"
	"github.com/Sufyan2256462/brisk-cart-commerce/store"
)

// ErrEmptyCart deflects checkout before any order row is created.
var ErrEmptyCart = errors.New("checkout: cart is empty")

const (
	// FreeShippingThreshold is inclusive: a subtotal of exactly 50.00
	// ships free.
	FreeShippingThreshold = 50.00
	FlatShippingRate      = 9.99
)

// ShippingFor returns the shipping surcharge for a cart subtotal.
func ShippingFor(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingRate
}

// Service converts a cart snapshot into a durable order plus its lines,
// then clears the cart, as a single atomic action from the user's view.
type Service struct {
	cart  *cart.Manager
	store store.Store
}

func NewService(mgr *cart.Manager, st store.Store) *Service {
	return &Service{cart: mgr, store: st}
}

// PlaceOrder creates the order from the user's current cart snapshot.
// Line prices are the cart-snapshot prices, a deliberate price-lock against
// catalog changes between cart load and checkout. The order insert, line
// batch, and cart clear run in one store transaction; on success the local
// cart projection is reset without a reload round-trip.
//
// The user's cart lock is not held across the store transaction: an add
// that lands between the snapshot read and the submit is swept away by the
// transaction's cart clear and does not join the order. Checkout clears
// the cart; concurrent additions belong to the next one.
func (s *Service) PlaceOrder(ctx context.Context, userID string, addr models.ShippingAddress) (*models.Order, error) {
	if userID == "" {
		return nil, cart.ErrAuthRequired
	}

	lines, err := s.cart.Lines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := cart.Subtotal(lines)
	total := subtotal + ShippingFor(subtotal)

	order := &models.Order{
		UserID:          userID,
		TotalAmount:     total,
		ShippingAddress: addr,
		Status:          models.OrderStatusPending,
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	if err := s.store.SubmitOrder(ctx, order, items); err != nil {
		return nil, err
	}

	s.cart.ResetLocal(userID)
	return order, nil
}
