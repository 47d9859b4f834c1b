package store

import (
	"context"

	"github.com/Sufyan2256462/brisk-cart-commerce/models"
)

// Store is the capability the cart and checkout logic require from the
// durable backend: filtered CRUD on cart lines and a single-shot order
// submission. Store failures are surfaced as-is and treated by callers as
// one generic recoverable condition. Consumers depend on this interface,
// never on the database handle directly.
type Store interface {
	// CartLines returns all of a user's cart rows with the linked product
	// denormalized onto each line.
	CartLines(ctx context.Context, userID string) ([]models.CartItem, error)

	// InsertCartLine creates a new (user, product) row with the given
	// quantity. The composite uniqueness of (user, product) is enforced
	// by the store.
	InsertCartLine(ctx context.Context, userID, productID string, quantity int) error

	// UpdateCartQuantity sets the quantity on the row matching
	// (user, product).
	UpdateCartQuantity(ctx context.Context, userID, productID string, quantity int) error

	// DeleteCartLine removes the row(s) matching (user, product).
	DeleteCartLine(ctx context.Context, userID, productID string) error

	// ClearCart removes every cart row belonging to the user.
	ClearCart(ctx context.Context, userID string) error

	// SubmitOrder persists the order, its lines, and the cart clear as one
	// transaction. The order's generated identity is populated on return.
	SubmitOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error
}
