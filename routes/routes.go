package routes

import (
	"github.com/Sufyan2256462/brisk-cart-commerce/cache"
	"github.com/Sufyan2256462/brisk-cart-commerce/cart"
	"github.com/Sufyan2256462/brisk-cart-commerce/checkout"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries the shared collaborators the route groups hand to their
// handlers: the database, the owned cart state manager, the checkout
// service, and the optional product cache. No ambient singletons.
type Deps struct {
	DB       *gorm.DB
	Cart     *cart.Manager
	Checkout *checkout.Service
	Products *cache.ProductCache
}

// SetupRoutes is the single entry-point that wires up the public, user, and
// admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public routes: auth + catalog browsing (no middleware)
	SetupPublicRoutes(r, deps)

	// User routes (JWT-protected): cart, checkout, orders, profile
	SetupUserRoutes(r, deps)

	// Admin routes (API-key-protected): product management, fulfillment
	SetupAdminRoutes(r, deps)
}
