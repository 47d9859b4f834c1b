package routes

import (
	"github.com/Sufyan2256462/brisk-cart-commerce/auth"
	cartControllers "github.com/Sufyan2256462/brisk-cart-commerce/controllers/cart"
	orderControllers "github.com/Sufyan2256462/brisk-cart-commerce/controllers/order"
	userControllers "github.com/Sufyan2256462/brisk-cart-commerce/controllers/user"
	"github.com/Sufyan2256462/brisk-cart-commerce/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(deps.DB))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(deps.DB)) // PUT /user/
		userGroup.POST("/signout", auth.SignOut(deps.Cart))     // POST /user/signout

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Cart))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.AddToCart(deps.Cart))                   // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(deps.Cart))    // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Cart)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Cart))             // DELETE /user/cart
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.PlaceOrderHandler(deps.Checkout))   // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(deps.DB))         // GET /user/orders
		userGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(deps.DB)) // GET /user/orders/:orderID
	}
}
