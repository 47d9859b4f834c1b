package routes

import (
	"github.com/Sufyan2256462/brisk-cart-commerce/auth"
	orderControllers "github.com/Sufyan2256462/brisk-cart-commerce/controllers/order"
	productcontroller "github.com/Sufyan2256462/brisk-cart-commerce/controllers/product"
	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the unauthenticated surface: sign-up/sign-in
// and catalog browsing.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignUp(deps.DB))            // POST /auth/signup
		authGroup.POST("/signin", auth.SignIn(deps.DB, deps.Cart)) // POST /auth/signin
	}

	r.GET("/products", productcontroller.GetProducts(deps.DB, deps.Products))                  // GET /products
	r.GET("/products/featured", productcontroller.GetFeaturedProducts(deps.DB, deps.Products)) // GET /products/featured
	r.GET("/products/:id", productcontroller.GetProductByID(deps.DB, deps.Products))           // GET /products/:id
	r.GET("/categories", productcontroller.GetCategories(deps.DB))                             // GET /categories

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
