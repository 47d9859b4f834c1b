package routes

import (
	orderControllers "github.com/Sufyan2256462/brisk-cart-commerce/controllers/order"
	productcontroller "github.com/Sufyan2256462/brisk-cart-commerce/controllers/product"
	"github.com/Sufyan2256462/brisk-cart-commerce/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the back-office surface. Requires the API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Product Management ────────────────
		adminGroup.POST("/products", productcontroller.CreateProduct(deps.DB, deps.Products))       // POST /admin/products
		adminGroup.PUT("/products/:id", productcontroller.UpdateProduct(deps.DB, deps.Products))    // PUT /admin/products/:id
		adminGroup.DELETE("/products/:id", productcontroller.DeleteProduct(deps.DB, deps.Products)) // DELETE /admin/products/:id
		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(deps.DB))        // GET /admin/products/export

		// ──────────────── Order Fulfillment ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(deps.DB))                      // GET /admin/orders
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.DB)) // PUT /admin/orders/:orderID/status
	}
}
