package cartControllers

import (
	"errors"
	"net/http"

	"github.com/Sufyan2256462/brisk-cart-commerce/cart"
	"github.com/gin-gonic/gin"
)

type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

func currentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

// GET /user/cart
func GetUserCart(mgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		lines, err := mgr.Lines(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": lines,
			"total": mgr.CartTotal(userID),
			"count": mgr.CartCount(userID),
		})
	}
}

// POST /user/cart
//
// Adding a product already in the cart accumulates onto the existing line;
// repeated adds never create a second row for the same product.
func AddToCart(mgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		if err := mgr.AddToCart(c.Request.Context(), userID, input.ProductID, input.Quantity); err != nil {
			if errors.Is(err, cart.ErrAuthRequired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to add items to your cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "count": mgr.CartCount(userID)})
	}
}

// PUT /user/cart/:product_id
//
// A quantity of zero or less removes the line entirely.
func UpdateCartItem(mgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := mgr.UpdateQuantity(c.Request.Context(), userID, productID, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "count": mgr.CartCount(userID)})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(mgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		if err := mgr.Remove(c.Request.Context(), userID, productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Removed from cart"})
	}
}

// DELETE /user/cart
func ClearUserCart(mgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		if err := mgr.ClearCart(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
