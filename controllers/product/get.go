package productcontroller

import (
	"encoding/json"
	"net/http"

	"github.com/Sufyan2256462/brisk-cart-commerce/cache"
	"github.com/Sufyan2256462/brisk-cart-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		cacheKey := "products:detail:" + id
		if data := pc.Get(c.Request.Context(), cacheKey); data != nil {
			c.Data(http.StatusOK, "application/json", data)
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if payload, err := json.Marshal(product); err == nil {
			pc.Set(c.Request.Context(), cacheKey, payload)
		}
		c.JSON(http.StatusOK, product)
	}
}
