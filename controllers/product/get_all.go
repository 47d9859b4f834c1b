package productcontroller

import (
	"encoding/json"
	"net/http"

	"github.com/Sufyan2256462/brisk-cart-commerce/cache"
	"github.com/Sufyan2256462/brisk-cart-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts lists the catalog with optional category filter and sorting.
// Query params: category, sort (name | price-low | price-high)
func GetProducts(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		sortBy := c.DefaultQuery("sort", "name")

		cacheKey := "products:list:" + category + ":" + sortBy
		if data := pc.Get(c.Request.Context(), cacheKey); data != nil {
			c.Data(http.StatusOK, "application/json", data)
			return
		}

		query := db.Model(&models.Product{})
		if category != "" && category != "all" {
			query = query.Where("category = ?", category)
		}

		switch sortBy {
		case "price-low":
			query = query.Order("price asc")
		case "price-high":
			query = query.Order("price desc")
		default:
			query = query.Order("title asc")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if payload, err := json.Marshal(products); err == nil {
			pc.Set(c.Request.Context(), cacheKey, payload)
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetFeaturedProducts returns the storefront landing selection.
func GetFeaturedProducts(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		cacheKey := "products:featured"
		if data := pc.Get(c.Request.Context(), cacheKey); data != nil {
			c.Data(http.StatusOK, "application/json", data)
			return
		}

		var products []models.Product
		if err := db.Limit(6).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if payload, err := json.Marshal(products); err == nil {
			pc.Set(c.Request.Context(), cacheKey, payload)
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetCategories returns the distinct product categories, sorted.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Distinct("category").
			Where("category <> ''").
			Order("category").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
