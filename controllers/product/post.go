package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/TatianaSharova/grocery-store/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct creates a new product under an existing type, with an
// optional image upload. Admin only.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		slug := c.PostForm("slug")
		typeName := c.PostForm("type")
		priceStr := c.PostForm("price")
		inStockStr := c.PostForm("in_stock")
		if name == "" || slug == "" || typeName == "" || priceStr == "" || inStockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, slug, type, price and in_stock are required"})
			return
		}

		price, err := strconv.Atoi(priceStr)
		if err != nil || price < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive integer"})
			return
		}
		inStock, err := strconv.Atoi(inStockStr)
		if err != nil || inStock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "in_stock must be a non-negative integer"})
			return
		}

		var productType models.Type
		if err := db.Where("name = ?", typeName).First(&productType).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Type not found"})
			return
		}

		imageURL, err := saveImage(c, "products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		product := models.Product{
			Name:    name,
			Slug:    slug,
			TypeID:  productType.ID,
			Price:   price,
			InStock: inStock,
			Image:   imageURL,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
