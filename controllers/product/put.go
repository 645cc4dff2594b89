package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/TatianaSharova/grocery-store/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct edits product attributes. A direct in_stock edit here is
// an out-of-band correction and bypasses the reservation accounting that
// the cart endpoints maintain.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("slug"); v != "" {
			product.Slug = v
		}
		if v := c.PostForm("type"); v != "" {
			var productType models.Type
			if err := db.Where("name = ?", v).First(&productType).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Type not found"})
				return
			}
			product.TypeID = productType.ID
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.Atoi(v)
			if err != nil || price < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive integer"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("in_stock"); v != "" {
			inStock, err := strconv.Atoi(v)
			if err != nil || inStock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "in_stock must be a non-negative integer"})
				return
			}
			product.InStock = inStock
		}

		imageURL, err := saveImage(c, "products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		if imageURL != "" {
			removeImage(product.Image)
			product.Image = imageURL
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
