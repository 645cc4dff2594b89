package productcontroller

import (
	"net/http"

	"github.com/TatianaSharova/grocery-store/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /admin/product-groups
func CreateProductGroup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		slug := c.PostForm("slug")
		if name == "" || slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and slug are required"})
			return
		}

		imageURL, err := saveImage(c, "product_groups")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		group := models.ProductGroup{Name: name, Slug: slug, Image: imageURL}
		if err := db.Create(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product group"})
			return
		}
		c.JSON(http.StatusCreated, group)
	}
}

// GET /catalog/product-groups
func GetAllProductGroups(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var groups []models.ProductGroup
		if err := db.Preload("Types").Order("name").Find(&groups).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product groups"})
			return
		}
		c.JSON(http.StatusOK, groups)
	}
}

// GET /catalog/product-groups/:id
func GetProductGroupByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var group models.ProductGroup
		if err := db.Preload("Types").First(&group, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product group not found"})
			return
		}
		c.JSON(http.StatusOK, group)
	}
}

// PUT /admin/product-groups/:id
func UpdateProductGroup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var group models.ProductGroup
		if err := db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product group not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			group.Name = v
		}
		if v := c.PostForm("slug"); v != "" {
			group.Slug = v
		}
		imageURL, err := saveImage(c, "product_groups")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		if imageURL != "" {
			removeImage(group.Image)
			group.Image = imageURL
		}

		if err := db.Save(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product group"})
			return
		}
		c.JSON(http.StatusOK, group)
	}
}

// DELETE /admin/product-groups/:id
func DeleteProductGroup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var group models.ProductGroup
		if err := db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product group not found"})
			return
		}

		removeImage(group.Image)
		if err := db.Delete(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product group"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product group deleted"})
	}
}
