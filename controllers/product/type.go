package productcontroller

import (
	"net/http"

	"github.com/TatianaSharova/grocery-store/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /admin/types
func CreateType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		slug := c.PostForm("slug")
		groupName := c.PostForm("product_group")
		if name == "" || slug == "" || groupName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, slug and product_group are required"})
			return
		}

		var group models.ProductGroup
		if err := db.Where("name = ?", groupName).First(&group).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product group not found"})
			return
		}

		imageURL, err := saveImage(c, "types")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		t := models.Type{Name: name, Slug: slug, Image: imageURL, ProductGroupID: group.ID}
		if err := db.Create(&t).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create type"})
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

// GET /catalog/types
func GetAllTypes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var types []models.Type
		if err := db.Preload("ProductGroup").Order("name").Find(&types).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch types"})
			return
		}
		c.JSON(http.StatusOK, types)
	}
}

// GET /catalog/types/:id
func GetTypeByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var t models.Type
		if err := db.Preload("ProductGroup").Preload("Products").
			First(&t, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Type not found"})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// PUT /admin/types/:id
func UpdateType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var t models.Type
		if err := db.First(&t, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Type not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			t.Name = v
		}
		if v := c.PostForm("slug"); v != "" {
			t.Slug = v
		}
		if v := c.PostForm("product_group"); v != "" {
			var group models.ProductGroup
			if err := db.Where("name = ?", v).First(&group).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product group not found"})
				return
			}
			t.ProductGroupID = group.ID
		}
		imageURL, err := saveImage(c, "types")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		if imageURL != "" {
			removeImage(t.Image)
			t.Image = imageURL
		}

		if err := db.Save(&t).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update type"})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// DELETE /admin/types/:id
func DeleteType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var t models.Type
		if err := db.First(&t, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Type not found"})
			return
		}

		removeImage(t.Image)
		if err := db.Delete(&t).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete type"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Type deleted"})
	}
}
