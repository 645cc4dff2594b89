package routes

import (
	productcontroller "github.com/TatianaSharova/grocery-store/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the anonymous read-only catalog surface.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/product-groups", productcontroller.GetAllProductGroups(db))
		catalog.GET("/product-groups/:id", productcontroller.GetProductGroupByID(db))
		catalog.GET("/types", productcontroller.GetAllTypes(db))
		catalog.GET("/types/:id", productcontroller.GetTypeByID(db))
		catalog.GET("/products", productcontroller.GetProducts(db))
		catalog.GET("/products/:slug", productcontroller.GetProductBySlug(db))
	}
}
