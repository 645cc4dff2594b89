package routes

import (
	cartControllers "github.com/TatianaSharova/grocery-store/controllers/cart"
	productcontroller "github.com/TatianaSharova/grocery-store/controllers/product"
	userControllers "github.com/TatianaSharova/grocery-store/controllers/user"
	"github.com/TatianaSharova/grocery-store/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// ─────────── Taxonomy Management ───────────
		groupAdmin := adminGroup.Group("/product-groups")
		{
			groupAdmin.POST("", productcontroller.CreateProductGroup(db))
			groupAdmin.PUT("/:id", productcontroller.UpdateProductGroup(db))
			groupAdmin.GET("", productcontroller.GetAllProductGroups(db))
			groupAdmin.DELETE("/:id", productcontroller.DeleteProductGroup(db))
		}
		typeAdmin := adminGroup.Group("/types")
		{
			typeAdmin.POST("", productcontroller.CreateType(db))
			typeAdmin.PUT("/:id", productcontroller.UpdateType(db))
			typeAdmin.GET("", productcontroller.GetAllTypes(db))
			typeAdmin.DELETE("/:id", productcontroller.DeleteType(db))
		}

		// ─────────── Cart Inspection ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCartHandler(db))
		}
	}
}
