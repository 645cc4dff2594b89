package routes

import (
	cartControllers "github.com/TatianaSharova/grocery-store/controllers/cart"
	productcontroller "github.com/TatianaSharova/grocery-store/controllers/product"
	userControllers "github.com/TatianaSharova/grocery-store/controllers/user"
	"github.com/TatianaSharova/grocery-store/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCartHandler(db))
			cartGroup.POST("", cartControllers.AddToCartHandler(db))
			cartGroup.PATCH("", cartControllers.UpdateCartItemHandler(db))
			cartGroup.DELETE("/product", cartControllers.RemoveProductHandler(db))
			cartGroup.DELETE("", cartControllers.ClearCartHandler(db))
		}

		// ──────────────── Browse Products (with in-cart flags) ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(db))
		userGroup.GET("/products/:slug", productcontroller.GetProductBySlug(db))
	}
}
