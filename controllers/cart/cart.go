package cartControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/TatianaSharova/grocery-store/models"
	"github.com/TatianaSharova/grocery-store/stock"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	Product string `json:"product" binding:"required"`
	Amount  int    `json:"amount" binding:"required"`
}

type RemoveProductInput struct {
	Product string `json:"product" binding:"required"`
}

type cartLine struct {
	Product string `json:"product"`
	Price   int    `json:"price"` // line total: amount * product price
	Amount  int    `json:"amount"`
}

type cartView struct {
	User        string     `json:"user"`
	TotalPrice  int        `json:"total_price"`
	TotalAmount int        `json:"total_amount"`
	Products    []cartLine `json:"products"`
}

// POST /user/cart
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := AddToCart(db, userID, input.Product, input.Amount); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"detail": "Product added to cart."})
	}
}

// PATCH /user/cart
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := UpdateAmount(db, userID, input.Product, input.Amount); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"detail": fmt.Sprintf("Amount of %s updated to %d.", input.Product, input.Amount),
		})
	}
}

// DELETE /user/cart/product
func RemoveProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var input RemoveProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
			return
		}

		if err := RemoveProduct(db, userID, input.Product); err != nil {
			respondCartError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DELETE /user/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		if err := ClearCart(db, userID); err != nil {
			if errors.Is(err, ErrCartNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is already empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GET /user/cart
func GetUserCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		view, err := buildCartView(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		view, err := buildCartView(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// buildCartView projects the cart into its response shape. Totals are
// recomputed from the line items on every read, never cached.
func buildCartView(db *gorm.DB, userID string) (*cartView, error) {
	view := &cartView{User: userID, Products: []cartLine{}}

	var cart models.Cart
	err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view, nil
		}
		return nil, err
	}

	for _, item := range cart.Items {
		view.Products = append(view.Products, cartLine{
			Product: item.Product.Name,
			Price:   item.Amount * item.Product.Price,
			Amount:  item.Amount,
		})
		view.TotalPrice += item.Amount * item.Product.Price
		view.TotalAmount += item.Amount
	}
	return view, nil
}

func currentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func respondCartError(c *gin.Context, err error) {
	var insufficient *stock.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Not enough stock. Available: %d.", insufficient.Available),
		})
	case errors.Is(err, ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	}
}
