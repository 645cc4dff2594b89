package cartControllers

import (
	"errors"
	"time"

	"github.com/TatianaSharova/grocery-store/models"
	"github.com/TatianaSharova/grocery-store/stock"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidAmount   = errors.New("amount must be at least 1")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("product is not in the cart")
)

// AddToCart puts amount units of the named product into the user's cart,
// creating the cart on first use. Repeated adds for the same product
// accumulate on the existing line. The stock reservation and the line
// write commit or roll back together.
func AddToCart(db *gorm.DB, userID, productName string, amount int) error {
	if amount < 1 {
		return ErrInvalidAmount
	}
	return db.Transaction(func(tx *gorm.DB) error {
		product, err := stock.LockByName(tx, productName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if err := stock.Reserve(tx, product, amount); err != nil {
			return err
		}

		// Get-or-create guarded by the unique index on user_id: a
		// concurrent first add that loses the insert falls through to
		// the re-select instead of a constraint error.
		cart := models.Cart{UserID: userID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&cart).Error; err != nil {
			return err
		}
		if cart.ID == 0 {
			if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
				return err
			}
		}

		// Upsert guarded by the (cart_id, product_id) unique index: a
		// concurrent add for the same pair lands on the increment branch
		// instead of creating a duplicate line.
		item := models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Amount:    amount,
			AddedAt:   time.Now(),
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"amount":   gorm.Expr("cart_items.amount + ?", amount),
				"added_at": time.Now(),
			}),
		}).Create(&item).Error
	})
}

// UpdateAmount sets the line for the named product to newAmount and
// applies the signed difference to the stock ledger. newAmount must be
// at least 1; removing a line is a separate operation.
func UpdateAmount(db *gorm.DB, userID, productName string, newAmount int) error {
	if newAmount < 1 {
		return ErrInvalidAmount
	}
	return db.Transaction(func(tx *gorm.DB) error {
		product, err := stock.LockByName(tx, productName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		item, err := findLine(tx, userID, product.ID)
		if err != nil {
			return err
		}

		diff := newAmount - item.Amount
		switch {
		case diff > 0:
			if err := stock.Reserve(tx, product, diff); err != nil {
				return err
			}
		case diff < 0:
			if err := stock.Release(tx, product, -diff); err != nil {
				return err
			}
		default:
			return nil
		}

		return tx.Model(item).Update("amount", newAmount).Error
	})
}

// RemoveProduct deletes the line for the named product and returns its
// full amount to stock.
func RemoveProduct(db *gorm.DB, userID, productName string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		product, err := stock.LockByName(tx, productName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		item, err := findLine(tx, userID, product.ID)
		if err != nil {
			return err
		}

		if err := stock.Release(tx, product, item.Amount); err != nil {
			return err
		}
		return tx.Delete(item).Error
	})
}

// ClearCart releases every line's amount back to its product and deletes
// the cart with all its lines. Fails when the user has no cart.
func ClearCart(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
			return err
		}
		for _, item := range items {
			product, err := stock.LockByID(tx, item.ProductID)
			if err != nil {
				return err
			}
			if err := stock.Release(tx, product, item.Amount); err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
}

func findLine(tx *gorm.DB, userID string, productID uint) (*models.CartItem, error) {
	var cart models.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}
