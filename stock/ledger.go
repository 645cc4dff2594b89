// Package stock owns the per-product "units available" counter. It only
// enforces the floor at zero; pairing every reserve with one eventual
// release of the same amount is the cart service's job.
package stock

import (
	"errors"
	"fmt"

	"github.com/TatianaSharova/grocery-store/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNonPositiveAmount rejects zero or negative ledger adjustments.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// InsufficientStockError reports how many units are still available.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock, available: %d", e.Available)
}

// locked adds a row lock on the selected product so that concurrent
// reserve/release calls on the same product serialize. sqlite has no
// FOR UPDATE; its single writer already serializes the transaction.
func locked(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// LockByName loads a product by its unique name and locks its row for
// the rest of the transaction.
func LockByName(tx *gorm.DB, name string) (*models.Product, error) {
	var product models.Product
	if err := locked(tx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// LockByID is LockByName for callers that already hold a product ID.
func LockByID(tx *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := locked(tx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Reserve takes amount units off the product's stock. The product must
// have been loaded under lock in the same transaction. Fails without
// any effect when fewer than amount units are available.
func Reserve(tx *gorm.DB, product *models.Product, amount int) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if product.InStock < amount {
		return &InsufficientStockError{Available: product.InStock}
	}
	product.InStock -= amount
	return tx.Model(product).Update("in_stock", product.InStock).Error
}

// Release returns amount units to the product's stock. No upper bound:
// conservation is guaranteed by the caller pairing reserves and releases.
func Release(tx *gorm.DB, product *models.Product, amount int) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	product.InStock += amount
	return tx.Model(product).Update("in_stock", product.InStock).Error
}
