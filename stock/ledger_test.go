package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TatianaSharova/grocery-store/models"
)

func setupLedger(t *testing.T, inStock int) (*gorm.DB, *models.Product) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.ProductGroup{}, &models.Type{}, &models.Product{}))

	group := models.ProductGroup{Name: "Dairy", Slug: "dairy"}
	require.NoError(t, db.Create(&group).Error)
	productType := models.Type{Name: "Milk", Slug: "milk", ProductGroupID: group.ID}
	require.NoError(t, db.Create(&productType).Error)
	product := models.Product{Name: "kefir", Slug: "kefir", TypeID: productType.ID, Price: 80, InStock: inStock}
	require.NoError(t, db.Create(&product).Error)
	return db, &product
}

func persistedStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", id).Error)
	return product.InStock
}

func TestReserve(t *testing.T) {
	db, product := setupLedger(t, 5)

	require.NoError(t, Reserve(db, product, 3))
	assert.Equal(t, 2, product.InStock)
	assert.Equal(t, 2, persistedStock(t, db, product.ID))

	t.Run("fails without effect when stock is short", func(t *testing.T) {
		err := Reserve(db, product, 3)
		var insufficient *InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 2, insufficient.Available)
		assert.Equal(t, 2, persistedStock(t, db, product.ID))
	})

	t.Run("can take stock to exactly zero", func(t *testing.T) {
		require.NoError(t, Reserve(db, product, 2))
		assert.Equal(t, 0, persistedStock(t, db, product.ID))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		assert.ErrorIs(t, Reserve(db, product, 0), ErrNonPositiveAmount)
		assert.ErrorIs(t, Reserve(db, product, -1), ErrNonPositiveAmount)
	})
}

func TestRelease(t *testing.T) {
	db, product := setupLedger(t, 1)

	require.NoError(t, Release(db, product, 4))
	assert.Equal(t, 5, persistedStock(t, db, product.ID))

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		assert.ErrorIs(t, Release(db, product, 0), ErrNonPositiveAmount)
	})
}

func TestLockByName(t *testing.T) {
	db, product := setupLedger(t, 5)

	found, err := LockByName(db, "kefir")
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	_, err = LockByName(db, "caviar")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
