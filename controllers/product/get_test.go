package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TatianaSharova/grocery-store/models"
)

func setupCatalog(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.ProductGroup{},
		&models.Type{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))

	group := models.ProductGroup{Name: "Dairy", Slug: "dairy"}
	require.NoError(t, db.Create(&group).Error)
	productType := models.Type{Name: "Milk", Slug: "milk", ProductGroupID: group.ID}
	require.NoError(t, db.Create(&productType).Error)
	for _, name := range []string{"kefir", "ryazhenka"} {
		require.NoError(t, db.Create(&models.Product{
			Name: name, Slug: name, TypeID: productType.ID, Price: 80, InStock: 5,
		}).Error)
	}
	return db
}

func catalogRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/products")
	if userID != "" {
		group.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		})
	}
	group.GET("", GetProducts(db))
	return r
}

func listProducts(t *testing.T, r *gin.Engine) []map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var views []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	return views
}

func TestGetProducts(t *testing.T) {
	db := setupCatalog(t)

	t.Run("anonymous read omits the cart flag", func(t *testing.T) {
		views := listProducts(t, catalogRouter(db, ""))
		require.Len(t, views, 2)
		assert.Equal(t, "kefir", views[0]["name"])
		assert.Equal(t, "Dairy", views[0]["product_group"])
		_, present := views[0]["is_in_shopping_cart"]
		assert.False(t, present)
	})

	t.Run("authenticated read flags products in the cart", func(t *testing.T) {
		cart := models.Cart{UserID: "alice"}
		require.NoError(t, db.Create(&cart).Error)
		var kefir models.Product
		require.NoError(t, db.First(&kefir, "name = ?", "kefir").Error)
		require.NoError(t, db.Create(&models.CartItem{
			CartID: cart.ID, ProductID: kefir.ID, Amount: 1,
		}).Error)

		views := listProducts(t, catalogRouter(db, "alice"))
		require.Len(t, views, 2)
		assert.Equal(t, true, views[0]["is_in_shopping_cart"])
		assert.Equal(t, false, views[1]["is_in_shopping_cart"])
	})

	t.Run("flag is omitted when the cart lookup fails", func(t *testing.T) {
		require.NoError(t, db.Migrator().DropTable(&models.CartItem{}))

		views := listProducts(t, catalogRouter(db, "alice"))
		require.Len(t, views, 2)
		_, present := views[0]["is_in_shopping_cart"]
		assert.False(t, present)
	})
}
