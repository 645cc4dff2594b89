package auth

import (
	"bytes"
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

func setupAuth(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Cart{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", RegisterHandler(db))
	r.POST("/auth/login", LoginHandler(db))
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupAuth(t)

	w := postJSON(r, "/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	t.Run("duplicate username rejected", func(t *testing.T) {
		w := postJSON(r, "/auth/register", gin.H{
			"username": "alice",
			"email":    "other@example.com",
			"password": "correct horse",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login returns a token", func(t *testing.T) {
		w := postJSON(r, "/auth/login", gin.H{"username": "alice", "password": "correct horse"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		w := postJSON(r, "/auth/login", gin.H{"username": "alice", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("short password rejected at registration", func(t *testing.T) {
		w := postJSON(r, "/auth/register", gin.H{
			"username": "bob",
			"email":    "bob@example.com",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
