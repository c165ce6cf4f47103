package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"greenbasket/internal/models"
	"greenbasket/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp assembles the app exactly as main does, against an in-memory
// SQLite database and without a message queue.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:main_test?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	seedProducts(productRepo)

	return newApp(userRepo, productRepo, orderRepo, nil, "test_jwt_secret")
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/v1/users/me", "/api/v1/orders/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "expected Unauthorized for %s without token", path)
	}
}

func TestSeedProductsIsIdempotent(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	seedProducts(repo)
	first, err := repo.GetActive()
	assert.NoError(t, err)
	assert.NotEmpty(t, first)

	seedProducts(repo)
	second, err := repo.GetActive()
	assert.NoError(t, err)
	assert.Len(t, second, len(first))
}
