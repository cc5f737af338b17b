package services_test

import (
	"testing"

	"troli/internal/models"
	"troli/internal/repositories"
	"troli/internal/services"

	"github.com/stretchr/testify/assert"
)

func newTestCartService() (*services.CartService, *repositories.MockCartRepository, *repositories.MockProductRepository) {
	cartRepo := repositories.NewMockCartRepository()
	productRepo := repositories.NewMockProductRepository()
	return services.NewCartService(cartRepo, productRepo, nil), cartRepo, productRepo
}

func TestCartService_UpsertOverwritesQuantity(t *testing.T) {
	cartService, cartRepo, _ := newTestCartService()

	assert.NoError(t, cartService.UpsertItem("user-1", "prod-1", 3))
	assert.NoError(t, cartService.UpsertItem("user-1", "prod-1", 5))

	items, err := cartRepo.ListByUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartService_UpsertIsIdempotent(t *testing.T) {
	cartService, cartRepo, _ := newTestCartService()

	assert.NoError(t, cartService.UpsertItem("user-1", "prod-1", 2))
	assert.NoError(t, cartService.UpsertItem("user-1", "prod-1", 2))

	items, err := cartRepo.ListByUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartService_UpsertRejectsNonPositiveQuantity(t *testing.T) {
	cartService, cartRepo, _ := newTestCartService()

	assert.ErrorIs(t, cartService.UpsertItem("user-1", "prod-1", 0), services.ErrInvalidQuantity)
	assert.ErrorIs(t, cartService.UpsertItem("user-1", "prod-1", -3), services.ErrInvalidQuantity)

	items, err := cartRepo.ListByUser("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_RemoveIsIdempotent(t *testing.T) {
	cartService, cartRepo, _ := newTestCartService()

	assert.NoError(t, cartService.UpsertItem("user-1", "prod-1", 2))
	assert.NoError(t, cartService.RemoveItem("user-1", "prod-1"))
	// Removing again, and removing something never added, both succeed.
	assert.NoError(t, cartService.RemoveItem("user-1", "prod-1"))
	assert.NoError(t, cartService.RemoveItem("user-1", "prod-99"))

	items, err := cartRepo.ListByUser("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_ListCartJoinsProducts(t *testing.T) {
	cartService, _, productRepo := newTestCartService()

	product := &models.Product{ID: "prod-1", Name: "Iced Americano", Category: "drink", Price: 3.50}
	assert.NoError(t, productRepo.Create(product))

	assert.NoError(t, cartService.UpsertItem("user-1", "prod-1", 2))
	// A row whose product was never created still shows up, with a nil product.
	assert.NoError(t, cartService.UpsertItem("user-1", "prod-gone", 1))

	lines, err := cartService.ListCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, lines, 2)

	assert.Equal(t, 2, lines[0].Quantity)
	assert.NotNil(t, lines[0].Product)
	assert.Equal(t, "Iced Americano", lines[0].Product.Name)

	assert.Equal(t, 1, lines[1].Quantity)
	assert.Nil(t, lines[1].Product)
}

func TestCartService_ListCartKeepsCartsSeparate(t *testing.T) {
	cartService, _, productRepo := newTestCartService()
	assert.NoError(t, productRepo.Create(&models.Product{ID: "prod-1", Name: "Cookie", Price: 2.20}))

	assert.NoError(t, cartService.UpsertItem("user-1", "prod-1", 2))
	assert.NoError(t, cartService.UpsertItem("user-2", "prod-1", 7))

	lines, err := cartService.ListCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	lines, err = cartService.ListCart("user-2")
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}
