package handlers

import (
	"errors"
	"log"

	"troli/internal/services"

	"github.com/gofiber/fiber/v2"
)

// GoodsHandler handles HTTP requests for browsing the product catalog.
type GoodsHandler struct {
	catalogService *services.CatalogService
}

// NewGoodsHandler creates a new GoodsHandler.
func NewGoodsHandler(catalogService *services.CatalogService) *GoodsHandler {
	return &GoodsHandler{
		catalogService: catalogService,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app. Browsing
// requires a logged-in user, as in the storefront this backs.
func (h *GoodsHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/goods", authRequired, h.HandleListGoods)
	router.Get("/goods/:productId", authRequired, h.HandleGetGoods)
}

// HandleListGoods lists products newest first, optionally filtered by the
// category query parameter.
func (h *GoodsHandler) HandleListGoods(c *fiber.Ctx) error {
	category := c.Query("category")

	goods, err := h.catalogService.ListProducts(category)
	if err != nil {
		log.Printf("Error listing products (category=%q): %v", category, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}

	return c.JSON(fiber.Map{
		"goods": goods,
	})
}

// HandleGetGoods returns a single product by its ID.
func (h *GoodsHandler) HandleGetGoods(c *fiber.Ctx) error {
	productID := c.Params("productId")

	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
		}
		log.Printf("Error getting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}

	return c.JSON(fiber.Map{
		"goods": product,
	})
}
