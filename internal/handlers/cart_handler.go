package handlers

import (
	"errors"
	"log"

	"troli/internal/middleware"
	"troli/internal/models"
	"troli/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All cart
// routes require authentication.
func (h *CartHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/goods/cart", authRequired, h.HandleListCart)
	router.Put("/goods/:productId/cart", authRequired, h.HandleUpsertItem)
	router.Delete("/goods/:productId/cart", authRequired, h.HandleRemoveItem)
}

// currentUser pulls the user the auth gate stored in locals.
func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(middleware.UserKey).(*models.User)
	return user, ok
}

// HandleListCart returns the user's cart rows joined with their products.
func (h *CartHandler) HandleListCart(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
		})
	}

	lines, err := h.cartService.ListCart(user.ID)
	if err != nil {
		log.Printf("Error listing cart for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
		})
	}

	return c.JSON(fiber.Map{
		"cart": lines,
	})
}

// UpsertItemRequest represents the request body for putting a product in the
// cart.
type UpsertItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// HandleUpsertItem puts a product in the cart, overwriting the quantity if
// the product is already there.
func (h *CartHandler) HandleUpsertItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
		})
	}

	var req UpsertItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart upsert body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		log.Printf("Cart upsert validation failed: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	productID := c.Params("productId")
	if err := h.cartService.UpsertItem(user.ID, productID, req.Quantity); err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
			})
		}
		log.Printf("Error upserting cart item (%s, %s): %v", user.ID, productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}

	return c.JSON(fiber.Map{})
}

// HandleRemoveItem takes a product out of the cart. Removing a product that
// is not in the cart still succeeds.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
		})
	}

	productID := c.Params("productId")
	if err := h.cartService.RemoveItem(user.ID, productID); err != nil {
		log.Printf("Error removing cart item (%s, %s): %v", user.ID, productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}

	return c.JSON(fiber.Map{})
}
