package services

import (
	"encoding/json"
	"log"
	"time"

	"troli/internal/models"
	"troli/internal/repositories"
	"troli/pkg/rabbitmq"
)

// CartLine is one cart row joined with its product. Product is nil when the
// referenced product no longer exists; the row stays visible so the client
// can still remove it.
type CartLine struct {
	Quantity int             `json:"quantity"`
	Product  *models.Product `json:"product"`
}

// CartService handles business logic for the shopping cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewCartService creates a new CartService. mqClient may be nil, in which
// case cart events are not published.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// ListCart returns the user's cart rows joined with their products, in
// insertion order.
func (s *CartService) ListCart(userID string) ([]CartLine, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			log.Printf("Cart row for user %s references missing product %s: %v", userID, item.ProductID, err)
			product = nil
		}
		lines = append(lines, CartLine{
			Quantity: item.Quantity,
			Product:  product,
		})
	}
	return lines, nil
}

// UpsertItem puts a product in the user's cart, overwriting the quantity if
// the product is already there. The quantity replaces the stored value, it is
// never added to it.
func (s *CartService) UpsertItem(userID, productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if err := s.cartRepo.Upsert(userID, productID, quantity); err != nil {
		return err
	}

	s.publishEvent("cart.updated", userID, productID, quantity)
	return nil
}

// RemoveItem takes a product out of the user's cart. Removing a product that
// is not in the cart succeeds silently.
func (s *CartService) RemoveItem(userID, productID string) error {
	if err := s.cartRepo.Remove(userID, productID); err != nil {
		return err
	}

	s.publishEvent("cart.removed", userID, productID, 0)
	return nil
}

// publishEvent emits a cart event to the broker. Publishing is best effort:
// failures are logged, never surfaced to the caller.
func (s *CartService) publishEvent(routingKey, userID, productID string, quantity int) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"userId":    userID,
		"productId": productID,
		"quantity":  quantity,
		"at":        time.Now().Format(time.RFC3339),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal cart event: %v", err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for user %s: %v", routingKey, userID, err)
	}
}
