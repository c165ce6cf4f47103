package services

import (
	"encoding/json"
	"fmt"
	"log"

	"greenbasket/internal/models"
	"greenbasket/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher is the slice of the message-queue client the order flow
// needs; tests substitute a mock.
type EventPublisher interface {
	PublishOrderCreated(body []byte) error
}

// OrderService handles order placement and listing. Orders are immutable
// once created.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil when no
// message queue is configured.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// CreateOrderInput is the client-supplied order payload. Pricing, payment
// and address are opaque structures stored verbatim; the delivery slot is
// an opaque scheduling token. Totals are not recomputed server-side at this
// layer.
type CreateOrderInput struct {
	Items        []models.CartItem `json:"items"`
	Pricing      models.JSONMap    `json:"pricing"`
	DeliverySlot string            `json:"deliverySlot"`
	Payment      models.JSONMap    `json:"payment"`
	Address      models.JSONMap    `json:"address"`
}

// CreateOrder persists a new order owned by the given account. The one
// business invariant beyond schema validation: at least one item.
func (s *OrderService) CreateOrder(userID string, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make(models.OrderItems, len(input.Items))
	for i, item := range input.Items {
		item.ApplyDefaults()
		items[i] = item
	}

	order := &models.Order{
		ID:           uuid.New().String(),
		UserID:       userID,
		Items:        items,
		Pricing:      input.Pricing,
		DeliverySlot: input.DeliverySlot,
		Payment:      input.Payment,
		Address:      input.Address,
	}
	if order.Pricing == nil {
		order.Pricing = models.JSONMap{}
	}
	if order.Payment == nil {
		order.Payment = models.JSONMap{}
	}
	if order.Address == nil {
		order.Address = models.JSONMap{}
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishOrderCreated(order)
	return order, nil
}

// ListOrders returns the account's own orders, newest first.
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// publishOrderCreated emits an order.created event. Publishing is best
// effort: a queue failure never fails the order.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"event":     "order.created",
		"orderID":   order.ID,
		"userID":    order.UserID,
		"itemCount": len(order.Items),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}
	if err := s.publisher.PublishOrderCreated(body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		return
	}
	log.Printf("Published order created event for order %s", order.ID)
}
