package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"greenbasket/internal/models"
	"greenbasket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. Both
// require authentication.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// HandleListOrders lists the caller's own orders, newest first. Ownership
// comes from the authenticated account, never from the request.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	user := currentUser(c)

	orders, err := h.service.ListOrders(user.ID)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}

	return c.JSON(fiber.Map{
		"orders": orders,
	})
}

// createOrderRequest keeps items raw so a missing or non-array value can be
// told apart from a valid empty payload before decoding the lines.
type createOrderRequest struct {
	Items        json.RawMessage `json:"items"`
	Pricing      models.JSONMap  `json:"pricing"`
	DeliverySlot string          `json:"deliverySlot"`
	Payment      models.JSONMap  `json:"payment"`
	Address      models.JSONMap  `json:"address"`
}

// HandleCreateOrder places a new order for the authenticated account.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Missing items, a non-array value and an empty array all fail the
	// same way: an order needs at least one item.
	var items []models.CartItem
	if req.Items == nil || json.Unmarshal(req.Items, &items) != nil || len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order must include at least one item",
		})
	}

	user := currentUser(c)
	order, err := h.service.CreateOrder(user.ID, services.CreateOrderInput{
		Items:        items,
		Pricing:      req.Pricing,
		DeliverySlot: req.DeliverySlot,
		Payment:      req.Payment,
		Address:      req.Address,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyOrder) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order must include at least one item",
			})
		}
		if handled, respErr := respondValidation(c, "Invalid order payload", err); handled {
			return respErr
		}
		log.Printf("Error creating order for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": order.ID,
	})
}
