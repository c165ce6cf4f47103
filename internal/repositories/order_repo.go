package repositories

import (
	"greenbasket/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// append-only: there is no update or delete.
type OrderRepository interface {
	Create(order *models.Order) error
	// ListByUser returns the given account's orders, newest first.
	ListByUser(userID string) ([]models.Order, error)
}
