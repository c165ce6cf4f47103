package repositories

import "greenbasket/internal/models"

// UserRepository defines the interface for account data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// Save writes the whole account record back. Mutations are always
	// read-then-save wholesale; concurrent writers race last-write-wins.
	Save(user *models.User) error
}
