package models

import "time"

// Product represents a catalog entry. It is referenced by the storefront
// read endpoints only; cart and order lines copy its fields instead of
// linking back to it.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Category    string    `json:"category" gorm:"type:varchar(20)" validate:"required,oneof=fruit juice other soft_drink"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Unit        string    `json:"unit" gorm:"type:varchar(10);default:kg"`
	Stock       int       `json:"stock" gorm:"default:0" validate:"gte=0"`
	Image       string    `json:"image"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
