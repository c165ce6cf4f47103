package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// OrderItems is the frozen copy of the purchased lines, stored as a JSON
// text column. Lines reuse the cart snapshot shape.
type OrderItems []CartItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		o = OrderItems{}
	}
	return json.Marshal(o)
}

func (o *OrderItems) Scan(value interface{}) error {
	return scanJSON(value, o)
}

// JSONMap stores an opaque client-supplied object (pricing breakdown,
// payment metadata, address snapshot) verbatim as a JSON text column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// Order is an immutable record of a placed order. The owner reference is
// set at creation and never changes; there is no update or cancel path.
type Order struct {
	ID           string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string     `json:"-" gorm:"index;type:varchar(36)"`
	Items        OrderItems `json:"items" gorm:"type:text"`
	Pricing      JSONMap    `json:"pricing" gorm:"type:text"`
	DeliverySlot string     `json:"deliverySlot" gorm:"type:varchar(100)"`
	Payment      JSONMap    `json:"payment" gorm:"type:text"`
	Address      JSONMap    `json:"address" gorm:"type:text"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"-"`
}
