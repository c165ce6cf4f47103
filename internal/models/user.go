package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CartItem is a denormalized snapshot of a product line in the cart.
// There is deliberately no reference back to Product: historical carts and
// orders must not change when the catalog does.
type CartItem struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Measure   float64 `json:"measure"`
	Unit      string  `json:"unit"`
	Image     string  `json:"image"`
	LineTotal float64 `json:"lineTotal"`
}

// ApplyDefaults fills the schema defaults for a cart line.
func (i *CartItem) ApplyDefaults() {
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	if i.Measure == 0 {
		i.Measure = 1
	}
	if i.Unit == "" {
		i.Unit = "kg"
	}
}

// CartItems is stored as a JSON text column.
type CartItems []CartItem

func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		c = CartItems{}
	}
	return json.Marshal(c)
}

func (c *CartItems) Scan(value interface{}) error {
	return scanJSON(value, c)
}

// StringList is stored as a JSON text column (favorites ids).
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Address is the embedded delivery address on a user record. All fields are
// optional on the embedding (an empty address clears it); pattern checks
// apply whenever the field is present.
type Address struct {
	Name     string `json:"name"`
	Phone    string `json:"phone" validate:"omitempty,number,min=10,max=15"`
	Address  string `json:"address"`
	Landmark string `json:"landmark"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode" validate:"omitempty,number,len=6"`
	Type     string `json:"type"`
	Default  bool   `json:"default"`
}

func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Address) Scan(value interface{}) error {
	return scanJSON(value, a)
}

// Settings holds per-user UI preferences. Updates merge key by key rather
// than replacing the whole object.
type Settings struct {
	ThemeMode   string `json:"themeMode" validate:"omitempty,oneof=light dark system"`
	AccentColor string `json:"accentColor"`
}

func (s Settings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Settings) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// User represents a registered account. The password column always holds a
// bcrypt hash, never the plaintext, and is never serialized.
type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string     `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Email     string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string     `json:"-" gorm:"type:varchar(255)"`
	Phone     string     `json:"phone" gorm:"type:varchar(15)" validate:"omitempty,number,min=10,max=15"`
	Cart      CartItems  `json:"cart" gorm:"type:text"`
	Favorites StringList `json:"favorites" gorm:"type:text"`
	Address   Address    `json:"address" gorm:"type:text"`
	Settings  Settings   `json:"settings" gorm:"type:text"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// UserSummary is the account shape returned by register and login.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary strips the account down to its public identity fields.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// scanJSON decodes a JSON column into dest, treating NULL as the zero value.
func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T for JSON scan", value)
	}
}
