package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderItem is a line in a cart or a submitted order. Name, image and
// price are copied from the product at add-time and never re-synced.
type OrderItem struct {
	ProductID   uint     `json:"product_id"`
	ProductName string   `json:"product_name"`
	ImageURL    string   `json:"image_url,omitempty"`
	Quantity    int      `json:"quantity"`
	Price       *float64 `json:"price,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// UnitPrice returns the captured price, treating an unset price as zero.
func (i OrderItem) UnitPrice() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price
}

// OrderItems is persisted as a single JSON column on orders.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*items = nil
		return nil
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	}
	return fmt.Errorf("cannot scan %T into OrderItems", value)
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(20);not null" json:"order_number"`
	Items       OrderItems  `gorm:"type:json" json:"items"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes       string      `gorm:"type:text" json:"notes,omitempty"`
	TotalAmount *float64    `gorm:"type:decimal(10,2)" json:"total_amount,omitempty"`
	CreatedDate time.Time   `gorm:"not null;index" json:"created_date"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

// CreatedOn reports whether the order was created on the same UTC
// calendar day as t. Timestamps are stored in UTC and the backend
// windows days in UTC, so the comparison normalizes both sides.
func (o Order) CreatedOn(t time.Time) bool {
	y1, m1, d1 := o.CreatedDate.UTC().Date()
	y2, m2, d2 := t.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// OrderCounter is the per-day sequence counter behind server-assigned
// order numbers. Day is formatted as 2006-01-02.
type OrderCounter struct {
	Day   string `gorm:"primaryKey;type:varchar(10)"`
	Count int    `gorm:"not null"`
}
