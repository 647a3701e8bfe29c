package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

const OrderStatusCompleted = "completed"

// CustomerInfo is the opaque contact blob attached to an order. It is stored
// as a JSON column and never normalized into its own table.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

func (c CustomerInfo) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *CustomerInfo) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = CustomerInfo{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CustomerInfo", src)
	}
}

type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID           int64        `json:"id" bun:"id,pk,autoincrement"`
	UserID       int64        `json:"user_id" bun:"user_id,notnull"`
	Total        float64      `json:"total" bun:"total,notnull"`
	Status       string       `json:"status" bun:"status,notnull"`
	CustomerInfo CustomerInfo `json:"customer_info" bun:"customer_info,type:json"`
	CreatedAt    time.Time    `json:"created_at" bun:"created_at"`

	Items []*OrderItem `json:"items" bun:"rel:has-many,join:id=order_id"`
}

type OrderItem struct {
	bun.BaseModel `bun:"table:order_items"`

	ID       int64   `json:"id" bun:"id,pk,autoincrement"`
	OrderID  int64   `json:"order_id" bun:"order_id,notnull"`
	EventID  int64   `json:"event_id" bun:"event_id,notnull"`
	Quantity int     `json:"quantity" bun:"quantity,notnull"`
	Price    float64 `json:"price" bun:"price,notnull"`
}

type OrderItemRequest struct {
	EventID  int64   `json:"eventId" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price"`
}

type OrderCreateRequest struct {
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Customer CustomerInfo       `json:"customer" binding:"required"`
	Total    float64            `json:"total"`
}

// OrderEvent is the message published to Kafka on order lifecycle changes.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	Order     *Order    `json:"order,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
