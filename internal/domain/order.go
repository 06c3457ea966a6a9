package domain

import "time"

// OrderStatus is the lifecycle state of an order. Any status may follow any
// other; transitions are not validated.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a deep-copied snapshot of a cart line at order-creation time.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// DeliveryAddress is the shipping address snapshot attached to an order.
type DeliveryAddress struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// Order is one placed order. ID, Number and Date are immutable after
// creation; only Status may change.
type Order struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	Date            time.Time       `json:"date"`
	Status          OrderStatus     `json:"status"`
	Total           float64         `json:"total"`
	TotalItems      int             `json:"total_items"`
	Items           []OrderItem     `json:"items"`
	DeliveryAddress DeliveryAddress `json:"delivery_address"`
}
