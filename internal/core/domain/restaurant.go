package domain

import "time"

// OrderStatus represents the lifecycle state of a customer order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Customer is a guest record managed from the customers screen.
type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Visits     int       `json:"visits"`
	TotalSpent float64   `json:"total_spent"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

// Order is a customer order as the dashboard displays it.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Table      int         `json:"table,omitempty"`
	Items      []OrderItem `json:"items"`
	Status     OrderStatus `json:"status"`
	Total      float64     `json:"total"`
	PlacedAt   time.Time   `json:"placed_at"`
}

// MenuItem is a dish or drink on the menu.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Available   bool    `json:"available"`
}

// Reservation is a booked table.
type Reservation struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Party      int       `json:"party"`
	Table      int       `json:"table,omitempty"`
	At         time.Time `json:"at"`
	Status     string    `json:"status"`
}

// StaffMember is an employee record managed by owners and admins.
type StaffMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Position string `json:"position,omitempty"`
	Active   bool   `json:"active"`
}

// InventoryItem tracks stock of an ingredient or supply.
type InventoryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
	Reorder  float64 `json:"reorder_level"`
	Supplier string  `json:"supplier,omitempty"`
}

// SalesReport is an aggregated revenue summary for a period.
type SalesReport struct {
	From        time.Time          `json:"from"`
	To          time.Time          `json:"to"`
	OrderCount  int                `json:"order_count"`
	Revenue     float64            `json:"revenue"`
	ByCategory  map[string]float64 `json:"by_category,omitempty"`
	TopItems    []string           `json:"top_items,omitempty"`
	AvgPerOrder float64            `json:"avg_per_order"`
}
