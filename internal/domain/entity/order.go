package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPreparing = "Preparing"
	OrderStatusReady     = "Ready for pickup"
)

// Order representa un pedido de un cliente a una van.
type Order struct {
	ID         string
	VendorID   string
	CustomerID string
	Status     string // Preparing, Ready for pickup
	Total      decimal.Decimal
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem una línea del pedido.
type OrderItem struct {
	ID        string
	OrderID   string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
