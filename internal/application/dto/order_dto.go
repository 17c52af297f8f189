package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest entrada para crear un pedido (cliente autenticado por bearer).
type PlaceOrderRequest struct {
	VendorID string             `json:"vendor_id" validate:"required,uuid"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// OrderItemRequest una línea del pedido entrante.
type OrderItemRequest struct {
	Name      string          `json:"name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

// OrderItemResponse una línea del pedido en respuestas.
type OrderItemResponse struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID         string              `json:"id"`
	VendorID   string              `json:"vendor_id"`
	CustomerID string              `json:"customer_id"`
	Status     string              `json:"status"`
	Total      decimal.Decimal     `json:"total"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}
