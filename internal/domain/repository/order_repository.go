package repository

import "github.com/jhoicas/snacksvan-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
// Create/CreateItem se invocan dentro de una transacción (ver TxRunner en application/order).
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	// GetByID devuelve la orden con sus líneas; (nil, nil) si no existe.
	GetByID(id string) (*entity.Order, error)
	ListByVendorAndStatus(vendorID, status string) ([]*entity.Order, error)
	// UpdateStatus cambia el estado y devuelve la orden actualizada; (nil, nil) si no existe.
	UpdateStatus(id, status string) (*entity.Order, error)
}
