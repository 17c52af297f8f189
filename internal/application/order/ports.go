package order

import (
	"context"

	"github.com/jhoicas/snacksvan-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un OrderRepository atado a una transacción:
// cabecera y líneas del pedido se insertan juntas o no se insertan.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
