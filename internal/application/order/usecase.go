package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/snacksvan-api/internal/application/dto"
	"github.com/jhoicas/snacksvan-api/internal/domain"
	"github.com/jhoicas/snacksvan-api/internal/domain/entity"
	"github.com/jhoicas/snacksvan-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase casos de uso de pedidos: creación por el cliente y consulta/cumplimiento
// por el vendedor.
type OrderUseCase struct {
	orders  repository.OrderRepository
	vendors repository.VendorRepository
	tx      TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, vendors repository.VendorRepository, tx TxRunner) *OrderUseCase {
	return &OrderUseCase{orders: orders, vendors: vendors, tx: tx}
}

// Place crea un pedido "Preparing" para la van indicada. Total = Σ cantidad × precio
// unitario (decimal). Cabecera y líneas se insertan en una sola transacción.
func (uc *OrderUseCase) Place(ctx context.Context, customerID string, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if in.VendorID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	vendor, err := uc.vendors.GetByID(in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	ord := &entity.Order{
		ID:         uuid.New().String(),
		VendorID:   in.VendorID,
		CustomerID: customerID,
		Status:     entity.OrderStatusPreparing,
		Total:      decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range in.Items {
		if item.Name == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		ord.Items = append(ord.Items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   ord.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: line,
		})
		ord.Total = ord.Total.Add(line)
	}

	err = uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.Create(ord); err != nil {
			return err
		}
		for i := range ord.Items {
			if err := orders.CreateItem(&ord.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// ListPreparing lista los pedidos pendientes ("Preparing") de la van.
func (uc *OrderUseCase) ListPreparing(vendorID string) ([]*dto.OrderResponse, error) {
	list, err := uc.orders.ListByVendorAndStatus(vendorID, entity.OrderStatusPreparing)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Get devuelve un pedido con sus líneas.
func (uc *OrderUseCase) Get(orderID string) (*dto.OrderResponse, error) {
	ord, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(ord), nil
}

// Fulfill marca el pedido como "Ready for pickup".
func (uc *OrderUseCase) Fulfill(orderID string) (*dto.OrderResponse, error) {
	updated, err := uc.orders.UpdateStatus(orderID, entity.OrderStatusReady)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(updated), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		VendorID:   o.VendorID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		Total:      o.Total,
		Items:      items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
