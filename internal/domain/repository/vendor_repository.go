package repository

import "github.com/jhoicas/snacksvan-api/internal/domain/entity"

// VendorRepository define el puerto de persistencia para Vendor (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
// Open/Close/Relocate devuelven la fila ya actualizada.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	GetByEmail(email string) (*entity.Vendor, error)
	GetByToken(token string) (*entity.Vendor, error)
	UpdateToken(email, token string) error
	Open(id, address string, latitude, longitude float64) (*entity.Vendor, error)
	Close(id string) (*entity.Vendor, error)
	Relocate(id, address string, latitude, longitude float64) (*entity.Vendor, error)
}
