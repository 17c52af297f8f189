package repository

import "github.com/jhoicas/snacksvan-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	// GetByToken resuelve la cuenta cuyo token vigente es exactamente el presentado
	// (la validez del bearer se decide por igualdad, no por firma).
	GetByToken(token string) (*entity.Customer, error)
	// UpdateToken reemplaza el token vigente de la cuenta; invalida todos los anteriores.
	UpdateToken(email, token string) error
	UpdateEmail(id, newEmail string) error
	// UpdateCredentials persiste passwordHash y token en una sola sentencia
	// para que nunca diverjan.
	UpdateCredentials(id, passwordHash, token string) error
}
