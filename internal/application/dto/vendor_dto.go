package dto

import "time"

// VendorRegisterRequest entrada para registro de vendedor.
type VendorRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=200"`
}

// OpenRequest entrada para abrir la van: dónde queda atendiendo.
type OpenRequest struct {
	Address  string   `json:"address" validate:"required"`
	Location Location `json:"location"`
}

// RelocateRequest entrada para mover la van sin cambiar su estado.
type RelocateRequest struct {
	Address  string   `json:"address" validate:"required"`
	Location Location `json:"location"`
}

// FulfillRequest entrada para marcar una orden como lista.
type FulfillRequest struct {
	Order string `json:"order" validate:"required"`
}

// VendorResponse salida de una cuenta de vendedor (sin hash ni token).
type VendorResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Open      bool      `json:"open"`
	Address   string    `json:"address"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
