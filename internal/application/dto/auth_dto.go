package dto

import "time"

// RegisterRequest entrada para registro de cliente (password en texto, se hashea en use case).
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	GivenName  string `json:"givenname" validate:"required,max=200"`
	FamilyName string `json:"familyname" validate:"required,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token de cuenta recién emitido.
type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateRequest entrada para actualizar el perfil (requiere bearer + old_password).
// NewEmail/NewPassword son opcionales; nil significa "no cambiar".
type UpdateRequest struct {
	OldPassword string  `json:"old_password" validate:"required"`
	NewEmail    *string `json:"new_email"`
	NewPassword *string `json:"new_password"`
}

// CustomerResponse salida de una cuenta de cliente (sin hash ni token).
type CustomerResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	GivenName  string    `json:"givenname"`
	FamilyName string    `json:"familyname"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
