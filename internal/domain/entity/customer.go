package entity

import "time"

// Customer representa una cuenta de cliente de la plataforma.
type Customer struct {
	ID           string
	Email        string
	GivenName    string
	FamilyName   string
	PasswordHash string  // hash bcrypt, nunca el texto plano
	Token        *string // token vigente; nil hasta el primer login
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve el nombre completo para la página de inicio.
func (c *Customer) FullName() string {
	return c.GivenName + " " + c.FamilyName
}
