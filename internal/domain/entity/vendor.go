package entity

import "time"

// Vendor representa una cuenta de vendedor (van de comida).
// Open indica si la van está atendiendo; Address/Latitude/Longitude es su ubicación actual.
type Vendor struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Token        *string
	Open         bool
	Address      string
	Latitude     float64
	Longitude    float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
