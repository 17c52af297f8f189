package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/snacksvan-api/internal/domain"
	"github.com/jhoicas/snacksvan-api/internal/domain/entity"
	"github.com/jhoicas/snacksvan-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de persistencia para vendedores.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, email, name, password_hash, token, open, address, latitude, longitude, created_at, updated_at`

// Create persiste una nueva cuenta de vendedor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, email, name, password_hash, token, open, address, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Email, vendor.Name, vendor.PasswordHash, vendor.Token,
		vendor.Open, vendor.Address, vendor.Latitude, vendor.Longitude,
		vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	return r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
}

// GetByEmail obtiene un vendedor por email.
func (r *VendorRepo) GetByEmail(email string) (*entity.Vendor, error) {
	return r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+vendorColumns+` FROM vendors WHERE email = $1`, email))
}

// GetByToken resuelve la cuenta cuyo token vigente es exactamente el presentado.
func (r *VendorRepo) GetByToken(token string) (*entity.Vendor, error) {
	return r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+vendorColumns+` FROM vendors WHERE token = $1`, token))
}

// UpdateToken reemplaza el token vigente de la cuenta identificada por email.
func (r *VendorRepo) UpdateToken(email, token string) error {
	query := `UPDATE vendors SET token = $2, updated_at = now() WHERE email = $1`
	_, err := r.q.Exec(context.Background(), query, email, token)
	if err != nil {
		return fmt.Errorf("update vendor token: %w", err)
	}
	return nil
}

// Open marca la van como abierta en la dirección/posición dada y devuelve la fila actualizada.
func (r *VendorRepo) Open(id, address string, latitude, longitude float64) (*entity.Vendor, error) {
	query := `
		UPDATE vendors SET open = true, address = $2, latitude = $3, longitude = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + vendorColumns
	return r.scanRow(r.q.QueryRow(context.Background(), query, id, address, latitude, longitude))
}

// Close marca la van como cerrada. Idempotente por construcción (open = false siempre).
func (r *VendorRepo) Close(id string) (*entity.Vendor, error) {
	query := `
		UPDATE vendors SET open = false, updated_at = now()
		WHERE id = $1
		RETURNING ` + vendorColumns
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// Relocate actualiza dirección y posición sin tocar el estado de apertura.
func (r *VendorRepo) Relocate(id, address string, latitude, longitude float64) (*entity.Vendor, error) {
	query := `
		UPDATE vendors SET address = $2, latitude = $3, longitude = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + vendorColumns
	return r.scanRow(r.q.QueryRow(context.Background(), query, id, address, latitude, longitude))
}

func (r *VendorRepo) scanRow(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	err := row.Scan(
		&v.ID, &v.Email, &v.Name, &v.PasswordHash, &v.Token, &v.Open,
		&v.Address, &v.Latitude, &v.Longitude, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan vendor: %w", err)
	}
	return &v, nil
}
