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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, email, given_name, family_name, password_hash, token, created_at, updated_at`

// Create persiste una nueva cuenta de cliente (token NULL hasta el primer login).
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, email, given_name, family_name, password_hash, token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Email, customer.GivenName, customer.FamilyName,
		customer.PasswordHash, customer.Token, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.scanOne(`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByEmail obtiene un cliente por email.
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	return r.scanOne(`SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
}

// GetByToken resuelve la cuenta cuyo token vigente es exactamente el presentado.
func (r *CustomerRepo) GetByToken(token string) (*entity.Customer, error) {
	return r.scanOne(`SELECT `+customerColumns+` FROM customers WHERE token = $1`, token)
}

func (r *CustomerRepo) scanOne(query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Email, &c.GivenName, &c.FamilyName, &c.PasswordHash, &c.Token,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// UpdateToken reemplaza el token vigente de la cuenta identificada por email.
func (r *CustomerRepo) UpdateToken(email, token string) error {
	query := `UPDATE customers SET token = $2, updated_at = now() WHERE email = $1`
	_, err := r.q.Exec(context.Background(), query, email, token)
	if err != nil {
		return fmt.Errorf("update customer token: %w", err)
	}
	return nil
}

// UpdateEmail cambia el email de la cuenta.
func (r *CustomerRepo) UpdateEmail(id, newEmail string) error {
	query := `UPDATE customers SET email = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, newEmail)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("update customer email: %w", err)
	}
	return nil
}

// UpdateCredentials persiste hash y token en una sola sentencia: un cambio de
// password siempre deja ambos consistentes, incluso bajo escrituras concurrentes
// (gana la última, semántica por-fila de PostgreSQL).
func (r *CustomerRepo) UpdateCredentials(id, passwordHash, token string) error {
	query := `UPDATE customers SET password_hash = $2, token = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, passwordHash, token)
	if err != nil {
		return fmt.Errorf("update customer credentials: %w", err)
	}
	return nil
}
