package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/snacksvan-api/internal/application/dto"
	"github.com/jhoicas/snacksvan-api/internal/domain"
	"github.com/jhoicas/snacksvan-api/internal/domain/entity"
	"github.com/jhoicas/snacksvan-api/internal/domain/repository"
	"github.com/jhoicas/snacksvan-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de autenticación de clientes: registro, login y
// actualización de perfil. El costo bcrypt se inyecta en la construcción.
type AuthUseCase struct {
	customers  repository.CustomerRepository
	issuer     *token.Issuer
	policy     Policy
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(customers repository.CustomerRepository, issuer *token.Issuer, policy Policy, bcryptCost int) *AuthUseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{customers: customers, issuer: issuer, policy: policy, bcryptCost: bcryptCost}
}

// Register crea una cuenta de cliente: unicidad de email, política de password,
// hash bcrypt y persistencia con token sin emitir (nil hasta el primer login).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.CustomerResponse, error) {
	existing, err := uc.customers.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAccountExists
	}
	if err := uc.policy.Validate(in.Password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		Email:        in.Email,
		GivenName:    in.GivenName,
		FamilyName:   in.FamilyName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Login verifica email/password y emite un token nuevo que se persiste en la cuenta
// y se devuelve al cliente. Email desconocido y password incorrecto producen el
// mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, *entity.Customer, error) {
	customer, err := uc.customers.GetByEmail(in.Email)
	if err != nil {
		return nil, nil, err
	}
	if customer == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	tok, err := uc.issuer.Issue(customer.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("emitir token: %w", err)
	}
	if err := uc.customers.UpdateToken(customer.Email, tok); err != nil {
		return nil, nil, err
	}
	customer.Token = &tok
	return &dto.LoginResponse{Token: tok}, customer, nil
}

// Account devuelve la cuenta sanitizada por ID (la usa la página de inicio).
func (uc *AuthUseCase) Account(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// UpdateProfile actualiza email y/o password de un cliente ya autenticado por bearer.
// Si el old_password no coincide retorna ErrUnauthorized y NO toca nada.
// Un cambio de password (o de email) emite token nuevo; hash y token se persisten
// juntos para que nunca diverjan.
func (uc *AuthUseCase) UpdateProfile(customer *entity.Customer, in dto.UpdateRequest) (*dto.CustomerResponse, error) {
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.OldPassword)) != nil {
		return nil, domain.ErrUnauthorized
	}
	// Validar el password nuevo antes de persistir cualquier cambio para no
	// dejar la cuenta a medio actualizar.
	if in.NewPassword != nil && *in.NewPassword != "" {
		if err := uc.policy.Validate(*in.NewPassword); err != nil {
			return nil, err
		}
	}

	email := customer.Email
	if in.NewEmail != nil && *in.NewEmail != "" {
		if err := uc.customers.UpdateEmail(customer.ID, *in.NewEmail); err != nil {
			return nil, err
		}
		email = *in.NewEmail
		customer.Email = email
	}

	switch {
	case in.NewPassword != nil && *in.NewPassword != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.NewPassword), uc.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		tok, err := uc.issuer.Issue(email)
		if err != nil {
			return nil, fmt.Errorf("emitir token: %w", err)
		}
		if err := uc.customers.UpdateCredentials(customer.ID, string(hash), tok); err != nil {
			return nil, err
		}
		customer.PasswordHash = string(hash)
		customer.Token = &tok
	case in.NewEmail != nil && *in.NewEmail != "":
		// Solo cambió el email: reemitir para que el token almacenado siga
		// decodificando a la identidad de la cuenta.
		tok, err := uc.issuer.Issue(email)
		if err != nil {
			return nil, fmt.Errorf("emitir token: %w", err)
		}
		if err := uc.customers.UpdateToken(email, tok); err != nil {
			return nil, err
		}
		customer.Token = &tok
	}

	customer.UpdatedAt = time.Now()
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:         c.ID,
		Email:      c.Email,
		GivenName:  c.GivenName,
		FamilyName: c.FamilyName,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
