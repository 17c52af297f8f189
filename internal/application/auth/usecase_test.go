package auth_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/snacksvan-api/internal/application/auth"
	"github.com/jhoicas/snacksvan-api/internal/application/dto"
	"github.com/jhoicas/snacksvan-api/internal/domain"
	"github.com/jhoicas/snacksvan-api/internal/domain/entity"
	"github.com/jhoicas/snacksvan-api/pkg/token"
)

// fakeCustomerRepo repositorio en memoria con la misma semántica que el adaptador
// PostgreSQL: Get* devuelve (nil, nil) si no hay fila y las respuestas son copias.
type fakeCustomerRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == c.Email {
			return domain.ErrAccountExists
		}
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByToken(tok string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.Token != nil && *c.Token == tok {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) UpdateToken(email, tok string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.Email == email {
			t := tok
			c.Token = &t
			return nil
		}
	}
	return nil
}

func (r *fakeCustomerRepo) UpdateEmail(id, newEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byID[id]; ok {
		c.Email = newEmail
	}
	return nil
}

func (r *fakeCustomerRepo) UpdateCredentials(id, passwordHash, tok string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byID[id]; ok {
		t := tok
		c.PasswordHash = passwordHash
		c.Token = &t
	}
	return nil
}

func newUseCase(t *testing.T) (*auth.AuthUseCase, *fakeCustomerRepo, *token.Issuer) {
	t.Helper()
	repo := newFakeCustomerRepo()
	issuer, err := token.NewIssuer("test-secret-key-for-unit-tests", "snacksvan-test")
	require.NoError(t, err)
	// bcrypt.MinCost mantiene los tests rápidos; el costo real se inyecta por config.
	uc := auth.NewAuthUseCase(repo, issuer, auth.DefaultPolicy(), bcrypt.MinCost)
	return uc, repo, issuer
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:      "a@b.com",
		Password:   "abc12345",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
	}
}

func TestRegister_LuegoLogin(t *testing.T) {
	uc, repo, _ := newUseCase(t)

	out, err := uc.Register(registerReq())
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", out.Email)

	stored, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "abc12345", stored.PasswordHash, "nunca se persiste el texto plano")
	assert.Nil(t, stored.Token, "sin token hasta el primer login")

	login, _, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "abc12345"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.Register(registerReq())
	assert.ErrorIs(t, err, domain.ErrAccountExists)
}

func TestRegister_PasswordDebil_NoCreaCuenta(t *testing.T) {
	uc, repo, _ := newUseCase(t)

	for _, weak := range []string{"short1", "alllettersnodigit", "1234567"} {
		in := registerReq()
		in.Password = weak
		_, err := uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrWeakPassword, "password %q", weak)
	}

	stored, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	assert.Nil(t, stored, "un registro rechazado no debe dejar cuenta")
}

func TestLogin_PasswordIncorrecto_MismoErrorQueEmailDesconocido(t *testing.T) {
	uc, repo, _ := newUseCase(t)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, _, errWrongPass := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "equivocado1"})
	_, _, errNoAccount := uc.Login(dto.LoginRequest{Email: "nadie@b.com", Password: "abc12345"})

	// Un solo resultado para ambos casos: sin enumeración de cuentas.
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoAccount, domain.ErrInvalidCredentials)

	stored, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	assert.Nil(t, stored.Token, "un login fallido no emite token")
}

func TestLogin_Repetido_NoBloqueaYRotaElToken(t *testing.T) {
	uc, repo, _ := newUseCase(t)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "mal12345"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}

	// Sin lockout: el login correcto sigue funcionando.
	first, _, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "abc12345"})
	require.NoError(t, err)
	second, _, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "abc12345"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token, "cada login emite token nuevo")

	stored, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored.Token)
	assert.Equal(t, second.Token, *stored.Token, "solo el último token queda vigente")
}

func TestUpdateProfile_OldPasswordIncorrecto_NoTocaNada(t *testing.T) {
	uc, repo, _ := newUseCase(t)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)
	_, _, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "abc12345"})
	require.NoError(t, err)

	before, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)

	newEmail := "otro@b.com"
	newPass := "xyz98765"
	_, err = uc.UpdateProfile(before, dto.UpdateRequest{
		OldPassword: "equivocado1",
		NewEmail:    &newEmail,
		NewPassword: &newPass,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// El mismatch corta la operación: ni email ni hash ni token cambiaron.
	after, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.Equal(t, *before.Token, *after.Token)
}

func TestUpdateProfile_CambioDePassword_RotaHashYTokenJuntos(t *testing.T) {
	uc, repo, issuer := newUseCase(t)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)
	login, _, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "abc12345"})
	require.NoError(t, err)
	oldToken := login.Token

	current, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)

	newPass := "xyz98765"
	out, err := uc.UpdateProfile(current, dto.UpdateRequest{OldPassword: "abc12345", NewPassword: &newPass})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", out.Email)

	// El token viejo ya no resuelve a ninguna cuenta; el nuevo sí.
	orphan, err := repo.GetByToken(oldToken)
	require.NoError(t, err)
	assert.Nil(t, orphan, "el token anterior queda revocado de inmediato")

	stored, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored.Token)
	assert.NotEqual(t, oldToken, *stored.Token)

	// Hash y token rotaron juntos: el password nuevo valida contra el hash vigente.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(newPass)))

	email, err := issuer.Identity(*stored.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email, "el token almacenado decodifica a la identidad de la cuenta")
}

func TestUpdateProfile_CambioDeEmail_ReemiteTokenConsistente(t *testing.T) {
	uc, repo, issuer := newUseCase(t)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)
	_, _, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "abc12345"})
	require.NoError(t, err)

	current, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)

	newEmail := "nueva@b.com"
	out, err := uc.UpdateProfile(current, dto.UpdateRequest{OldPassword: "abc12345", NewEmail: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "nueva@b.com", out.Email)

	stored, err := repo.GetByEmail("nueva@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.Token)

	email, err := issuer.Identity(*stored.Token)
	require.NoError(t, err)
	assert.Equal(t, "nueva@b.com", email)
}
