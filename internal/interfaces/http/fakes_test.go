package http_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/snacksvan-api/internal/application/auth"
	"github.com/jhoicas/snacksvan-api/internal/application/order"
	appvendor "github.com/jhoicas/snacksvan-api/internal/application/vendor"
	"github.com/jhoicas/snacksvan-api/internal/domain"
	"github.com/jhoicas/snacksvan-api/internal/domain/entity"
	"github.com/jhoicas/snacksvan-api/internal/domain/repository"
	apphttp "github.com/jhoicas/snacksvan-api/internal/interfaces/http"
	"github.com/jhoicas/snacksvan-api/pkg/token"
)

const testSecret = "test-secret-key-for-unit-tests"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con la misma semántica que los adaptadores PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

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

type fakeVendorRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{byID: make(map[string]*entity.Vendor)}
}

func (r *fakeVendorRepo) Create(v *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == v.Email {
			return domain.ErrAccountExists
		}
	}
	cp := *v
	r.byID[v.ID] = &cp
	return nil
}

func (r *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.byID[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeVendorRepo) GetByEmail(email string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.byID {
		if v.Email == email {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) GetByToken(tok string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.byID {
		if v.Token != nil && *v.Token == tok {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) UpdateToken(email, tok string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.byID {
		if v.Email == email {
			t := tok
			v.Token = &t
			return nil
		}
	}
	return nil
}

func (r *fakeVendorRepo) Open(id, address string, latitude, longitude float64) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	v.Open = true
	v.Address = address
	v.Latitude = latitude
	v.Longitude = longitude
	cp := *v
	return &cp, nil
}

func (r *fakeVendorRepo) Close(id string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	v.Open = false
	cp := *v
	return &cp, nil
}

func (r *fakeVendorRepo) Relocate(id, address string, latitude, longitude float64) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	v.Address = address
	v.Latitude = latitude
	v.Longitude = longitude
	cp := *v
	return &cp, nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
	items  map[string][]entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*entity.Order),
		items:  make(map[string][]entity.OrderItem),
	}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	cp.Items = nil
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) CreateItem(item *entity.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.OrderID] = append(r.items[item.OrderID], *item)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), r.items[id]...)
	return &cp, nil
}

func (r *fakeOrderRepo) ListByVendorAndStatus(vendorID, status string) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Order
	for id, o := range r.orders {
		if o.VendorID == vendorID && o.Status == status {
			cp := *o
			cp.Items = append([]entity.OrderItem(nil), r.items[id]...)
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), r.items[id]...)
	return &cp, nil
}

type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(r.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// buildApp construye la aplicación completa sobre fakes (router real, usecases
// reales, sin base de datos). bcrypt.MinCost mantiene los tests rápidos.
// ──────────────────────────────────────────────────────────────────────────────

type testApp struct {
	app       *fiber.App
	customers *fakeCustomerRepo
	vendors   *fakeVendorRepo
	orders    *fakeOrderRepo
	issuer    *token.Issuer
}

func buildApp(t *testing.T) *testApp {
	t.Helper()
	customers := newFakeCustomerRepo()
	vendors := newFakeVendorRepo()
	orders := newFakeOrderRepo()

	issuer, err := token.NewIssuer(testSecret, "snacksvan-test")
	require.NoError(t, err)

	policy := auth.DefaultPolicy()
	authUC := auth.NewAuthUseCase(customers, issuer, policy, bcrypt.MinCost)
	vendorUC := appvendor.NewVendorUseCase(vendors, issuer, policy, bcrypt.MinCost)
	orderUC := order.NewOrderUseCase(orders, vendors, &fakeTxRunner{repo: orders})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		VendorUC:     vendorUC,
		OrderUC:      orderUC,
		CustomerRepo: customers,
		VendorRepo:   vendors,
		Sessions:     apphttp.NewSessions(60),
	})

	return &testApp{app: app, customers: customers, vendors: vendors, orders: orders, issuer: issuer}
}
