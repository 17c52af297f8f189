package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/snacksvan-api/internal/application/auth"
	"github.com/jhoicas/snacksvan-api/internal/application/dto"
	"github.com/jhoicas/snacksvan-api/internal/application/order"
	"github.com/jhoicas/snacksvan-api/internal/domain"
)

// CustomerHandler maneja registro, login, sesión y perfil del cliente.
type CustomerHandler struct {
	uc       *auth.AuthUseCase
	orders   *order.OrderUseCase
	sessions *Sessions
}

// NewCustomerHandler construye el handler del flujo customer.
func NewCustomerHandler(uc *auth.AuthUseCase, orders *order.OrderUseCase, sessions *Sessions) *CustomerHandler {
	return &CustomerHandler{uc: uc, orders: orders, sessions: sessions}
}

// HomePage GET /api/customer/home (requiere sesión)
func (h *CustomerHandler) HomePage(c *fiber.Ctx) error {
	account, err := h.uc.Account(h.sessions.CustomerID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// La cuenta de la sesión ya no existe: sesión huérfana.
			_ = h.sessions.LogOut(c)
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando la cuenta"})
	}
	return c.JSON(fiber.Map{
		"page": "customer-home",
		"name": account.GivenName + " " + account.FamilyName,
	})
}

// LoginPage GET /api/customer/login (solo anónimos)
func (h *CustomerHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "customer-login"})
}

// RegisterPage GET /api/customer/register (solo anónimos)
func (h *CustomerHandler) RegisterPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "customer-register"})
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, givenname, familyname"
// @Success      302
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customer/register [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if _, err := h.uc.Register(in); err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_EXISTS", Message: "ya existe una cuenta con ese email"})
		}
		if errors.Is(err, domain.ErrWeakPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WEAK_PASSWORD", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible crear la cuenta"})
	}
	// Contrato original: tras registrarse, el navegador vuelve al login.
	return c.Redirect(loginPath, fiber.StatusFound)
}

// Login godoc
// @Summary      Iniciar sesión de cliente
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/customer/login [post]
func (h *CustomerHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, customer, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible iniciar sesión"})
	}
	if err := h.sessions.LogIn(c, customer.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible establecer la sesión"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil (bearer)
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateRequest  true  "old_password, new_email?, new_password?"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/customer/update [post]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	customer := GetCustomer(c)
	if customer == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OldPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "old_password es requerido"})
	}
	out, err := h.uc.UpdateProfile(customer, in)
	if err != nil {
		// El mismatch del password corta aquí: nada después de esto se ejecuta.
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
		}
		if errors.Is(err, domain.ErrWeakPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WEAK_PASSWORD", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrAccountExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_EXISTS", Message: "ya existe una cuenta con ese email"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible actualizar la cuenta"})
	}
	return c.JSON(out)
}

// Logout DELETE /api/customer/logout: destruye la sesión y vuelve al login.
func (h *CustomerHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.LogOut(c); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible cerrar la sesión"})
	}
	return c.Redirect(loginPath, fiber.StatusFound)
}

// PlaceOrder POST /api/customer/order (bearer): crea un pedido "Preparing".
func (h *CustomerHandler) PlaceOrder(c *fiber.Ctx) error {
	customer := GetCustomer(c)
	if customer == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.orders.Place(c.Context(), customer.ID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "vendor_id e items son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "VENDOR_NOT_FOUND", Message: "la van no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible crear el pedido"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
