package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/snacksvan-api/internal/application/dto"
	"github.com/jhoicas/snacksvan-api/internal/application/order"
	"github.com/jhoicas/snacksvan-api/internal/application/vendor"
	"github.com/jhoicas/snacksvan-api/internal/domain"
)

// VendorHandler maneja la cuenta del vendedor, el estado de la van y sus pedidos.
type VendorHandler struct {
	uc     *vendor.VendorUseCase
	orders *order.OrderUseCase
}

// NewVendorHandler construye el handler del flujo vendor.
func NewVendorHandler(uc *vendor.VendorUseCase, orders *order.OrderUseCase) *VendorHandler {
	return &VendorHandler{uc: uc, orders: orders}
}

// Register godoc
// @Summary      Registrar vendedor
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendorRegisterRequest  true  "email, password, name"
// @Success      201   {object}  dto.VendorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendor/register [post]
func (h *VendorHandler) Register(c *fiber.Ctx) error {
	var in dto.VendorRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password y name son requeridos"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_EXISTS", Message: "ya existe una cuenta con ese email"})
		}
		if errors.Is(err, domain.ErrWeakPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WEAK_PASSWORD", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible crear la cuenta"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión de vendedor
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/vendor/login [post]
func (h *VendorHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible iniciar sesión"})
	}
	return c.JSON(out)
}

// Open POST /api/vendor/open (bearer): abre la van en la dirección indicada.
func (h *VendorHandler) Open(c *fiber.Ctx) error {
	vendorAccount := GetVendor(c)
	if vendorAccount == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.OpenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Open(vendorAccount.ID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible abrir la van"})
	}
	return c.JSON(out)
}

// Close POST /api/vendor/close (bearer). Idempotente: cerrar dos veces deja open=false igual.
func (h *VendorHandler) Close(c *fiber.Ctx) error {
	vendorAccount := GetVendor(c)
	if vendorAccount == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.Close(vendorAccount.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible cerrar la van"})
	}
	return c.JSON(out)
}

// Relocate POST /api/vendor/relocate (bearer): mueve la van a otra ubicación.
func (h *VendorHandler) Relocate(c *fiber.Ctx) error {
	vendorAccount := GetVendor(c)
	if vendorAccount == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RelocateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Relocate(vendorAccount.ID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible reubicar la van"})
	}
	return c.JSON(out)
}

// Orders GET /api/vendor/orders (bearer): pedidos "Preparing" de la van.
func (h *VendorHandler) Orders(c *fiber.Ctx) error {
	vendorAccount := GetVendor(c)
	if vendorAccount == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.orders.ListPreparing(vendorAccount.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible listar los pedidos"})
	}
	return c.JSON(list)
}

// Order GET /api/vendor/order/:orderID (bearer): detalle de un pedido.
func (h *VendorHandler) Order(c *fiber.Ctx) error {
	out, err := h.orders.Get(c.Params("orderID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el pedido no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible consultar el pedido"})
	}
	return c.JSON(out)
}

// FulfillOrder POST /api/vendor/fulfillOrder (bearer): marca el pedido "Ready for pickup".
func (h *VendorHandler) FulfillOrder(c *fiber.Ctx) error {
	var in dto.FulfillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Order == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order es requerido"})
	}
	out, err := h.orders.Fulfill(in.Order)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el pedido no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible actualizar el pedido"})
	}
	return c.JSON(out)
}
