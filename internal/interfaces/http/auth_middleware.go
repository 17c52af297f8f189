package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/snacksvan-api/internal/application/dto"
	"github.com/jhoicas/snacksvan-api/internal/domain/entity"
	"github.com/jhoicas/snacksvan-api/internal/domain/repository"
)

// Locals keys para la cuenta resuelta del bearer en Fiber.
const (
	LocalCustomer = "customer"
	LocalVendor   = "vendor"
)

// bearerToken extrae el token del header Authorization ("Bearer <token>").
func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

// CustomerBearer valida el bearer token contra el store: la cuenta cuyo token vigente
// es EXACTAMENTE el presentado. No se verifica la firma: el token es una capability
// revocable y reemplazar el valor almacenado invalida todos los anteriores.
func CustomerBearer(customers repository.CustomerRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "formato: Bearer <token>"})
		}
		customer, err := customers.GetByToken(tok)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando credenciales"})
		}
		if customer == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		c.Locals(LocalCustomer, customer)
		return c.Next()
	}
}

// VendorBearer igual que CustomerBearer pero resuelve contra las cuentas de vendedor.
func VendorBearer(vendors repository.VendorRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "formato: Bearer <token>"})
		}
		vendor, err := vendors.GetByToken(tok)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando credenciales"})
		}
		if vendor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		c.Locals(LocalVendor, vendor)
		return c.Next()
	}
}

// GetCustomer devuelve la cuenta del contexto (después de CustomerBearer).
func GetCustomer(c *fiber.Ctx) *entity.Customer {
	v := c.Locals(LocalCustomer)
	if v == nil {
		return nil
	}
	customer, _ := v.(*entity.Customer)
	return customer
}

// GetVendor devuelve la cuenta del contexto (después de VendorBearer).
func GetVendor(c *fiber.Ctx) *entity.Vendor {
	v := c.Locals(LocalVendor)
	if v == nil {
		return nil
	}
	vendor, _ := v.(*entity.Vendor)
	return vendor
}
