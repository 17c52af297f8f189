package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/snacksvan-api/internal/application/auth"
	"github.com/jhoicas/snacksvan-api/internal/application/order"
	"github.com/jhoicas/snacksvan-api/internal/application/vendor"
	"github.com/jhoicas/snacksvan-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	VendorUC     *vendor.VendorUseCase
	OrderUC      *order.OrderUseCase
	CustomerRepo repository.CustomerRepository
	VendorRepo   repository.VendorRepository
	Sessions     *Sessions
}

// Router registra las rutas de los dos backends (customer y vendor).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// ----- Customer (navegador: sesión; API: bearer) -----
	customer := api.Group("/customer")
	customerHandler := NewCustomerHandler(deps.AuthUC, deps.OrderUC, deps.Sessions)

	customer.Get("/home", deps.Sessions.RequireCustomer(), customerHandler.HomePage)
	customer.Get("/login", deps.Sessions.RequireAnonymous(), customerHandler.LoginPage)
	customer.Get("/register", deps.Sessions.RequireAnonymous(), customerHandler.RegisterPage)
	customer.Post("/login", customerHandler.Login)
	customer.Post("/register", deps.Sessions.RequireAnonymous(), customerHandler.Register)
	customer.Delete("/logout", customerHandler.Logout)

	// Flujo máquina-a-máquina: token resuelto por lookup en el store.
	customer.Post("/update", CustomerBearer(deps.CustomerRepo), customerHandler.Update)
	customer.Post("/order", CustomerBearer(deps.CustomerRepo), customerHandler.PlaceOrder)

	// ----- Vendor (solo bearer) -----
	vendorGroup := api.Group("/vendor")
	vendorHandler := NewVendorHandler(deps.VendorUC, deps.OrderUC)

	vendorGroup.Post("/register", vendorHandler.Register)
	vendorGroup.Post("/login", vendorHandler.Login)

	protected := vendorGroup.Group("/", VendorBearer(deps.VendorRepo))
	protected.Post("/open", vendorHandler.Open)
	protected.Post("/close", vendorHandler.Close)
	protected.Post("/relocate", vendorHandler.Relocate)
	protected.Get("/orders", vendorHandler.Orders)
	protected.Get("/order/:orderID", vendorHandler.Order)
	protected.Post("/fulfillOrder", vendorHandler.FulfillOrder)
}
