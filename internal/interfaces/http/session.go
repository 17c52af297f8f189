package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Rutas de redirección de los guards de sesión (flujo navegador del cliente).
const (
	loginPath = "/api/customer/login"
	homePath  = "/api/customer/home"
)

const sessionCustomerKey = "customer_id"

// Sessions maneja la sesión servidor del flujo customer: se crea en el login
// y se destruye en el logout. Ortogonal al bearer (flujo máquina-a-máquina).
type Sessions struct {
	store *session.Store
}

// NewSessions construye el gestor con expiración en minutos.
func NewSessions(expirationMinutes int) *Sessions {
	store := session.New(session.Config{
		Expiration:     time.Duration(expirationMinutes) * time.Minute,
		KeyLookup:      "cookie:snacksvan_session",
		CookieHTTPOnly: true,
	})
	return &Sessions{store: store}
}

// LogIn asocia la sesión del request al cliente. Regenera el ID de sesión.
func (s *Sessions) LogIn(c *fiber.Ctx, customerID string) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionCustomerKey, customerID)
	return sess.Save()
}

// LogOut destruye la sesión del request.
func (s *Sessions) LogOut(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// CustomerID devuelve el ID del cliente logueado, o "" si no hay sesión.
func (s *Sessions) CustomerID(c *fiber.Ctx) string {
	sess, err := s.store.Get(c)
	if err != nil {
		return ""
	}
	id, _ := sess.Get(sessionCustomerKey).(string)
	return id
}

// RequireCustomer deja pasar solo requests con sesión establecida;
// si no hay, redirige a la página de login.
func (s *Sessions) RequireCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.CustomerID(c) == "" {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireAnonymous bloquea las páginas de login/registro para quien ya tiene sesión,
// redirigiendo a la página de inicio.
func (s *Sessions) RequireAnonymous() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.CustomerID(c) != "" {
			return c.Redirect(homePath, fiber.StatusFound)
		}
		return c.Next()
	}
}
