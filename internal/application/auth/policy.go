package auth

import (
	"fmt"
	"regexp"

	"github.com/jhoicas/snacksvan-api/internal/domain"
)

var (
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
)

// Policy política de passwords: declarativa (longitud + patrones) e independiente del
// hasher, así un cambio de política nunca toca bcrypt. Se evalúa antes de hashear.
type Policy struct {
	MinLength int
}

// DefaultPolicy la política vigente: mínimo 8 caracteres, al menos una letra y un número.
func DefaultPolicy() Policy {
	return Policy{MinLength: 8}
}

// Validate devuelve nil si el password cumple la política, o un error que envuelve
// domain.ErrWeakPassword con la razón.
func (p Policy) Validate(password string) error {
	if len(password) < p.MinLength {
		return fmt.Errorf("%w: debe tener al menos %d caracteres", domain.ErrWeakPassword, p.MinLength)
	}
	if !hasLetter.MatchString(password) {
		return fmt.Errorf("%w: debe contener al menos una letra", domain.ErrWeakPassword)
	}
	if !hasDigit.MatchString(password) {
		return fmt.Errorf("%w: debe contener al menos un número", domain.ErrWeakPassword)
	}
	return nil
}
