package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más la identidad de la cuenta.
// El token es opaco para el cliente: la validez NUNCA se decide por la firma sino por
// igualdad con el valor guardado en la cuenta (ver middleware bearer). El jti único
// garantiza que cada emisión produce un string distinto, así reemplazar el token
// almacenado revoca de inmediato todos los anteriores.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Issuer emite tokens de cuenta firmados con un secreto del servidor.
// El secreto se inyecta en la construcción, no es una constante de módulo.
type Issuer struct {
	secret string
	issuer string
}

// NewIssuer construye el emisor. Falla si el secreto está vacío.
func NewIssuer(secret, issuer string) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	return &Issuer{secret: secret, issuer: issuer}, nil
}

// Issue genera un token firmado para el email dado. No verifica credenciales:
// el caller debe haber autenticado antes de emitir.
func (i *Issuer) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.New().String(),
			Issuer:   i.issuer,
			Subject:  email,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Email: email,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(i.secret))
}

// Identity decodifica el token y devuelve el email embebido.
// Se usa para verificar la consistencia token<->cuenta, no para autenticar peticiones.
func (i *Issuer) Identity(tokenString string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(i.secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.Email, nil
}
