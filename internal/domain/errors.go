package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidCredentials cubre tanto "email desconocido" como "password incorrecto":
	// un solo mensaje evita la enumeración de cuentas.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountExists      = errors.New("ya existe una cuenta con ese email")
	ErrWeakPassword       = errors.New("el password no cumple la política")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
)
