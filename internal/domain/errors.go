package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son recuperables:
// el llamador decide si reintenta o muestra el mensaje.
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
)
