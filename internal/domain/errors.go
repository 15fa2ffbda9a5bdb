package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrMissingParam = errors.New("parámetro requerido ausente")
	ErrInvalidInput = errors.New("entrada inválida")
)
