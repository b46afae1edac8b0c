package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los tres son recuperables en la capa de transporte: ninguno aborta el
// proceso. Se envuelven con fmt.Errorf("...: %w", Err...) para dar contexto.
var (
	// ErrNotFound el id o la clave referenciada no existe.
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrDuplicate se violó un invariante de unicidad en create/update.
	ErrDuplicate = errors.New("recurso duplicado")
	// ErrValidation campo requerido ausente, o restricción de longitud/rango/formato violada.
	ErrValidation = errors.New("entrada inválida")
)
