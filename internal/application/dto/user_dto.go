package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRequest carga de create y update de usuarios. El update es un reemplazo
// total: todos los campos mutables se sobreescriben con estos valores.
type UserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
}

// UserResponse representación de salida de un usuario.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserFilter criterios opcionales de búsqueda; nil = sin restricción.
type UserFilter struct {
	Name   *string
	Gender *string
	MinAge *int
	MaxAge *int
}

// UserStatistics resumen fijo de la colección de usuarios. AverageAge ignora
// usuarios sin edad; Male/FemaleCount cuentan solo los valores exactos
// "male" y "female".
type UserStatistics struct {
	TotalCount  int             `json:"totalCount"`
	AverageAge  decimal.Decimal `json:"averageAge"`
	MaleCount   int             `json:"maleCount"`
	FemaleCount int             `json:"femaleCount"`
}
