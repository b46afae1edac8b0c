package dto

// DateLayout formato de las fechas de negocio en la API (solo fecha).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GroupCountDTO conteo por clave de grupo (género, departamento, franja…).
type GroupCountDTO struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// GroupTotalDTO suma por clave de grupo (ventas por categoría, región…).
type GroupTotalDTO struct {
	Key   string `json:"key"`
	Total int64  `json:"total"`
}
