package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRequest carga de create y update de ventas. No admite total: el total
// es derivado y se recalcula siempre en el servidor.
type SalesRequest struct {
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
	SalesDate   string `json:"salesDate"` // formato DateLayout
	Salesperson string `json:"salesperson"`
	Region      string `json:"region"`
	Status      string `json:"status"`
}

// SalesResponse representación de salida de una venta. Total siempre es
// price × quantity recalculado.
type SalesResponse struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"productName"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	Quantity    int64     `json:"quantity"`
	Total       int64     `json:"total"`
	SalesDate   string    `json:"salesDate"`
	Salesperson string    `json:"salesperson"`
	Region      string    `json:"region"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SalesFilter criterios opcionales de búsqueda; nil = sin restricción.
// Un rango invertido (min > max) produce lista vacía, no error.
type SalesFilter struct {
	ProductName *string
	Category    *string
	Region      *string
	Status      *string
	Salesperson *string
	MinPrice    *int64
	MaxPrice    *int64
	StartDate   *time.Time
	EndDate     *time.Time
}

// SalesStatistics resumen fijo sobre todas las ventas, sin importar status.
type SalesStatistics struct {
	TotalCount   int             `json:"totalCount"`
	TotalSales   int64           `json:"totalSales"`
	AverageSales decimal.Decimal `json:"averageSales"`
	MaxSales     int64           `json:"maxSales"`
	MinSales     int64           `json:"minSales"`
}

// MonthlySales total vendido en un mes calendario.
type MonthlySales struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Total int64 `json:"total"`
}
