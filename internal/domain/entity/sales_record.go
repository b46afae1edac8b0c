package entity

import (
	"time"
)

// SalesRecord representa una transacción de venta.
//
// El total (price × quantity) es un valor derivado: no se persiste y se
// recalcula en cada lectura y escritura vía Total(); nunca se confía en el
// valor enviado por el cliente.
type SalesRecord struct {
	ID          int64
	ProductName string    // requerido, ≤100
	Category    string    // requerido, ≤50
	Price       int64     // requerido, ≥0
	Quantity    int64     // requerido, ≥1
	SalesDate   time.Time // requerido, ≤ hoy (solo fecha)
	Salesperson string    // requerido, ≤50
	Region      string    // requerido, ≤50
	Status      string    // requerido, ≤20
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Total recalcula el monto de la venta. Único punto de cálculo del derivado.
func (s *SalesRecord) Total() int64 {
	return s.Price * s.Quantity
}

// Validate verifica las restricciones de campos de la venta respecto al
// instante now. Devuelve un error que envuelve domain.ErrValidation.
func (s *SalesRecord) Validate(now time.Time) error {
	if err := requireMaxLen("productName", s.ProductName, 100); err != nil {
		return err
	}
	if err := requireMaxLen("category", s.Category, 50); err != nil {
		return err
	}
	if s.Price < 0 {
		return validationErrorf("price debe ser mayor o igual a 0")
	}
	if s.Quantity < 1 {
		return validationErrorf("quantity debe ser mayor o igual a 1")
	}
	if s.SalesDate.IsZero() {
		return validationErrorf("salesDate es requerido")
	}
	if err := pastOrPresent("salesDate", s.SalesDate, now); err != nil {
		return err
	}
	if err := requireMaxLen("salesperson", s.Salesperson, 50); err != nil {
		return err
	}
	if err := requireMaxLen("region", s.Region, 50); err != nil {
		return err
	}
	return requireMaxLen("status", s.Status, 20)
}
