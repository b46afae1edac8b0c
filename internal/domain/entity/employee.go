package entity

import (
	"time"
)

// Estados laborales de un empleado.
//
// Solo active y resigned son alcanzables por las operaciones dedicadas
// Resign/Rehire; on-leave solo se alcanza por el update genérico.
const (
	StatusActive   = "active"
	StatusOnLeave  = "on-leave"
	StatusResigned = "resigned"
)

// Employee representa un empleado de la empresa.
//
// employeeNumber es único global; email, si no está vacío, también.
// ResignationDate debería ser no-nula exactamente cuando Status es resigned,
// pero el update genérico de reemplazo total puede desincronizarlos (brecha
// conocida del diseño, ver EmployeeUseCase.Update).
type Employee struct {
	ID                int64
	EmployeeNumber    string     // requerido, único, ≤20
	Name              string     // requerido, ≤50
	SSN               string     // requerido, ≤20
	Department        string     // requerido, ≤50
	Position          string     // requerido, ≤50
	HireDate          time.Time  // requerido, ≤ hoy
	ResignationDate   *time.Time // opcional, ≤ hoy cuando está presente
	Salary            int64      // requerido, ≥0
	Email             string     // opcional, formato email y único si no vacío, ≤100
	Phone             string     // opcional, ≤20
	Address           string     // opcional, ≤200
	EmergencyContact  string     // opcional, ≤20
	EmergencyRelation string     // opcional, ≤20
	Status            string     // requerido: active | on-leave | resigned
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive indica si el empleado está en estado active.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// Validate verifica las restricciones de campos del empleado respecto al
// instante now. Devuelve un error que envuelve domain.ErrValidation.
func (e *Employee) Validate(now time.Time) error {
	if err := requireMaxLen("employeeNumber", e.EmployeeNumber, 20); err != nil {
		return err
	}
	if err := requireMaxLen("name", e.Name, 50); err != nil {
		return err
	}
	if err := requireMaxLen("ssn", e.SSN, 20); err != nil {
		return err
	}
	if err := requireMaxLen("department", e.Department, 50); err != nil {
		return err
	}
	if err := requireMaxLen("position", e.Position, 50); err != nil {
		return err
	}
	if e.HireDate.IsZero() {
		return validationErrorf("hireDate es requerido")
	}
	if err := pastOrPresent("hireDate", e.HireDate, now); err != nil {
		return err
	}
	if e.ResignationDate != nil {
		if err := pastOrPresent("resignationDate", *e.ResignationDate, now); err != nil {
			return err
		}
	}
	if e.Salary < 0 {
		return validationErrorf("salary debe ser mayor o igual a 0")
	}
	if e.Email != "" {
		if err := maxLen("email", e.Email, 100); err != nil {
			return err
		}
		if err := validEmail("email", e.Email); err != nil {
			return err
		}
	}
	if err := maxLen("phone", e.Phone, 20); err != nil {
		return err
	}
	if err := maxLen("address", e.Address, 200); err != nil {
		return err
	}
	if err := maxLen("emergencyContact", e.EmergencyContact, 20); err != nil {
		return err
	}
	if err := maxLen("emergencyRelation", e.EmergencyRelation, 20); err != nil {
		return err
	}
	switch e.Status {
	case StatusActive, StatusOnLeave, StatusResigned:
		return nil
	default:
		return validationErrorf("status debe ser active, on-leave o resigned")
	}
}
