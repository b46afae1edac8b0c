package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest carga de create y update de empleados (reemplazo total).
// Las fechas usan DateLayout; resignationDate nula u omitida = sin renuncia.
type EmployeeRequest struct {
	EmployeeNumber    string  `json:"employeeNumber"`
	Name              string  `json:"name"`
	SSN               string  `json:"ssn"`
	Department        string  `json:"department"`
	Position          string  `json:"position"`
	HireDate          string  `json:"hireDate"`
	ResignationDate   *string `json:"resignationDate"`
	Salary            int64   `json:"salary"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	EmergencyContact  string  `json:"emergencyContact"`
	EmergencyRelation string  `json:"emergencyRelation"`
	Status            string  `json:"status"`
}

// EmployeeResponse representación de salida de un empleado.
type EmployeeResponse struct {
	ID                int64     `json:"id"`
	EmployeeNumber    string    `json:"employeeNumber"`
	Name              string    `json:"name"`
	SSN               string    `json:"ssn"`
	Department        string    `json:"department"`
	Position          string    `json:"position"`
	HireDate          string    `json:"hireDate"`
	ResignationDate   *string   `json:"resignationDate"`
	Salary            int64     `json:"salary"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Address           string    `json:"address,omitempty"`
	EmergencyContact  string    `json:"emergencyContact,omitempty"`
	EmergencyRelation string    `json:"emergencyRelation,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// EmployeeFilter criterios opcionales de búsqueda; nil = sin restricción.
type EmployeeFilter struct {
	Name       *string
	Department *string
	Position   *string
	Status     *string
	MinSalary  *int64
	MaxSalary  *int64
	HireStart  *time.Time
	HireEnd    *time.Time
}

// EmployeeStatistics resumen fijo de la plantilla. ResignedCount es
// total − active: cualquier estado distinto de active (incluido on-leave)
// cuenta como resigned en este resumen. Las cifras de salario se calculan
// solo sobre empleados active y valen 0 cuando no hay ninguno.
type EmployeeStatistics struct {
	TotalCount    int             `json:"totalCount"`
	ActiveCount   int             `json:"activeCount"`
	ResignedCount int             `json:"resignedCount"`
	AverageSalary decimal.Decimal `json:"averageSalary"`
	MaxSalary     int64           `json:"maxSalary"`
	MinSalary     int64           `json:"minSalary"`
}

// SalarySummary estadísticas de salario sobre los empleados active.
type SalarySummary struct {
	AverageSalary decimal.Decimal `json:"averageSalary"`
	MaxSalary     int64           `json:"maxSalary"`
	MinSalary     int64           `json:"minSalary"`
	ActiveCount   int             `json:"activeCount"`
}
