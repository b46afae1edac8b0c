package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/registros-api/internal/domain"
	"github.com/jhoicas/registros-api/internal/domain/entity"
	"github.com/jhoicas/registros-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, employee_number, name, ssn, department, position, hire_date, resignation_date,
	salary, email, phone, address, emergency_contact, emergency_relation, status, created_at, updated_at`

// List devuelve todos los empleados en orden de inserción (id ascendente).
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// GetByEmployeeNumber obtiene un empleado por su número. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByEmployeeNumber(ctx context.Context, number string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_number = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by number: %w", err)
	}
	return e, nil
}

// GetByEmail obtiene un empleado por email. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 AND email <> ''`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by email: %w", err)
	}
	return e, nil
}

// Create persiste un nuevo empleado y asigna el id generado por el almacén.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (employee_number, name, ssn, department, position, hire_date, resignation_date,
			salary, email, phone, address, emergency_contact, emergency_relation, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.EmployeeNumber, e.Name, e.SSN, e.Department, e.Position, e.HireDate, e.ResignationDate,
		e.Salary, e.Email, e.Phone, e.Address, e.EmergencyContact, e.EmergencyRelation, e.Status,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables del empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees
		SET employee_number = $2, name = $3, ssn = $4, department = $5, position = $6,
		    hire_date = $7, resignation_date = $8, salary = $9, email = $10, phone = $11,
		    address = $12, emergency_contact = $13, emergency_relation = $14, status = $15,
		    updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.EmployeeNumber, e.Name, e.SSN, e.Department, e.Position,
		e.HireDate, e.ResignationDate, e.Salary, e.Email, e.Phone,
		e.Address, e.EmergencyContact, e.EmergencyRelation, e.Status, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID. Devuelve false si el id no existía.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeNumber, &e.Name, &e.SSN, &e.Department, &e.Position,
		&e.HireDate, &e.ResignationDate, &e.Salary, &e.Email, &e.Phone,
		&e.Address, &e.EmergencyContact, &e.EmergencyRelation, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
