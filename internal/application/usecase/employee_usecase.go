package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/registros-api/internal/application/dto"
	"github.com/jhoicas/registros-api/internal/domain"
	"github.com/jhoicas/registros-api/internal/domain/collection"
	"github.com/jhoicas/registros-api/internal/domain/entity"
	"github.com/jhoicas/registros-api/internal/domain/repository"
)

// EmployeeUseCase implementa las operaciones sobre empleados: CRUD con doble
// unicidad (employeeNumber y email no vacío), ciclo de vida resign/rehire,
// búsqueda filtrada y estadísticas de plantilla.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	tx   TxRunner
	now  Clock
}

// NewEmployeeUseCase crea el caso de uso de empleados. Si now es nil usa
// time.Now.
func NewEmployeeUseCase(repo repository.EmployeeRepository, tx TxRunner, now Clock) *EmployeeUseCase {
	if now == nil {
		now = time.Now
	}
	return &EmployeeUseCase{repo: repo, tx: tx, now: now}
}

// Create registra un empleado nuevo. employeeNumber debe ser único global;
// email, si no está vacío, también. Chequeos e inserción en una transacción.
func (uc *EmployeeUseCase) Create(ctx context.Context, req dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	now := uc.now()
	e, err := uc.buildEmployee(req, now)
	if err != nil {
		return nil, err
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	err = uc.tx.RunEmployees(ctx, func(repo repository.EmployeeRepository) error {
		if err := uc.checkUnique(ctx, repo, e, 0); err != nil {
			return err
		}
		return repo.Create(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// GetByID obtiene un empleado por su identificador.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("empleado %d: %w", id, domain.ErrNotFound)
	}
	return toEmployeeResponse(e), nil
}

// GetByEmployeeNumber obtiene un empleado por su número de empleado.
func (uc *EmployeeUseCase) GetByEmployeeNumber(ctx context.Context, number string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByEmployeeNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("empleado %s: %w", number, domain.ErrNotFound)
	}
	return toEmployeeResponse(e), nil
}

// GetByEmail obtiene un empleado por su email exacto. El email vacío nunca
// identifica a nadie.
func (uc *EmployeeUseCase) GetByEmail(ctx context.Context, email string) (*dto.EmployeeResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("empleado sin email: %w", domain.ErrNotFound)
	}
	e, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("empleado %s: %w", email, domain.ErrNotFound)
	}
	return toEmployeeResponse(e), nil
}

// List devuelve todos los empleados en orden de inserción.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]*dto.EmployeeResponse, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(employees), nil
}

// Update reemplaza por completo los campos mutables del empleado id con los
// de req, incluidos status y resignationDate de forma independiente. Esto
// permite dejarlos incoherentes (status active con resignationDate puesta, o
// resigned sin fecha); el update genérico no impone la coherencia que sí
// garantizan Resign y Rehire.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, req dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	var updated *entity.Employee
	err := uc.tx.RunEmployees(ctx, func(repo repository.EmployeeRepository) error {
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("empleado %d: %w", id, domain.ErrNotFound)
		}
		now := uc.now()
		e, err := uc.buildEmployee(req, now)
		if err != nil {
			return err
		}
		e.ID = id
		e.CreatedAt = current.CreatedAt
		e.UpdatedAt = now
		if err := uc.checkUnique(ctx, repo, e, id); err != nil {
			return err
		}
		if err := repo.Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(updated), nil
}

// Delete elimina el empleado id. Borrar un id inexistente es ErrNotFound.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("empleado %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Resign marca al empleado como resigned con la fecha dada, sin importar su
// estado previo (renunciar dos veces solo actualiza la fecha). La fecha no
// puede ser futura.
func (uc *EmployeeUseCase) Resign(ctx context.Context, id int64, date time.Time) (*dto.EmployeeResponse, error) {
	if date.After(uc.now()) {
		return nil, fmt.Errorf("resignationDate no puede ser futura: %w", domain.ErrValidation)
	}
	return uc.transition(ctx, id, entity.StatusResigned, &date)
}

// Rehire reincorpora al empleado: estado active y resignationDate en blanco,
// sin importar su estado previo.
func (uc *EmployeeUseCase) Rehire(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	return uc.transition(ctx, id, entity.StatusActive, nil)
}

func (uc *EmployeeUseCase) transition(ctx context.Context, id int64, status string, date *time.Time) (*dto.EmployeeResponse, error) {
	var updated *entity.Employee
	err := uc.tx.RunEmployees(ctx, func(repo repository.EmployeeRepository) error {
		e, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("empleado %d: %w", id, domain.ErrNotFound)
		}
		e.Status = status
		e.ResignationDate = date
		e.UpdatedAt = uc.now()
		if err := repo.Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(updated), nil
}

// Filter devuelve los empleados que cumplen todos los criterios presentes en
// f. Un filtro vacío devuelve la plantilla completa.
func (uc *EmployeeUseCase) Filter(ctx context.Context, f dto.EmployeeFilter) ([]*dto.EmployeeResponse, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var preds []collection.Predicate[*entity.Employee]
	if f.Name != nil {
		preds = append(preds, collection.ContainsFold(employeeName, *f.Name))
	}
	if f.Department != nil {
		preds = append(preds, collection.Equals(employeeDepartment, *f.Department))
	}
	if f.Position != nil {
		preds = append(preds, collection.Equals(employeePosition, *f.Position))
	}
	if f.Status != nil {
		preds = append(preds, collection.Equals(employeeStatus, *f.Status))
	}
	if f.MinSalary != nil {
		preds = append(preds, collection.AtLeast(employeeSalary, *f.MinSalary))
	}
	if f.MaxSalary != nil {
		preds = append(preds, collection.AtMost(employeeSalary, *f.MaxSalary))
	}
	if f.HireStart != nil {
		preds = append(preds, collection.NotBefore(employeeHireDate, *f.HireStart))
	}
	if f.HireEnd != nil {
		preds = append(preds, collection.NotAfter(employeeHireDate, *f.HireEnd))
	}
	return toEmployeeResponses(collection.Apply(employees, preds...)), nil
}

// SearchByName busca por subcadena del nombre sin distinguir mayúsculas.
func (uc *EmployeeUseCase) SearchByName(ctx context.Context, name string) ([]*dto.EmployeeResponse, error) {
	return uc.Filter(ctx, dto.EmployeeFilter{Name: &name})
}

// ByDepartment devuelve los empleados del departamento exacto indicado.
func (uc *EmployeeUseCase) ByDepartment(ctx context.Context, department string) ([]*dto.EmployeeResponse, error) {
	return uc.Filter(ctx, dto.EmployeeFilter{Department: &department})
}

// ByPosition devuelve los empleados del cargo exacto indicado.
func (uc *EmployeeUseCase) ByPosition(ctx context.Context, position string) ([]*dto.EmployeeResponse, error) {
	return uc.Filter(ctx, dto.EmployeeFilter{Position: &position})
}

// ByStatus devuelve los empleados con el estado exacto indicado.
func (uc *EmployeeUseCase) ByStatus(ctx context.Context, status string) ([]*dto.EmployeeResponse, error) {
	return uc.Filter(ctx, dto.EmployeeFilter{Status: &status})
}

// BySalaryRange devuelve los empleados con salario en [min, max].
func (uc *EmployeeUseCase) BySalaryRange(ctx context.Context, min, max int64) ([]*dto.EmployeeResponse, error) {
	return uc.Filter(ctx, dto.EmployeeFilter{MinSalary: &min, MaxSalary: &max})
}

// ByHireDateRange devuelve los empleados contratados en [start, end].
func (uc *EmployeeUseCase) ByHireDateRange(ctx context.Context, start, end time.Time) ([]*dto.EmployeeResponse, error) {
	return uc.Filter(ctx, dto.EmployeeFilter{HireStart: &start, HireEnd: &end})
}

// Recent devuelve los n empleados de contratación más reciente.
func (uc *EmployeeUseCase) Recent(ctx context.Context, n int) ([]*dto.EmployeeResponse, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	recent := collection.RecentBy(employees, employeeHireDate, n)
	return toEmployeeResponses(recent), nil
}

// ResignationScheduled devuelve los empleados con fecha de renuncia cargada
// pero todavía en estado active (renuncias programadas o datos
// desincronizados por el update genérico).
func (uc *EmployeeUseCase) ResignationScheduled(ctx context.Context) ([]*dto.EmployeeResponse, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	scheduled := collection.Apply(employees, func(e *entity.Employee) bool {
		return e.ResignationDate != nil && e.IsActive()
	})
	return toEmployeeResponses(scheduled), nil
}

// Statistics calcula el resumen de plantilla. ResignedCount es total −
// active: on-leave queda contado como resigned en este resumen. Las cifras
// de salario cubren solo los empleados active y valen 0 sin ninguno.
func (uc *EmployeeUseCase) Statistics(ctx context.Context) (*dto.EmployeeStatistics, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	salaries := collection.Summarize(employees, activeSalary)
	return &dto.EmployeeStatistics{
		TotalCount:    len(employees),
		ActiveCount:   salaries.Count,
		ResignedCount: len(employees) - salaries.Count,
		AverageSalary: salaries.Average,
		MaxSalary:     salaries.Max,
		MinSalary:     salaries.Min,
	}, nil
}

// SalaryStatistics calcula las estadísticas de salario sobre los empleados
// active.
func (uc *EmployeeUseCase) SalaryStatistics(ctx context.Context) (*dto.SalarySummary, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	salaries := collection.Summarize(employees, activeSalary)
	return &dto.SalarySummary{
		AverageSalary: salaries.Average,
		MaxSalary:     salaries.Max,
		MinSalary:     salaries.Min,
		ActiveCount:   salaries.Count,
	}, nil
}

// DepartmentCounts cuenta los empleados active por departamento, orden
// descendente por conteo.
func (uc *EmployeeUseCase) DepartmentCounts(ctx context.Context) ([]dto.GroupCountDTO, error) {
	return uc.activeCounts(ctx, employeeDepartment)
}

// PositionCounts cuenta los empleados active por cargo.
func (uc *EmployeeUseCase) PositionCounts(ctx context.Context) ([]dto.GroupCountDTO, error) {
	return uc.activeCounts(ctx, employeePosition)
}

func (uc *EmployeeUseCase) activeCounts(ctx context.Context, key func(*entity.Employee) string) ([]dto.GroupCountDTO, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups := collection.CountBy(employees, func(e *entity.Employee) (string, bool) {
		return key(e), e.IsActive()
	})
	return toGroupCounts(groups), nil
}

// StatusCounts cuenta los empleados por estado, sobre toda la plantilla.
func (uc *EmployeeUseCase) StatusCounts(ctx context.Context) ([]dto.GroupCountDTO, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups := collection.CountBy(employees, func(e *entity.Employee) (string, bool) {
		return e.Status, true
	})
	return toGroupCounts(groups), nil
}

// TenureDistribution agrupa los empleados active por franja de antigüedad,
// calculada por resta de años calendario contra el año actual.
func (uc *EmployeeUseCase) TenureDistribution(ctx context.Context) ([]dto.GroupCountDTO, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	year := uc.now().Year()
	groups := collection.CountBy(employees, func(e *entity.Employee) (string, bool) {
		return collection.TenureBucket(year, e.HireDate.Year()), e.IsActive()
	})
	return toGroupCounts(groups), nil
}

// checkUnique verifica employeeNumber y email contra otros empleados. selfID
// es 0 en create; en update excluye al propio registro.
func (uc *EmployeeUseCase) checkUnique(ctx context.Context, repo repository.EmployeeRepository, e *entity.Employee, selfID int64) error {
	other, err := repo.GetByEmployeeNumber(ctx, e.EmployeeNumber)
	if err != nil {
		return fmt.Errorf("error verificando employeeNumber: %w", err)
	}
	if other != nil && other.ID != selfID {
		return fmt.Errorf("employeeNumber %s ya registrado: %w", e.EmployeeNumber, domain.ErrDuplicate)
	}
	if e.Email != "" {
		other, err := repo.GetByEmail(ctx, e.Email)
		if err != nil {
			return fmt.Errorf("error verificando email: %w", err)
		}
		if other != nil && other.ID != selfID {
			return fmt.Errorf("email %s ya registrado: %w", e.Email, domain.ErrDuplicate)
		}
	}
	return nil
}

func (uc *EmployeeUseCase) buildEmployee(req dto.EmployeeRequest, now time.Time) (*entity.Employee, error) {
	hireDate, err := parseDate("hireDate", req.HireDate)
	if err != nil {
		return nil, err
	}
	var resignationDate *time.Time
	if req.ResignationDate != nil {
		d, err := parseDate("resignationDate", *req.ResignationDate)
		if err != nil {
			return nil, err
		}
		resignationDate = &d
	}
	e := &entity.Employee{
		EmployeeNumber:    req.EmployeeNumber,
		Name:              req.Name,
		SSN:               req.SSN,
		Department:        req.Department,
		Position:          req.Position,
		HireDate:          hireDate,
		ResignationDate:   resignationDate,
		Salary:            req.Salary,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		EmergencyContact:  req.EmergencyContact,
		EmergencyRelation: req.EmergencyRelation,
		Status:            req.Status,
	}
	if err := e.Validate(now); err != nil {
		return nil, err
	}
	return e, nil
}

func employeeName(e *entity.Employee) string       { return e.Name }
func employeeDepartment(e *entity.Employee) string { return e.Department }
func employeePosition(e *entity.Employee) string   { return e.Position }
func employeeStatus(e *entity.Employee) string     { return e.Status }

func employeeSalary(e *entity.Employee) (int64, bool) { return e.Salary, true }
func employeeHireDate(e *entity.Employee) time.Time   { return e.HireDate }

func activeSalary(e *entity.Employee) (int64, bool) { return e.Salary, e.IsActive() }

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:                e.ID,
		EmployeeNumber:    e.EmployeeNumber,
		Name:              e.Name,
		SSN:               e.SSN,
		Department:        e.Department,
		Position:          e.Position,
		HireDate:          formatDate(e.HireDate),
		ResignationDate:   formatDatePtr(e.ResignationDate),
		Salary:            e.Salary,
		Email:             e.Email,
		Phone:             e.Phone,
		Address:           e.Address,
		EmergencyContact:  e.EmergencyContact,
		EmergencyRelation: e.EmergencyRelation,
		Status:            e.Status,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toEmployeeResponses(employees []*entity.Employee) []*dto.EmployeeResponse {
	out := make([]*dto.EmployeeResponse, len(employees))
	for i, e := range employees {
		out[i] = toEmployeeResponse(e)
	}
	return out
}
