package repository

import (
	"context"

	"github.com/jhoicas/registros-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
//
// GetByEmployeeNumber y GetByEmail sirven a los chequeos de unicidad del
// ciclo de vida; devuelven (nil, nil) cuando no hay fila.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	GetByEmployeeNumber(ctx context.Context, number string) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	Create(ctx context.Context, e *entity.Employee) error
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id int64) (bool, error)
}
