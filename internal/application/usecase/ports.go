package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/registros-api/internal/domain/repository"
)

// Clock devuelve el instante actual. Se inyecta en los casos de uso para que
// los timestamps sean deterministas en tests (reloj falso); en producción es
// time.Now.
type Clock func() time.Time

// TxRunner ejecuta un callback con repositorios atados a una única
// transacción del almacén. Las escrituras con invariante de unicidad (users
// por email, employees por employeeNumber/email) usan su Run* para que el
// chequeo de unicidad y la escritura posterior observen un snapshot
// consistente y no haya carrera check-then-act entre inserciones
// concurrentes; el índice único del almacén es el respaldo final. Las ventas
// no tienen invariante de unicidad y escriben directo al repositorio.
type TxRunner interface {
	RunUsers(ctx context.Context, fn func(repository.UserRepository) error) error
	RunEmployees(ctx context.Context, fn func(repository.EmployeeRepository) error) error
}
