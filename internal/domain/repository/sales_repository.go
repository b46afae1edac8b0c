package repository

import (
	"context"

	"github.com/jhoicas/registros-api/internal/domain/entity"
)

// SalesRepository define el puerto de persistencia para SalesRecord.
// El total derivado (price × quantity) nunca se persiste: se recalcula en la
// entidad en cada lectura y escritura.
type SalesRepository interface {
	List(ctx context.Context) ([]*entity.SalesRecord, error)
	GetByID(ctx context.Context, id int64) (*entity.SalesRecord, error)
	Create(ctx context.Context, s *entity.SalesRecord) error
	Update(ctx context.Context, s *entity.SalesRecord) error
	Delete(ctx context.Context, id int64) (bool, error)
}
