package repository

import (
	"context"

	"github.com/jhoicas/registros-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
//
// Los Get* devuelven (nil, nil) cuando no hay fila; el caso de uso decide si
// eso es ErrNotFound. List es el escaneo completo en orden de inserción
// (id ascendente); sobre él trabaja el motor de filtrado.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Create persiste el usuario y asigna u.ID con la identidad del almacén.
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	// Delete devuelve false si el id no existía.
	Delete(ctx context.Context, id int64) (bool, error)
}
