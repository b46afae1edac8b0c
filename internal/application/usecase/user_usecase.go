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

// UserUseCase implementa las operaciones de negocio sobre usuarios: CRUD con
// unicidad de email, búsqueda filtrada y estadísticas.
type UserUseCase struct {
	repo repository.UserRepository
	tx   TxRunner
	now  Clock
}

// NewUserUseCase crea el caso de uso de usuarios. Si now es nil usa time.Now.
func NewUserUseCase(repo repository.UserRepository, tx TxRunner, now Clock) *UserUseCase {
	if now == nil {
		now = time.Now
	}
	return &UserUseCase{repo: repo, tx: tx, now: now}
}

// Create registra un usuario nuevo. El email debe ser único; el chequeo y la
// inserción corren en una sola transacción.
func (uc *UserUseCase) Create(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error) {
	now := uc.now()
	u := &entity.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Age:       req.Age,
		Gender:    req.Gender,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	err := uc.tx.RunUsers(ctx, func(repo repository.UserRepository) error {
		existing, err := repo.GetByEmail(ctx, u.Email)
		if err != nil {
			return fmt.Errorf("error verificando email: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("email %s ya registrado: %w", u.Email, domain.ErrDuplicate)
		}
		return repo.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// GetByID obtiene un usuario por su identificador.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("usuario %d: %w", id, domain.ErrNotFound)
	}
	return toUserResponse(u), nil
}

// GetByEmail obtiene un usuario por su email exacto.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("usuario %s: %w", email, domain.ErrNotFound)
	}
	return toUserResponse(u), nil
}

// List devuelve todos los usuarios en orden de inserción.
func (uc *UserUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// Update reemplaza por completo los campos mutables del usuario id con los de
// req. CreatedAt se conserva y UpdatedAt se refresca; si el email cambia se
// re-verifica su unicidad dentro de la misma transacción.
func (uc *UserUseCase) Update(ctx context.Context, id int64, req dto.UserRequest) (*dto.UserResponse, error) {
	var updated *entity.User
	err := uc.tx.RunUsers(ctx, func(repo repository.UserRepository) error {
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("usuario %d: %w", id, domain.ErrNotFound)
		}
		u := &entity.User{
			ID:        id,
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Age:       req.Age,
			Gender:    req.Gender,
			CreatedAt: current.CreatedAt,
			UpdatedAt: uc.now(),
		}
		if err := u.Validate(); err != nil {
			return err
		}
		if u.Email != current.Email {
			other, err := repo.GetByEmail(ctx, u.Email)
			if err != nil {
				return fmt.Errorf("error verificando email: %w", err)
			}
			if other != nil && other.ID != id {
				return fmt.Errorf("email %s ya registrado: %w", u.Email, domain.ErrDuplicate)
			}
		}
		if err := repo.Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(updated), nil
}

// Delete elimina el usuario id. Borrar un id inexistente es ErrNotFound.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("usuario %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Filter devuelve los usuarios que cumplen todos los criterios presentes en
// f. Un filtro vacío devuelve la colección completa; un rango invertido
// produce lista vacía, no error.
func (uc *UserUseCase) Filter(ctx context.Context, f dto.UserFilter) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var preds []collection.Predicate[*entity.User]
	if f.Name != nil {
		preds = append(preds, collection.ContainsFold(userName, *f.Name))
	}
	if f.Gender != nil {
		preds = append(preds, collection.Equals(userGender, *f.Gender))
	}
	if f.MinAge != nil {
		preds = append(preds, collection.AtLeast(userAge, *f.MinAge))
	}
	if f.MaxAge != nil {
		preds = append(preds, collection.AtMost(userAge, *f.MaxAge))
	}
	return toUserResponses(collection.Apply(users, preds...)), nil
}

// SearchByName busca por subcadena del nombre sin distinguir mayúsculas.
func (uc *UserUseCase) SearchByName(ctx context.Context, name string) ([]*dto.UserResponse, error) {
	return uc.Filter(ctx, dto.UserFilter{Name: &name})
}

// ByGender devuelve los usuarios con el género exacto indicado.
func (uc *UserUseCase) ByGender(ctx context.Context, gender string) ([]*dto.UserResponse, error) {
	return uc.Filter(ctx, dto.UserFilter{Gender: &gender})
}

// ByAgeRange devuelve los usuarios con edad en [min, max]. Los usuarios sin
// edad informada nunca cumplen un criterio de rango.
func (uc *UserUseCase) ByAgeRange(ctx context.Context, min, max int) ([]*dto.UserResponse, error) {
	return uc.Filter(ctx, dto.UserFilter{MinAge: &min, MaxAge: &max})
}

// Recent devuelve los n usuarios creados más recientemente, el más nuevo
// primero.
func (uc *UserUseCase) Recent(ctx context.Context, n int) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	recent := collection.RecentBy(users, func(u *entity.User) time.Time { return u.CreatedAt }, n)
	return toUserResponses(recent), nil
}

// Statistics calcula el resumen de la colección: total, edad promedio (solo
// usuarios con edad) y conteos exactos de male/female.
func (uc *UserUseCase) Statistics(ctx context.Context) (*dto.UserStatistics, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ages := collection.Summarize(users, func(u *entity.User) (int64, bool) {
		if u.Age == nil {
			return 0, false
		}
		return int64(*u.Age), true
	})
	stats := &dto.UserStatistics{
		TotalCount: len(users),
		AverageAge: ages.Average,
	}
	for _, u := range users {
		switch u.Gender {
		case "male":
			stats.MaleCount++
		case "female":
			stats.FemaleCount++
		}
	}
	return stats, nil
}

// GenderCounts agrupa los usuarios por género, orden descendente por conteo.
// Los usuarios sin género se excluyen.
func (uc *UserUseCase) GenderCounts(ctx context.Context) ([]dto.GroupCountDTO, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups := collection.CountBy(users, func(u *entity.User) (string, bool) {
		return u.Gender, u.Gender != ""
	})
	return toGroupCounts(groups), nil
}

// AgeDistribution agrupa los usuarios por franja de edad (teens, 20s, …).
// Los usuarios sin edad informada se excluyen.
func (uc *UserUseCase) AgeDistribution(ctx context.Context) ([]dto.GroupCountDTO, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups := collection.CountBy(users, func(u *entity.User) (string, bool) {
		if u.Age == nil {
			return "", false
		}
		return collection.AgeBucket(*u.Age), true
	})
	return toGroupCounts(groups), nil
}

func userName(u *entity.User) string   { return u.Name }
func userGender(u *entity.User) string { return u.Gender }

func userAge(u *entity.User) (int, bool) {
	if u.Age == nil {
		return 0, false
	}
	return *u.Age, true
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Age:       u.Age,
		Gender:    u.Gender,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
