package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/registros-api/internal/domain/entity"
	"github.com/jhoicas/registros-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repositorios en memoria con la misma semántica que los de
// Postgres (ids secuenciales, (nil, nil) sin fila, copias defensivas), un
// TxRunner que ejecuta el callback directo y un reloj falso que avanza un
// segundo por lectura para poder asertar sobre timestamps.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClock struct {
	t time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

// Now avanza un segundo por llamada: dos escrituras consecutivas nunca
// comparten timestamp.
func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

// ── users ─────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  []entity.User
	nextID int64
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, len(r.users))
	for i := range r.users {
		u := r.users[i]
		out[i] = &u
	}
	return out, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = *u
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ── sales ─────────────────────────────────────────────────────────────────────

type fakeSalesRepo struct {
	records []entity.SalesRecord
	nextID  int64
}

func (r *fakeSalesRepo) List(_ context.Context) ([]*entity.SalesRecord, error) {
	out := make([]*entity.SalesRecord, len(r.records))
	for i := range r.records {
		s := r.records[i]
		out[i] = &s
	}
	return out, nil
}

func (r *fakeSalesRepo) GetByID(_ context.Context, id int64) (*entity.SalesRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			s := r.records[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSalesRepo) Create(_ context.Context, s *entity.SalesRecord) error {
	r.nextID++
	s.ID = r.nextID
	r.records = append(r.records, *s)
	return nil
}

func (r *fakeSalesRepo) Update(_ context.Context, s *entity.SalesRecord) error {
	for i := range r.records {
		if r.records[i].ID == s.ID {
			r.records[i] = *s
			return nil
		}
	}
	return nil
}

func (r *fakeSalesRepo) Delete(_ context.Context, id int64) (bool, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ── employees ─────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	employees []entity.Employee
	nextID    int64
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, len(r.employees))
	for i := range r.employees {
		e := r.employees[i]
		out[i] = &e
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	for i := range r.employees {
		if r.employees[i].ID == id {
			e := r.employees[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeNumber(_ context.Context, number string) (*entity.Employee, error) {
	for i := range r.employees {
		if r.employees[i].EmployeeNumber == number {
			e := r.employees[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	for i := range r.employees {
		if r.employees[i].Email == email {
			e := r.employees[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.nextID++
	e.ID = r.nextID
	r.employees = append(r.employees, *e)
	return nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	for i := range r.employees {
		if r.employees[i].ID == e.ID {
			r.employees[i] = *e
			return nil
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) (bool, error) {
	for i := range r.employees {
		if r.employees[i].ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ── tx ────────────────────────────────────────────────────────────────────────

// fakeTx ejecuta el callback contra los repos en memoria sin transacción
// real: en los tests no hay concurrencia que aislar.
type fakeTx struct {
	users     *fakeUserRepo
	employees *fakeEmployeeRepo
}

func (t *fakeTx) RunUsers(_ context.Context, fn func(repository.UserRepository) error) error {
	return fn(t.users)
}

func (t *fakeTx) RunEmployees(_ context.Context, fn func(repository.EmployeeRepository) error) error {
	return fn(t.employees)
}
