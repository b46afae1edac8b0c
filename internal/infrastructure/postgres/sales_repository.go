package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/registros-api/internal/domain/entity"
	"github.com/jhoicas/registros-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación de SalesRepository sobre PostgreSQL (usable con pool o tx).
// La tabla no tiene columna de total: el derivado se recalcula en la entidad.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

const salesColumns = `id, product_name, category, price, quantity, sales_date, salesperson, region, status, created_at, updated_at`

// List devuelve todas las ventas en orden de inserción (id ascendente).
func (r *SalesRepo) List(ctx context.Context) ([]*entity.SalesRecord, error) {
	query := `SELECT ` + salesColumns + ` FROM sales_records ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesRecord
	for rows.Next() {
		s, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales record: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SalesRepo) GetByID(ctx context.Context, id int64) (*entity.SalesRecord, error) {
	query := `SELECT ` + salesColumns + ` FROM sales_records WHERE id = $1`
	s, err := scanSalesRecord(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales record: %w", err)
	}
	return s, nil
}

// Create persiste una nueva venta y asigna el id generado por el almacén.
func (r *SalesRepo) Create(ctx context.Context, s *entity.SalesRecord) error {
	query := `
		INSERT INTO sales_records (product_name, category, price, quantity, sales_date, salesperson, region, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.ProductName, s.Category, s.Price, s.Quantity, s.SalesDate,
		s.Salesperson, s.Region, s.Status, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sales record: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables de la venta.
func (r *SalesRepo) Update(ctx context.Context, s *entity.SalesRecord) error {
	query := `
		UPDATE sales_records
		SET product_name = $2, category = $3, price = $4, quantity = $5, sales_date = $6,
		    salesperson = $7, region = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.ProductName, s.Category, s.Price, s.Quantity, s.SalesDate,
		s.Salesperson, s.Region, s.Status, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales record: %w", err)
	}
	return nil
}

// Delete elimina una venta por ID. Devuelve false si el id no existía.
func (r *SalesRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales_records WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sales record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanSalesRecord(row pgx.Row) (*entity.SalesRecord, error) {
	var s entity.SalesRecord
	err := row.Scan(
		&s.ID, &s.ProductName, &s.Category, &s.Price, &s.Quantity, &s.SalesDate,
		&s.Salesperson, &s.Region, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
