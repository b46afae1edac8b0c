package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/registros-api/internal/application/dto"
	"github.com/jhoicas/registros-api/internal/domain"
	"github.com/jhoicas/registros-api/internal/domain/collection"
	"github.com/jhoicas/registros-api/internal/domain/entity"
	"github.com/jhoicas/registros-api/internal/domain/repository"
)

// SalesUseCase implementa las operaciones sobre ventas: CRUD, búsqueda
// filtrada, estadísticas y agrupaciones de ingreso. El total de cada venta es
// derivado (price × quantity) y se recalcula aquí en cada respuesta.
type SalesUseCase struct {
	repo repository.SalesRepository
	now  Clock
}

// NewSalesUseCase crea el caso de uso de ventas. Si now es nil usa time.Now.
func NewSalesUseCase(repo repository.SalesRepository, now Clock) *SalesUseCase {
	if now == nil {
		now = time.Now
	}
	return &SalesUseCase{repo: repo, now: now}
}

// Create registra una venta nueva. No hay invariante de unicidad: la
// inserción va directa al repositorio.
func (uc *SalesUseCase) Create(ctx context.Context, req dto.SalesRequest) (*dto.SalesResponse, error) {
	now := uc.now()
	s, err := uc.buildRecord(req, now)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSalesResponse(s), nil
}

// GetByID obtiene una venta por su identificador.
func (uc *SalesUseCase) GetByID(ctx context.Context, id int64) (*dto.SalesResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("venta %d: %w", id, domain.ErrNotFound)
	}
	return toSalesResponse(s), nil
}

// List devuelve todas las ventas en orden de inserción.
func (uc *SalesUseCase) List(ctx context.Context) ([]*dto.SalesResponse, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSalesResponses(records), nil
}

// Update reemplaza por completo los campos mutables de la venta id. El total
// queda implícitamente recalculado al cambiar price o quantity.
func (uc *SalesUseCase) Update(ctx context.Context, id int64, req dto.SalesRequest) (*dto.SalesResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("venta %d: %w", id, domain.ErrNotFound)
	}
	now := uc.now()
	s, err := uc.buildRecord(req, now)
	if err != nil {
		return nil, err
	}
	s.ID = id
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = now
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSalesResponse(s), nil
}

// Delete elimina la venta id. Borrar un id inexistente es ErrNotFound.
func (uc *SalesUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("venta %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Filter devuelve las ventas que cumplen todos los criterios presentes en f.
func (uc *SalesUseCase) Filter(ctx context.Context, f dto.SalesFilter) ([]*dto.SalesResponse, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var preds []collection.Predicate[*entity.SalesRecord]
	if f.ProductName != nil {
		preds = append(preds, collection.ContainsFold(salesProduct, *f.ProductName))
	}
	if f.Category != nil {
		preds = append(preds, collection.Equals(salesCategory, *f.Category))
	}
	if f.Region != nil {
		preds = append(preds, collection.Equals(salesRegion, *f.Region))
	}
	if f.Status != nil {
		preds = append(preds, collection.Equals(salesStatus, *f.Status))
	}
	if f.Salesperson != nil {
		preds = append(preds, collection.Equals(salesSalesperson, *f.Salesperson))
	}
	if f.MinPrice != nil {
		preds = append(preds, collection.AtLeast(salesPrice, *f.MinPrice))
	}
	if f.MaxPrice != nil {
		preds = append(preds, collection.AtMost(salesPrice, *f.MaxPrice))
	}
	if f.StartDate != nil {
		preds = append(preds, collection.NotBefore(salesDate, *f.StartDate))
	}
	if f.EndDate != nil {
		preds = append(preds, collection.NotAfter(salesDate, *f.EndDate))
	}
	return toSalesResponses(collection.Apply(records, preds...)), nil
}

// SearchByProduct busca por subcadena del nombre de producto.
func (uc *SalesUseCase) SearchByProduct(ctx context.Context, name string) ([]*dto.SalesResponse, error) {
	return uc.Filter(ctx, dto.SalesFilter{ProductName: &name})
}

// ByCategory devuelve las ventas de la categoría exacta indicada.
func (uc *SalesUseCase) ByCategory(ctx context.Context, category string) ([]*dto.SalesResponse, error) {
	return uc.Filter(ctx, dto.SalesFilter{Category: &category})
}

// ByRegion devuelve las ventas de la región exacta indicada.
func (uc *SalesUseCase) ByRegion(ctx context.Context, region string) ([]*dto.SalesResponse, error) {
	return uc.Filter(ctx, dto.SalesFilter{Region: &region})
}

// BySalesperson devuelve las ventas del vendedor exacto indicado.
func (uc *SalesUseCase) BySalesperson(ctx context.Context, salesperson string) ([]*dto.SalesResponse, error) {
	return uc.Filter(ctx, dto.SalesFilter{Salesperson: &salesperson})
}

// ByStatus devuelve las ventas con el status exacto indicado.
func (uc *SalesUseCase) ByStatus(ctx context.Context, status string) ([]*dto.SalesResponse, error) {
	return uc.Filter(ctx, dto.SalesFilter{Status: &status})
}

// ByDateRange devuelve las ventas con salesDate en [start, end], inclusivo.
func (uc *SalesUseCase) ByDateRange(ctx context.Context, start, end time.Time) ([]*dto.SalesResponse, error) {
	return uc.Filter(ctx, dto.SalesFilter{StartDate: &start, EndDate: &end})
}

// ByPriceRange devuelve las ventas con precio unitario en [min, max].
func (uc *SalesUseCase) ByPriceRange(ctx context.Context, min, max int64) ([]*dto.SalesResponse, error) {
	return uc.Filter(ctx, dto.SalesFilter{MinPrice: &min, MaxPrice: &max})
}

// Recent devuelve las n ventas de fecha más reciente, la más nueva primero.
func (uc *SalesUseCase) Recent(ctx context.Context, n int) ([]*dto.SalesResponse, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	recent := collection.RecentBy(records, salesDate, n)
	return toSalesResponses(recent), nil
}

// Statistics calcula el resumen de totales de venta sobre toda la colección,
// sin importar el status de cada venta.
func (uc *SalesUseCase) Statistics(ctx context.Context) (*dto.SalesStatistics, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sum := collection.Summarize(records, func(s *entity.SalesRecord) (int64, bool) {
		return s.Total(), true
	})
	return &dto.SalesStatistics{
		TotalCount:   sum.Count,
		TotalSales:   sum.Sum,
		AverageSales: sum.Average,
		MaxSales:     sum.Max,
		MinSales:     sum.Min,
	}, nil
}

// RevenueByCategory suma los totales de venta por categoría, orden
// descendente por ingreso.
func (uc *SalesUseCase) RevenueByCategory(ctx context.Context) ([]dto.GroupTotalDTO, error) {
	return uc.revenueBy(ctx, salesCategory)
}

// RevenueByRegion suma los totales de venta por región.
func (uc *SalesUseCase) RevenueByRegion(ctx context.Context) ([]dto.GroupTotalDTO, error) {
	return uc.revenueBy(ctx, salesRegion)
}

// RevenueBySalesperson suma los totales de venta por vendedor.
func (uc *SalesUseCase) RevenueBySalesperson(ctx context.Context) ([]dto.GroupTotalDTO, error) {
	return uc.revenueBy(ctx, salesSalesperson)
}

func (uc *SalesUseCase) revenueBy(ctx context.Context, key func(*entity.SalesRecord) string) ([]dto.GroupTotalDTO, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups := collection.SumBy(records,
		func(s *entity.SalesRecord) (string, bool) { return key(s), true },
		func(s *entity.SalesRecord) int64 { return s.Total() },
	)
	return toGroupTotals(groups), nil
}

// MonthlyStatistics suma los totales de venta por mes calendario de
// salesDate, ordenado por año descendente y mes descendente.
func (uc *SalesUseCase) MonthlyStatistics(ctx context.Context) ([]dto.MonthlySales, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	type ym struct{ year, month int }
	totals := make(map[ym]int64)
	for _, s := range records {
		k := ym{s.SalesDate.Year(), int(s.SalesDate.Month())}
		totals[k] += s.Total()
	}
	out := make([]dto.MonthlySales, 0, len(totals))
	for k, t := range totals {
		out = append(out, dto.MonthlySales{Year: k.year, Month: k.month, Total: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

func (uc *SalesUseCase) buildRecord(req dto.SalesRequest, now time.Time) (*entity.SalesRecord, error) {
	salesDate, err := parseDate("salesDate", req.SalesDate)
	if err != nil {
		return nil, err
	}
	s := &entity.SalesRecord{
		ProductName: req.ProductName,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		SalesDate:   salesDate,
		Salesperson: req.Salesperson,
		Region:      req.Region,
		Status:      req.Status,
	}
	if err := s.Validate(now); err != nil {
		return nil, err
	}
	return s, nil
}

func salesProduct(s *entity.SalesRecord) string     { return s.ProductName }
func salesCategory(s *entity.SalesRecord) string    { return s.Category }
func salesRegion(s *entity.SalesRecord) string      { return s.Region }
func salesStatus(s *entity.SalesRecord) string      { return s.Status }
func salesSalesperson(s *entity.SalesRecord) string { return s.Salesperson }
func salesDate(s *entity.SalesRecord) time.Time     { return s.SalesDate }

func salesPrice(s *entity.SalesRecord) (int64, bool) { return s.Price, true }

func toSalesResponse(s *entity.SalesRecord) *dto.SalesResponse {
	return &dto.SalesResponse{
		ID:          s.ID,
		ProductName: s.ProductName,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		Total:       s.Total(),
		SalesDate:   formatDate(s.SalesDate),
		Salesperson: s.Salesperson,
		Region:      s.Region,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSalesResponses(records []*entity.SalesRecord) []*dto.SalesResponse {
	out := make([]*dto.SalesResponse, len(records))
	for i, s := range records {
		out[i] = toSalesResponse(s)
	}
	return out
}
