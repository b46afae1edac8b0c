// Comando seed: carga datos de ejemplo en las tres colecciones pasando por
// los casos de uso (misma validación y unicidad que la API). Es re-ejecutable:
// los registros que ya existen se saltan.
package main

import (
	"context"
	"errors"

	"github.com/jhoicas/registros-api/internal/application/dto"
	"github.com/jhoicas/registros-api/internal/application/usecase"
	"github.com/jhoicas/registros-api/internal/domain"
	"github.com/jhoicas/registros-api/internal/domain/entity"
	"github.com/jhoicas/registros-api/internal/infrastructure/postgres"
	"github.com/jhoicas/registros-api/pkg/config"
	"github.com/jhoicas/registros-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	txRunner := postgres.NewTxRunner(pool)
	userUC := usecase.NewUserUseCase(postgres.NewUserRepository(pool), txRunner, nil)
	salesUC := usecase.NewSalesUseCase(postgres.NewSalesRepository(pool), nil)
	employeeUC := usecase.NewEmployeeUseCase(postgres.NewEmployeeRepository(pool), txRunner, nil)

	seedUsers(ctx, log, userUC)
	seedSales(ctx, log, salesUC)
	seedEmployees(ctx, log, employeeUC)

	log.Info().Msg("seed finalizado")
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func seedUsers(ctx context.Context, log *logger.Logger, uc *usecase.UserUseCase) {
	users := []dto.UserRequest{
		{Name: "Ana García", Email: "ana.garcia@mail.com", Phone: "300-555-0101", Age: intPtr(28), Gender: "female"},
		{Name: "Bruno Díaz", Email: "bruno.diaz@mail.com", Phone: "300-555-0102", Age: intPtr(41), Gender: "male"},
		{Name: "Carla Ruiz", Email: "carla.ruiz@mail.com", Gender: "female"},
		{Name: "Diego Anaya", Email: "diego.anaya@mail.com", Age: intPtr(33), Gender: "male"},
		{Name: "Eva Soto", Email: "eva.soto@mail.com", Age: intPtr(57), Gender: "female"},
		{Name: "Félix Mora", Email: "felix.mora@mail.com", Age: intPtr(19), Gender: "male"},
	}
	created := 0
	for _, u := range users {
		if _, err := uc.Create(ctx, u); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			log.Error().Err(err).Str("email", u.Email).Msg("seed usuario")
			continue
		}
		created++
	}
	log.Info().Int("created", created).Msg("usuarios sembrados")
}

func seedSales(ctx context.Context, log *logger.Logger, uc *usecase.SalesUseCase) {
	records := []dto.SalesRequest{
		{ProductName: "Laptop Pro 14", Category: "electronics", Price: 4_500_000, Quantity: 2, SalesDate: "2026-01-15", Salesperson: "Ana García", Region: "norte", Status: "completed"},
		{ProductName: "Mouse inalámbrico", Category: "electronics", Price: 85_000, Quantity: 12, SalesDate: "2026-01-20", Salesperson: "Bruno Díaz", Region: "sur", Status: "completed"},
		{ProductName: "Silla ergonómica", Category: "furniture", Price: 620_000, Quantity: 3, SalesDate: "2026-02-05", Salesperson: "Ana García", Region: "norte", Status: "pending"},
		{ProductName: "Escritorio eléctrico", Category: "furniture", Price: 1_350_000, Quantity: 1, SalesDate: "2025-12-28", Salesperson: "Carla Ruiz", Region: "centro", Status: "completed"},
		{ProductName: "Monitor 27\"", Category: "electronics", Price: 980_000, Quantity: 4, SalesDate: "2026-03-10", Salesperson: "Bruno Díaz", Region: "norte", Status: "cancelled"},
	}
	created := 0
	for _, s := range records {
		if _, err := uc.Create(ctx, s); err != nil {
			log.Error().Err(err).Str("product", s.ProductName).Msg("seed venta")
			continue
		}
		created++
	}
	log.Info().Int("created", created).Msg("ventas sembradas")
}

func seedEmployees(ctx context.Context, log *logger.Logger, uc *usecase.EmployeeUseCase) {
	employees := []dto.EmployeeRequest{
		{EmployeeNumber: "EMP-001", Name: "Ana García", SSN: "900101-0000001", Department: "ventas", Position: "ejecutiva", HireDate: "2020-03-01", Salary: 30_000_000, Email: "ana.garcia@empresa.com", Status: entity.StatusActive},
		{EmployeeNumber: "EMP-002", Name: "Bruno Díaz", SSN: "880215-0000002", Department: "ti", Position: "desarrollador", HireDate: "2023-07-15", Salary: 50_000_000, Email: "bruno.diaz@empresa.com", Status: entity.StatusActive},
		{EmployeeNumber: "EMP-003", Name: "Carla Ruiz", SSN: "910530-0000003", Department: "ti", Position: "arquitecta", HireDate: "2025-11-30", Salary: 70_000_000, Status: entity.StatusActive},
		{EmployeeNumber: "EMP-004", Name: "Diego Anaya", SSN: "850820-0000004", Department: "ventas", Position: "ejecutivo", HireDate: "2021-01-10", Salary: 90_000_000, Status: entity.StatusOnLeave},
		{EmployeeNumber: "EMP-005", Name: "Eva Soto", SSN: "790412-0000005", Department: "rrhh", Position: "analista", HireDate: "2019-05-20", ResignationDate: strPtr("2025-08-31"), Salary: 10_000_000, Status: entity.StatusResigned},
	}
	created := 0
	for _, e := range employees {
		if _, err := uc.Create(ctx, e); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			log.Error().Err(err).Str("number", e.EmployeeNumber).Msg("seed empleado")
			continue
		}
		created++
	}
	log.Info().Int("created", created).Msg("empleados sembrados")
}
