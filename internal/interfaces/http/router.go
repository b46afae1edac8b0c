package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registros-api/internal/application/usecase"
	"github.com/jhoicas/registros-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router. Now es el reloj de los handlers
// (fecha de renuncia por defecto, sello de los reportes); nil usa time.Now.
type RouterDeps struct {
	UserUC     *usecase.UserUseCase
	SalesUC    *usecase.SalesUseCase
	EmployeeUC *usecase.EmployeeUseCase
	Report     *pdf.StatsReportGenerator
	Now        usecase.Clock
}

// Router registra las rutas de la API. Las rutas estáticas (search, filter,
// statistics…) van antes de /:id para que el matcher no las capture como id.
func Router(app *fiber.App, deps RouterDeps) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	api := app.Group("/api")

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Report, now)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/search", userHandler.Search)
	users.Get("/filter", userHandler.Filter)
	users.Get("/age-range", userHandler.AgeRange)
	users.Get("/recent", userHandler.Recent)
	users.Get("/gender/:gender", userHandler.ByGender)
	users.Get("/email/:email", userHandler.GetByEmail)
	users.Get("/statistics", userHandler.Statistics)
	users.Get("/statistics/gender", userHandler.GenderCounts)
	users.Get("/statistics/age-groups", userHandler.AgeDistribution)
	users.Get("/statistics/report", userHandler.StatisticsReport)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Sales
	sales := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC, deps.Report, now)
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.List)
	sales.Get("/search", salesHandler.Search)
	sales.Get("/filter", salesHandler.Filter)
	sales.Get("/date-range", salesHandler.DateRange)
	sales.Get("/price-range", salesHandler.PriceRange)
	sales.Get("/recent", salesHandler.Recent)
	sales.Get("/category/:category", salesHandler.ByCategory)
	sales.Get("/region/:region", salesHandler.ByRegion)
	sales.Get("/salesperson/:salesperson", salesHandler.BySalesperson)
	sales.Get("/status/:status", salesHandler.ByStatus)
	sales.Get("/statistics", salesHandler.Statistics)
	sales.Get("/statistics/monthly", salesHandler.Monthly)
	sales.Get("/statistics/category", salesHandler.RevenueByCategory)
	sales.Get("/statistics/region", salesHandler.RevenueByRegion)
	sales.Get("/statistics/salesperson", salesHandler.RevenueBySalesperson)
	sales.Get("/statistics/report", salesHandler.StatisticsReport)
	sales.Get("/:id", salesHandler.GetByID)
	sales.Put("/:id", salesHandler.Update)
	sales.Delete("/:id", salesHandler.Delete)

	// Employees
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Report, now)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/search", employeeHandler.Search)
	employees.Get("/filter", employeeHandler.Filter)
	employees.Get("/salary-range", employeeHandler.SalaryRange)
	employees.Get("/hire-date-range", employeeHandler.HireDateRange)
	employees.Get("/recent", employeeHandler.Recent)
	employees.Get("/resignation-scheduled", employeeHandler.ResignationScheduled)
	employees.Get("/number/:number", employeeHandler.GetByNumber)
	employees.Get("/email/:email", employeeHandler.GetByEmail)
	employees.Get("/department/:department", employeeHandler.ByDepartment)
	employees.Get("/position/:position", employeeHandler.ByPosition)
	employees.Get("/status/:status", employeeHandler.ByStatus)
	employees.Get("/statistics", employeeHandler.Statistics)
	employees.Get("/statistics/salary", employeeHandler.SalaryStatistics)
	employees.Get("/statistics/department", employeeHandler.DepartmentCounts)
	employees.Get("/statistics/position", employeeHandler.PositionCounts)
	employees.Get("/statistics/status", employeeHandler.StatusCounts)
	employees.Get("/statistics/tenure", employeeHandler.TenureDistribution)
	employees.Get("/statistics/report", employeeHandler.StatisticsReport)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/resign", employeeHandler.Resign)
	employees.Post("/:id/rehire", employeeHandler.Rehire)
}
