package http

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registros-api/internal/application/dto"
	"github.com/jhoicas/registros-api/internal/application/usecase"
	"github.com/jhoicas/registros-api/internal/infrastructure/pdf"
)

// EmployeeHandler maneja las peticiones HTTP de empleados.
type EmployeeHandler struct {
	uc     *usecase.EmployeeUseCase
	report *pdf.StatsReportGenerator
	now    usecase.Clock
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, report *pdf.StatsReportGenerator, now usecase.Clock) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, report: report, now: now}
}

// Create POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	employee, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// List GET /api/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	employee, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// GetByNumber GET /api/employees/number/:number
func (h *EmployeeHandler) GetByNumber(c *fiber.Ctx) error {
	employee, err := h.uc.GetByEmployeeNumber(c.Context(), c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// GetByEmail GET /api/employees/email/:email
func (h *EmployeeHandler) GetByEmail(c *fiber.Ctx) error {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return badRequest(c, "VALIDATION", "email inválido")
	}
	employee, err := h.uc.GetByEmail(c.Context(), email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Update PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	employee, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Delete DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// resignBody cuerpo opcional del resign; sin fecha se usa el día de hoy.
type resignBody struct {
	ResignationDate string `json:"resignationDate"`
}

// Resign POST /api/employees/:id/resign
func (h *EmployeeHandler) Resign(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in resignBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "INVALID_BODY", "cuerpo inválido")
		}
	}
	date := h.today()
	if in.ResignationDate != "" {
		d, err := time.Parse(dto.DateLayout, in.ResignationDate)
		if err != nil {
			return badRequest(c, "VALIDATION", "resignationDate debe tener formato "+dto.DateLayout)
		}
		date = d
	}
	employee, err := h.uc.Resign(c.Context(), id, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Rehire POST /api/employees/:id/rehire
func (h *EmployeeHandler) Rehire(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	employee, err := h.uc.Rehire(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Search GET /api/employees/search?name=
func (h *EmployeeHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.SearchByName(c.Context(), c.Query("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Filter GET /api/employees/filter con todos los criterios opcionales.
func (h *EmployeeHandler) Filter(c *fiber.Ctx) error {
	minSalary, err := queryInt64Ptr(c, "minSalary")
	if err != nil {
		return badRequest(c, "VALIDATION", "minSalary inválido")
	}
	maxSalary, err := queryInt64Ptr(c, "maxSalary")
	if err != nil {
		return badRequest(c, "VALIDATION", "maxSalary inválido")
	}
	hireStart, err := queryDatePtr(c, "hireStart")
	if err != nil {
		return badRequest(c, "VALIDATION", "hireStart debe tener formato "+dto.DateLayout)
	}
	hireEnd, err := queryDatePtr(c, "hireEnd")
	if err != nil {
		return badRequest(c, "VALIDATION", "hireEnd debe tener formato "+dto.DateLayout)
	}
	list, err := h.uc.Filter(c.Context(), dto.EmployeeFilter{
		Name:       queryStrPtr(c, "name"),
		Department: queryStrPtr(c, "department"),
		Position:   queryStrPtr(c, "position"),
		Status:     queryStrPtr(c, "status"),
		MinSalary:  minSalary,
		MaxSalary:  maxSalary,
		HireStart:  hireStart,
		HireEnd:    hireEnd,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ByDepartment GET /api/employees/department/:department
func (h *EmployeeHandler) ByDepartment(c *fiber.Ctx) error {
	list, err := h.uc.ByDepartment(c.Context(), c.Params("department"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ByPosition GET /api/employees/position/:position
func (h *EmployeeHandler) ByPosition(c *fiber.Ctx) error {
	list, err := h.uc.ByPosition(c.Context(), c.Params("position"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ByStatus GET /api/employees/status/:status
func (h *EmployeeHandler) ByStatus(c *fiber.Ctx) error {
	list, err := h.uc.ByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// SalaryRange GET /api/employees/salary-range?minSalary=&maxSalary=
func (h *EmployeeHandler) SalaryRange(c *fiber.Ctx) error {
	min, _, errMin := queryInt64(c, "minSalary")
	max, okMax, errMax := queryInt64(c, "maxSalary")
	if errMin != nil || errMax != nil {
		return badRequest(c, "VALIDATION", "minSalary y maxSalary deben ser enteros")
	}
	if !okMax {
		max = int64(1<<62 - 1)
	}
	list, err := h.uc.BySalaryRange(c.Context(), min, max)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// HireDateRange GET /api/employees/hire-date-range?startDate=&endDate=
func (h *EmployeeHandler) HireDateRange(c *fiber.Ctx) error {
	start, err := queryDatePtr(c, "startDate")
	if err != nil || start == nil {
		return badRequest(c, "VALIDATION", "startDate debe tener formato "+dto.DateLayout)
	}
	end, err := queryDatePtr(c, "endDate")
	if err != nil || end == nil {
		return badRequest(c, "VALIDATION", "endDate debe tener formato "+dto.DateLayout)
	}
	list, err := h.uc.ByHireDateRange(c.Context(), *start, *end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Recent GET /api/employees/recent?limit=
func (h *EmployeeHandler) Recent(c *fiber.Ctx) error {
	limit, ok := queryInt(c, "limit", 10)
	if !ok {
		return badRequest(c, "VALIDATION", "limit debe ser entero")
	}
	list, err := h.uc.Recent(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ResignationScheduled GET /api/employees/resignation-scheduled
func (h *EmployeeHandler) ResignationScheduled(c *fiber.Ctx) error {
	list, err := h.uc.ResignationScheduled(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Statistics GET /api/employees/statistics
func (h *EmployeeHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.uc.Statistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// SalaryStatistics GET /api/employees/statistics/salary
func (h *EmployeeHandler) SalaryStatistics(c *fiber.Ctx) error {
	out, err := h.uc.SalaryStatistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DepartmentCounts GET /api/employees/statistics/department
func (h *EmployeeHandler) DepartmentCounts(c *fiber.Ctx) error {
	out, err := h.uc.DepartmentCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PositionCounts GET /api/employees/statistics/position
func (h *EmployeeHandler) PositionCounts(c *fiber.Ctx) error {
	out, err := h.uc.PositionCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StatusCounts GET /api/employees/statistics/status
func (h *EmployeeHandler) StatusCounts(c *fiber.Ctx) error {
	out, err := h.uc.StatusCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TenureDistribution GET /api/employees/statistics/tenure
func (h *EmployeeHandler) TenureDistribution(c *fiber.Ctx) error {
	out, err := h.uc.TenureDistribution(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StatisticsReport GET /api/employees/statistics/report
func (h *EmployeeHandler) StatisticsReport(c *fiber.Ctx) error {
	stats, err := h.uc.Statistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	departments, err := h.uc.DepartmentCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	statuses, err := h.uc.StatusCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	tenure, err := h.uc.TenureDistribution(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	doc, err := h.report.Generate(c.Context(), pdf.Report{
		Title:       "Reporte de empleados",
		GeneratedAt: h.now(),
		Summary: []pdf.Metric{
			{Label: "Total de empleados", Value: fmt.Sprintf("%d", stats.TotalCount)},
			{Label: "Activos", Value: fmt.Sprintf("%d", stats.ActiveCount)},
			{Label: "Retirados", Value: fmt.Sprintf("%d", stats.ResignedCount)},
			{Label: "Salario promedio (activos)", Value: stats.AverageSalary.String()},
			{Label: "Salario máximo (activos)", Value: fmt.Sprintf("%d", stats.MaxSalary)},
			{Label: "Salario mínimo (activos)", Value: fmt.Sprintf("%d", stats.MinSalary)},
		},
		Sections: []pdf.Section{
			{Title: "ACTIVOS POR DEPARTAMENTO", Rows: countMetrics(departments)},
			{Title: "POR ESTADO", Rows: countMetrics(statuses)},
			{Title: "ACTIVOS POR ANTIGÜEDAD", Rows: countMetrics(tenure)},
		},
	})
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, "empleados.pdf", doc)
}

// today devuelve la fecha de hoy según el reloj del handler, a medianoche UTC.
func (h *EmployeeHandler) today() time.Time {
	now := h.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
