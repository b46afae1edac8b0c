package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registros-api/internal/application/dto"
	"github.com/jhoicas/registros-api/internal/application/usecase"
	"github.com/jhoicas/registros-api/internal/infrastructure/pdf"
)

// SalesHandler maneja las peticiones HTTP de ventas.
type SalesHandler struct {
	uc     *usecase.SalesUseCase
	report *pdf.StatsReportGenerator
	now    usecase.Clock
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *usecase.SalesUseCase, report *pdf.StatsReportGenerator, now usecase.Clock) *SalesHandler {
	return &SalesHandler{uc: uc, report: report, now: now}
}

// Create POST /api/sales
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.SalesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	record, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// List GET /api/sales
func (h *SalesHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/sales/:id
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	record, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

// Update PUT /api/sales/:id
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.SalesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	record, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

// Delete DELETE /api/sales/:id
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search GET /api/sales/search?product=
func (h *SalesHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.SearchByProduct(c.Context(), c.Query("product"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Filter GET /api/sales/filter con todos los criterios opcionales.
func (h *SalesHandler) Filter(c *fiber.Ctx) error {
	minPrice, err := queryInt64Ptr(c, "minPrice")
	if err != nil {
		return badRequest(c, "VALIDATION", "minPrice inválido")
	}
	maxPrice, err := queryInt64Ptr(c, "maxPrice")
	if err != nil {
		return badRequest(c, "VALIDATION", "maxPrice inválido")
	}
	startDate, err := queryDatePtr(c, "startDate")
	if err != nil {
		return badRequest(c, "VALIDATION", "startDate debe tener formato "+dto.DateLayout)
	}
	endDate, err := queryDatePtr(c, "endDate")
	if err != nil {
		return badRequest(c, "VALIDATION", "endDate debe tener formato "+dto.DateLayout)
	}
	list, err := h.uc.Filter(c.Context(), dto.SalesFilter{
		ProductName: queryStrPtr(c, "productName"),
		Category:    queryStrPtr(c, "category"),
		Region:      queryStrPtr(c, "region"),
		Status:      queryStrPtr(c, "status"),
		Salesperson: queryStrPtr(c, "salesperson"),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ByCategory GET /api/sales/category/:category
func (h *SalesHandler) ByCategory(c *fiber.Ctx) error {
	list, err := h.uc.ByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ByRegion GET /api/sales/region/:region
func (h *SalesHandler) ByRegion(c *fiber.Ctx) error {
	list, err := h.uc.ByRegion(c.Context(), c.Params("region"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// BySalesperson GET /api/sales/salesperson/:salesperson
func (h *SalesHandler) BySalesperson(c *fiber.Ctx) error {
	list, err := h.uc.BySalesperson(c.Context(), c.Params("salesperson"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ByStatus GET /api/sales/status/:status
func (h *SalesHandler) ByStatus(c *fiber.Ctx) error {
	list, err := h.uc.ByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// DateRange GET /api/sales/date-range?startDate=&endDate=
func (h *SalesHandler) DateRange(c *fiber.Ctx) error {
	start, err := queryDatePtr(c, "startDate")
	if err != nil || start == nil {
		return badRequest(c, "VALIDATION", "startDate debe tener formato "+dto.DateLayout)
	}
	end, err := queryDatePtr(c, "endDate")
	if err != nil || end == nil {
		return badRequest(c, "VALIDATION", "endDate debe tener formato "+dto.DateLayout)
	}
	list, err := h.uc.ByDateRange(c.Context(), *start, *end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// PriceRange GET /api/sales/price-range?minPrice=&maxPrice=
func (h *SalesHandler) PriceRange(c *fiber.Ctx) error {
	min, _, errMin := queryInt64(c, "minPrice")
	max, okMax, errMax := queryInt64(c, "maxPrice")
	if errMin != nil || errMax != nil {
		return badRequest(c, "VALIDATION", "minPrice y maxPrice deben ser enteros")
	}
	if !okMax {
		max = int64(1<<62 - 1)
	}
	list, err := h.uc.ByPriceRange(c.Context(), min, max)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Recent GET /api/sales/recent?limit=
func (h *SalesHandler) Recent(c *fiber.Ctx) error {
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

// Statistics GET /api/sales/statistics
func (h *SalesHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.uc.Statistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// Monthly GET /api/sales/statistics/monthly
func (h *SalesHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyStatistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RevenueByCategory GET /api/sales/statistics/category
func (h *SalesHandler) RevenueByCategory(c *fiber.Ctx) error {
	out, err := h.uc.RevenueByCategory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RevenueByRegion GET /api/sales/statistics/region
func (h *SalesHandler) RevenueByRegion(c *fiber.Ctx) error {
	out, err := h.uc.RevenueByRegion(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RevenueBySalesperson GET /api/sales/statistics/salesperson
func (h *SalesHandler) RevenueBySalesperson(c *fiber.Ctx) error {
	out, err := h.uc.RevenueBySalesperson(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StatisticsReport GET /api/sales/statistics/report
func (h *SalesHandler) StatisticsReport(c *fiber.Ctx) error {
	stats, err := h.uc.Statistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	byCategory, err := h.uc.RevenueByCategory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	byRegion, err := h.uc.RevenueByRegion(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	doc, err := h.report.Generate(c.Context(), pdf.Report{
		Title:       "Reporte de ventas",
		GeneratedAt: h.now(),
		Summary: []pdf.Metric{
			{Label: "Total de ventas", Value: fmt.Sprintf("%d", stats.TotalCount)},
			{Label: "Monto total", Value: fmt.Sprintf("%d", stats.TotalSales)},
			{Label: "Venta promedio", Value: stats.AverageSales.String()},
			{Label: "Venta máxima", Value: fmt.Sprintf("%d", stats.MaxSales)},
			{Label: "Venta mínima", Value: fmt.Sprintf("%d", stats.MinSales)},
		},
		Sections: []pdf.Section{
			{Title: "INGRESO POR CATEGORÍA", Rows: totalMetrics(byCategory)},
			{Title: "INGRESO POR REGIÓN", Rows: totalMetrics(byRegion)},
		},
	})
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, "ventas.pdf", doc)
}

func totalMetrics(groups []dto.GroupTotalDTO) []pdf.Metric {
	out := make([]pdf.Metric, len(groups))
	for i, g := range groups {
		out[i] = pdf.Metric{Label: g.Key, Value: fmt.Sprintf("%d", g.Total)}
	}
	return out
}
