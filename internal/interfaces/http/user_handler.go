package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registros-api/internal/application/dto"
	"github.com/jhoicas/registros-api/internal/application/usecase"
	"github.com/jhoicas/registros-api/internal/infrastructure/pdf"
)

// UserHandler maneja las peticiones HTTP de usuarios.
type UserHandler struct {
	uc     *usecase.UserUseCase
	report *pdf.StatsReportGenerator
	now    usecase.Clock
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, report *pdf.StatsReportGenerator, now usecase.Clock) *UserHandler {
	return &UserHandler{uc: uc, report: report, now: now}
}

// Create POST /api/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	user, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// List GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	user, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetByEmail GET /api/users/email/:email
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return badRequest(c, "VALIDATION", "email inválido")
	}
	user, err := h.uc.GetByEmail(c.Context(), email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Update PUT /api/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	user, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Delete DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search GET /api/users/search?name=
func (h *UserHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.SearchByName(c.Context(), c.Query("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Filter GET /api/users/filter?name=&gender=&minAge=&maxAge=
func (h *UserHandler) Filter(c *fiber.Ctx) error {
	minAge, err := queryIntPtr(c, "minAge")
	if err != nil {
		return badRequest(c, "VALIDATION", "minAge inválido")
	}
	maxAge, err := queryIntPtr(c, "maxAge")
	if err != nil {
		return badRequest(c, "VALIDATION", "maxAge inválido")
	}
	list, err := h.uc.Filter(c.Context(), dto.UserFilter{
		Name:   queryStrPtr(c, "name"),
		Gender: queryStrPtr(c, "gender"),
		MinAge: minAge,
		MaxAge: maxAge,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// AgeRange GET /api/users/age-range?minAge=&maxAge=
func (h *UserHandler) AgeRange(c *fiber.Ctx) error {
	min, okMin := queryInt(c, "minAge", 0)
	max, okMax := queryInt(c, "maxAge", 150)
	if !okMin || !okMax {
		return badRequest(c, "VALIDATION", "minAge y maxAge deben ser enteros")
	}
	list, err := h.uc.ByAgeRange(c.Context(), min, max)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ByGender GET /api/users/gender/:gender
func (h *UserHandler) ByGender(c *fiber.Ctx) error {
	list, err := h.uc.ByGender(c.Context(), c.Params("gender"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Recent GET /api/users/recent?limit=
func (h *UserHandler) Recent(c *fiber.Ctx) error {
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

// Statistics GET /api/users/statistics
func (h *UserHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.uc.Statistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GenderCounts GET /api/users/statistics/gender
func (h *UserHandler) GenderCounts(c *fiber.Ctx) error {
	groups, err := h.uc.GenderCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(groups)
}

// AgeDistribution GET /api/users/statistics/age-groups
func (h *UserHandler) AgeDistribution(c *fiber.Ctx) error {
	groups, err := h.uc.AgeDistribution(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(groups)
}

// StatisticsReport GET /api/users/statistics/report
func (h *UserHandler) StatisticsReport(c *fiber.Ctx) error {
	stats, err := h.uc.Statistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	genders, err := h.uc.GenderCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	ages, err := h.uc.AgeDistribution(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	doc, err := h.report.Generate(c.Context(), pdf.Report{
		Title:       "Reporte de usuarios",
		GeneratedAt: h.now(),
		Summary: []pdf.Metric{
			{Label: "Total de usuarios", Value: fmt.Sprintf("%d", stats.TotalCount)},
			{Label: "Edad promedio", Value: stats.AverageAge.String()},
			{Label: "Hombres", Value: fmt.Sprintf("%d", stats.MaleCount)},
			{Label: "Mujeres", Value: fmt.Sprintf("%d", stats.FemaleCount)},
		},
		Sections: []pdf.Section{
			{Title: "POR GÉNERO", Rows: countMetrics(genders)},
			{Title: "POR FRANJA DE EDAD", Rows: countMetrics(ages)},
		},
	})
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, "usuarios.pdf", doc)
}

func countMetrics(groups []dto.GroupCountDTO) []pdf.Metric {
	out := make([]pdf.Metric, len(groups))
	for i, g := range groups {
		out[i] = pdf.Metric{Label: g.Key, Value: fmt.Sprintf("%d", g.Count)}
	}
	return out
}
